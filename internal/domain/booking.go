package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a paid reservation. Its rooms stay consumed until the booking is
// cancelled, at which point they return to the pool.
type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	TripID       string        `json:"trip_id"`
	DateSelector int           `json:"date_selector"`
	Quantity     int           `json:"quantity"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
