package domain

import "time"

// HoldTTL is how long an unpaid cart hold keeps a room reserved. Also used
// for the waitlist promotion window.
const HoldTTL = 24 * time.Hour

// CartEntry is a provisional hold on rooms: the pool's counter has already
// been decremented by Quantity. Unique per (user, trip, date selector);
// repeated adds bump the quantity and refresh the expiry.
type CartEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TripID       string    `json:"trip_id"`
	DateSelector int       `json:"date_selector"`
	Quantity     int       `json:"quantity"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (e *CartEntry) Pool() Pool {
	return Pool{TripID: e.TripID, DateSelector: e.DateSelector}
}
