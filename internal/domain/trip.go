package domain

import "time"

// BaseDateSelector addresses a trip's base-date room pool. Non-negative
// selectors address the date variant with that index.
const BaseDateSelector = -1

type Trip struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Destination          string    `json:"destination"`
	Country              string    `json:"country"`
	Description          string    `json:"description"`
	BaseCapacity         int       `json:"base_capacity"`
	BaseAvailableRooms   int       `json:"base_available_rooms"`
	CancellationDeadline time.Time `json:"cancellation_deadline"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DateVariant is an alternative departure date for a trip with its own
// independent room counter.
type DateVariant struct {
	ID             string    `json:"id"`
	TripID         string    `json:"trip_id"`
	VariantIndex   int       `json:"variant_index"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Capacity       int       `json:"capacity"`
	AvailableRooms int       `json:"available_rooms"`
}

type TripDetails struct {
	Trip     Trip          `json:"trip"`
	Variants []DateVariant `json:"variants"`
}

// Pool identifies one independent inventory counter: a trip's base date or
// one of its date variants.
type Pool struct {
	TripID       string
	DateSelector int
}

func (p Pool) IsBase() bool {
	return p.DateSelector == BaseDateSelector
}

type CreateVariantInput struct {
	StartsAt time.Time
	EndsAt   time.Time
	Capacity int
}

type CreateTripInput struct {
	Title                string
	Destination          string
	Country              string
	Description          string
	BaseRooms            int
	CancellationDeadline time.Time
	Variants             []CreateVariantInput
}
