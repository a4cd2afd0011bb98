package dto

import (
	"time"

	"github.com/idanidan29/tripbooker/internal/domain"
)

type TripResponse struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Destination          string `json:"destination"`
	Country              string `json:"country"`
	Description          string `json:"description"`
	BaseCapacity         int    `json:"base_capacity"`
	BaseAvailableRooms   int    `json:"base_available_rooms"`
	CancellationDeadline string `json:"cancellation_deadline"`
	CreatedAt            string `json:"created_at"`
}

type VariantResponse struct {
	VariantIndex   int    `json:"variant_index"`
	StartsAt       string `json:"starts_at"`
	EndsAt         string `json:"ends_at"`
	Capacity       int    `json:"capacity"`
	AvailableRooms int    `json:"available_rooms"`
}

type TripDetailsResponse struct {
	Trip     TripResponse      `json:"trip"`
	Variants []VariantResponse `json:"variants"`
}

type CartEntryResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TripID       string `json:"trip_id"`
	DateSelector int    `json:"date_selector"`
	Quantity     int    `json:"quantity"`
	ExpiresAt    string `json:"expires_at"`
	CreatedAt    string `json:"created_at"`
}

type ReservationResponse struct {
	Outcome     string             `json:"outcome"`
	Entry       *CartEntryResponse `json:"entry,omitempty"`
	QueueLength int                `json:"queue_length"`
}

type WaitlistResponse struct {
	Status      string `json:"status"`
	QueueLength int    `json:"queue_length"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TripID       string `json:"trip_id"`
	DateSelector int    `json:"date_selector"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:                   t.ID,
		Title:                t.Title,
		Destination:          t.Destination,
		Country:              t.Country,
		Description:          t.Description,
		BaseCapacity:         t.BaseCapacity,
		BaseAvailableRooms:   t.BaseAvailableRooms,
		CancellationDeadline: t.CancellationDeadline.Format(time.RFC3339),
		CreatedAt:            t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTripDetailsResponse(d *domain.TripDetails) TripDetailsResponse {
	variants := make([]VariantResponse, 0, len(d.Variants))
	for _, v := range d.Variants {
		variants = append(variants, VariantResponse{
			VariantIndex:   v.VariantIndex,
			StartsAt:       v.StartsAt.Format(time.RFC3339),
			EndsAt:         v.EndsAt.Format(time.RFC3339),
			Capacity:       v.Capacity,
			AvailableRooms: v.AvailableRooms,
		})
	}

	return TripDetailsResponse{
		Trip:     ToTripResponse(&d.Trip),
		Variants: variants,
	}
}

func ToCartEntryResponse(e *domain.CartEntry) CartEntryResponse {
	return CartEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		TripID:       e.TripID,
		DateSelector: e.DateSelector,
		Quantity:     e.Quantity,
		ExpiresAt:    e.ExpiresAt.Format(time.RFC3339),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.ReservationResult) ReservationResponse {
	resp := ReservationResponse{
		Outcome:     string(r.Outcome),
		QueueLength: r.QueueLength,
	}
	if r.Entry != nil {
		entry := ToCartEntryResponse(r.Entry)
		resp.Entry = &entry
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		TripID:       b.TripID,
		DateSelector: b.DateSelector,
		Quantity:     b.Quantity,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
