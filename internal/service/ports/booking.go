package ports

import (
	"context"

	"github.com/idanidan29/tripbooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// Cancel flips a confirmed booking to cancelled. Returns
	// domain.ErrBookingNotActive when it is not currently confirmed.
	Cancel(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
