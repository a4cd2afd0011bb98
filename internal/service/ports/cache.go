package ports

import (
	"context"

	"github.com/idanidan29/tripbooker/internal/domain"
)

// AvailabilityCache is a read-side cache for trip details. Implementations
// degrade to misses when the cache backend is unavailable.
type AvailabilityCache interface {
	GetTripDetails(ctx context.Context, tripID string) (*domain.TripDetails, bool)
	SetTripDetails(ctx context.Context, details *domain.TripDetails)
	Invalidate(ctx context.Context, tripID string)
}
