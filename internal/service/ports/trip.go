package ports

import (
	"context"

	"github.com/idanidan29/tripbooker/internal/domain"
)

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip, variants []*domain.DateVariant) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	GetVariant(ctx context.Context, tripID string, variantIndex int) (*domain.DateVariant, error)
	ListVariants(ctx context.Context, tripID string) ([]*domain.DateVariant, error)
	List(ctx context.Context) ([]*domain.Trip, error)
}
