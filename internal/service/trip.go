package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/clock"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/service/ports"
)

type TripService struct {
	repo  ports.TripRepo
	cache ports.AvailabilityCache
	clock clock.Clock
}

func NewTripService(repo ports.TripRepo, cache ports.AvailabilityCache, clk clock.Clock) *TripService {
	return &TripService{
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if input.BaseRooms < 0 {
		return nil, fmt.Errorf("%w: base_rooms must not be negative", domain.ErrValidation)
	}
	if input.CancellationDeadline.Before(s.clock.Now()) {
		return nil, fmt.Errorf("%w: cancellation_deadline must be in the future", domain.ErrValidation)
	}
	for i, v := range input.Variants {
		if v.Capacity < 0 {
			return nil, fmt.Errorf("%w: variant %d capacity must not be negative", domain.ErrValidation, i)
		}
		if !v.EndsAt.After(v.StartsAt) {
			return nil, fmt.Errorf("%w: variant %d must end after it starts", domain.ErrValidation, i)
		}
	}

	trip := &domain.Trip{
		ID:                   uuid.New().String(),
		Title:                input.Title,
		Destination:          input.Destination,
		Country:              input.Country,
		Description:          input.Description,
		BaseCapacity:         input.BaseRooms,
		BaseAvailableRooms:   input.BaseRooms,
		CancellationDeadline: input.CancellationDeadline,
	}

	variants := make([]*domain.DateVariant, len(input.Variants))
	for i, v := range input.Variants {
		variants[i] = &domain.DateVariant{
			ID:             uuid.New().String(),
			TripID:         trip.ID,
			VariantIndex:   i,
			StartsAt:       v.StartsAt,
			EndsAt:         v.EndsAt,
			Capacity:       v.Capacity,
			AvailableRooms: v.Capacity,
		}
	}

	if err := s.repo.Create(ctx, trip, variants); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return trip, nil
}

func (s *TripService) GetDetails(ctx context.Context, id string) (*domain.TripDetails, error) {
	if details, ok := s.cache.GetTripDetails(ctx, id); ok {
		return details, nil
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	variants, err := s.repo.ListVariants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}

	details := &domain.TripDetails{Trip: *trip}
	details.Variants = make([]domain.DateVariant, len(variants))
	for i, v := range variants {
		details.Variants[i] = *v
	}

	s.cache.SetTripDetails(ctx, details)

	return details, nil
}

func (s *TripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.repo.List(ctx)
}
