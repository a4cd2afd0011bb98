package service

import (
	"context"
	"testing"
	"time"

	"github.com/idanidan29/tripbooker/internal/clock"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTripInput() domain.CreateTripInput {
	return domain.CreateTripInput{
		Title:                "Azores Hiking Week",
		Destination:          "Ponta Delgada",
		Country:              "Portugal",
		BaseRooms:            10,
		CancellationDeadline: testNow.Add(30 * 24 * time.Hour),
		Variants: []domain.CreateVariantInput{
			{StartsAt: testNow.Add(60 * 24 * time.Hour), EndsAt: testNow.Add(67 * 24 * time.Hour), Capacity: 6},
		},
	}
}

func TestTripService_CreateTrip_Success(t *testing.T) {
	repo := mocks.NewMockTripRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	svc := NewTripService(repo, cache, clock.NewFixed(testNow))

	input := validTripInput()

	var gotVariants []*domain.DateVariant
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ *domain.Trip, variants []*domain.DateVariant) error {
			gotVariants = variants
			return nil
		},
	)

	trip, err := svc.CreateTrip(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, input.Title, trip.Title)
	assert.Equal(t, 10, trip.BaseCapacity)
	assert.Equal(t, 10, trip.BaseAvailableRooms)

	require.Len(t, gotVariants, 1)
	assert.Equal(t, trip.ID, gotVariants[0].TripID)
	assert.Equal(t, 0, gotVariants[0].VariantIndex)
	assert.Equal(t, 6, gotVariants[0].Capacity)
	assert.Equal(t, 6, gotVariants[0].AvailableRooms)
}

func TestTripService_CreateTrip_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateTripInput)
	}{
		{"missing title", func(in *domain.CreateTripInput) { in.Title = "" }},
		{"missing destination", func(in *domain.CreateTripInput) { in.Destination = "" }},
		{"negative base rooms", func(in *domain.CreateTripInput) { in.BaseRooms = -1 }},
		{"deadline in the past", func(in *domain.CreateTripInput) {
			in.CancellationDeadline = testNow.Add(-time.Hour)
		}},
		{"negative variant capacity", func(in *domain.CreateTripInput) {
			in.Variants[0].Capacity = -2
		}},
		{"variant ends before it starts", func(in *domain.CreateTripInput) {
			in.Variants[0].EndsAt = in.Variants[0].StartsAt.Add(-time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTripRepo(t)
			cache := mocks.NewMockAvailabilityCache(t)
			svc := NewTripService(repo, cache, clock.NewFixed(testNow))

			input := validTripInput()
			tt.mutate(&input)

			_, err := svc.CreateTrip(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTripService_GetDetails_CacheHit(t *testing.T) {
	repo := mocks.NewMockTripRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	svc := NewTripService(repo, cache, clock.NewFixed(testNow))

	cached := &domain.TripDetails{Trip: domain.Trip{ID: "t1", Title: "Azores Hiking Week"}}
	cache.EXPECT().GetTripDetails(mock.Anything, "t1").Return(cached, true)

	details, err := svc.GetDetails(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, cached, details)
}

func TestTripService_GetDetails_CacheMissLoadsAndFills(t *testing.T) {
	repo := mocks.NewMockTripRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	svc := NewTripService(repo, cache, clock.NewFixed(testNow))

	trip := &domain.Trip{ID: "t1", Title: "Azores Hiking Week", BaseAvailableRooms: 4}
	variant := &domain.DateVariant{ID: "v1", TripID: "t1", VariantIndex: 0, AvailableRooms: 2}

	cache.EXPECT().GetTripDetails(mock.Anything, "t1").Return(nil, false)
	repo.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	repo.EXPECT().ListVariants(mock.Anything, "t1").Return([]*domain.DateVariant{variant}, nil)
	cache.EXPECT().SetTripDetails(mock.Anything, mock.Anything).Return()

	details, err := svc.GetDetails(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, *trip, details.Trip)
	require.Len(t, details.Variants, 1)
	assert.Equal(t, *variant, details.Variants[0])
}

func TestTripService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockTripRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	svc := NewTripService(repo, cache, clock.NewFixed(testNow))

	cache.EXPECT().GetTripDetails(mock.Anything, "missing").Return(nil, false)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTripNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}
