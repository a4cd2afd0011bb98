package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/idanidan29/tripbooker/internal/clock"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	tx        *mocks.MockTxRunner
	inventory *mocks.MockInventoryStore
	cart      *mocks.MockCartLedger
	waitlist  *mocks.MockWaitlistQueue
	bookings  *mocks.MockBookingRepo
	trips     *mocks.MockTripRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockWaitlistNotifier
	alerter   *mocks.MockOpsAlerter
	cache     *mocks.MockAvailabilityCache
}

func newReservationService(t *testing.T, clk clock.Clock) (*ReservationService, *reservationMocks) {
	t.Helper()
	m := &reservationMocks{
		tx:        mocks.NewMockTxRunner(t),
		inventory: mocks.NewMockInventoryStore(t),
		cart:      mocks.NewMockCartLedger(t),
		waitlist:  mocks.NewMockWaitlistQueue(t),
		bookings:  mocks.NewMockBookingRepo(t),
		trips:     mocks.NewMockTripRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockWaitlistNotifier(t),
		alerter:   mocks.NewMockOpsAlerter(t),
		cache:     mocks.NewMockAvailabilityCache(t),
	}

	svc := NewReservationService(
		m.tx, m.inventory, m.cart, m.waitlist, m.bookings,
		m.trips, m.users, m.notifier, m.alerter, m.cache,
		clk, newTestLogger(t),
	)
	return svc, m
}

// passTx makes WithTx call through to fn on the same context.
func (m *reservationMocks) passTx() {
	m.tx.EXPECT().WithTx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func basePool(tripID string) domain.Pool {
	return domain.Pool{TripID: tripID, DateSelector: domain.BaseDateSelector}
}

// --- RequestReservation ---

func TestReservationService_RequestReservation_Held(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	expiresAt := testNow.Add(domain.HoldTTL)
	entry := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 2, ExpiresAt: expiresAt}

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1", BaseCapacity: 10}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(5, nil)
	m.cart.EXPECT().TotalQuantityForPool(mock.Anything, "u1", pool).Return(0, nil)
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 2).Return(true, nil)
	m.cart.EXPECT().Upsert(mock.Anything, "u1", "t1", -1, 2, expiresAt).Return(entry, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	result, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeHeld, result.Outcome)
	assert.Equal(t, entry, result.Entry)
}

func TestReservationService_RequestReservation_VariantPool(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := domain.Pool{TripID: "t1", DateSelector: 0}
	expiresAt := testNow.Add(domain.HoldTTL)

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1", BaseCapacity: 10}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.trips.EXPECT().GetVariant(mock.Anything, "t1", 0).Return(&domain.DateVariant{TripID: "t1", VariantIndex: 0, Capacity: 4}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(3, nil)
	m.cart.EXPECT().TotalQuantityForPool(mock.Anything, "u1", pool).Return(1, nil)
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 1).Return(true, nil)
	m.cart.EXPECT().Upsert(mock.Anything, "u1", "t1", 0, 1, expiresAt).
		Return(&domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: 0, Quantity: 1}, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	result, err := svc.RequestReservation(context.Background(), "u1", "t1", 0, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeHeld, result.Outcome)
}

func TestReservationService_RequestReservation_SoldOutPromptsWaitlist(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, basePool("t1")).Return(0, nil)
	m.waitlist.EXPECT().FindActive(mock.Anything, "u1", "t1").Return(nil, nil)
	m.waitlist.EXPECT().CountWaiting(mock.Anything, "t1").Return(3, nil)

	result, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePromptWaitlist, result.Outcome)
	assert.Equal(t, 3, result.QueueLength)
	assert.Nil(t, result.Entry)
}

func TestReservationService_RequestReservation_SoldOutAlreadyOnWaitlist(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, basePool("t1")).Return(0, nil)
	m.waitlist.EXPECT().FindActive(mock.Anything, "u1", "t1").
		Return(&domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusWaiting}, nil)
	m.waitlist.EXPECT().CountWaiting(mock.Anything, "t1").Return(5, nil)

	result, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyOnWaitlist, result.Outcome)
	assert.Equal(t, 5, result.QueueLength)
}

func TestReservationService_RequestReservation_InsufficientInventory(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, basePool("t1")).Return(1, nil)

	_, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestReservationService_RequestReservation_DecrementRaceRollsBack(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1", BaseCapacity: 5}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(2, nil)
	m.cart.EXPECT().TotalQuantityForPool(mock.Anything, "u1", pool).Return(0, nil)
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 2).Return(false, nil)

	_, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestReservationService_RequestReservation_HoldCappedAtCapacity(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1", BaseCapacity: 5}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(3, nil)
	m.cart.EXPECT().TotalQuantityForPool(mock.Anything, "u1", pool).Return(3, nil)

	_, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestReservationService_RequestReservation_InvalidQuantity(t *testing.T) {
	svc, _ := newReservationService(t, clock.NewFixed(testNow))

	_, err := svc.RequestReservation(context.Background(), "u1", "t1", domain.BaseDateSelector, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_RequestReservation_TripNotFound(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.trips.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTripNotFound)

	_, err := svc.RequestReservation(context.Background(), "u1", "missing", domain.BaseDateSelector, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

// --- JoinWaitlist ---

func TestReservationService_JoinWaitlist_Success(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	entry := &domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusWaiting}

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.waitlist.EXPECT().Enqueue(mock.Anything, "u1", "t1").Return(entry, nil)
	m.waitlist.EXPECT().CountWaiting(mock.Anything, "t1").Return(4, nil)

	got, queueLen, err := svc.JoinWaitlist(context.Background(), "u1", "t1")

	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.Equal(t, 4, queueLen)
}

func TestReservationService_JoinWaitlist_Idempotent(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.waitlist.EXPECT().Enqueue(mock.Anything, "u1", "t1").Return(nil, domain.ErrAlreadyOnWaitlist)
	m.waitlist.EXPECT().CountWaiting(mock.Anything, "t1").Return(2, nil)

	got, queueLen, err := svc.JoinWaitlist(context.Background(), "u1", "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyOnWaitlist)
	assert.Nil(t, got)
	assert.Equal(t, 2, queueLen)
}

// --- ReleaseHold / promotion ---

func TestReservationService_ReleaseHold_PromotesInFIFOOrder(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	expiresAt := testNow.Add(domain.HoldTTL)
	released := &domain.CartEntry{ID: "c1", UserID: "u0", TripID: "t1", DateSelector: -1, Quantity: 2}
	first := &domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusNotified}
	second := &domain.WaitlistEntry{ID: "w2", UserID: "u2", TripID: "t1", Status: domain.WaitlistStatusNotified}

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(released, nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 2).Return(0, nil)

	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(2, nil).Once()
	m.waitlist.EXPECT().DequeueNext(mock.Anything, "t1", expiresAt).Return(first, nil).Once()
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 1).Return(true, nil).Once()
	m.cart.EXPECT().Upsert(mock.Anything, "u1", "t1", -1, 1, expiresAt).
		Return(&domain.CartEntry{ID: "c2", UserID: "u1"}, nil).Once()

	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(1, nil).Once()
	m.waitlist.EXPECT().DequeueNext(mock.Anything, "t1", expiresAt).Return(second, nil).Once()
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 1).Return(true, nil).Once()
	m.cart.EXPECT().Upsert(mock.Anything, "u2", "t1", -1, 1, expiresAt).
		Return(&domain.CartEntry{ID: "c3", UserID: "u2"}, nil).Once()

	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	var (
		mu       sync.Mutex
		notified []string
	)
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: id + "@example.com"}, nil
		},
	)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1", Destination: "Lisbon"}, nil)
	m.notifier.EXPECT().NotifyRoomAvailable(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, user *domain.User, _ *domain.Trip) error {
			mu.Lock()
			notified = append(notified, user.ID)
			mu.Unlock()
			return nil
		},
	)
	m.waitlist.EXPECT().MarkDispatched(mock.Anything, "w1", true).Return(nil)
	m.waitlist.EXPECT().MarkDispatched(mock.Anything, "w2", true).Return(nil)

	err := svc.ReleaseHold(context.Background(), "c1")

	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond) // goroutine notify
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"u1", "u2"}, notified)
}

func TestReservationService_ReleaseHold_NotFound(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "missing").Return(nil, domain.ErrCartEntryNotFound)

	err := svc.ReleaseHold(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCartEntryNotFound)
}

func TestReservationService_ReleaseHold_NotificationFailureKeepsHold(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	expiresAt := testNow.Add(domain.HoldTTL)
	released := &domain.CartEntry{ID: "c1", UserID: "u0", TripID: "t1", DateSelector: -1, Quantity: 1}
	promoted := &domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusNotified}

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(released, nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 1).Return(0, nil)
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(1, nil).Once()
	m.waitlist.EXPECT().DequeueNext(mock.Anything, "t1", expiresAt).Return(promoted, nil).Once()
	m.inventory.EXPECT().TryDecrement(mock.Anything, pool, 1).Return(true, nil).Once()
	m.cart.EXPECT().Upsert(mock.Anything, "u1", "t1", -1, 1, expiresAt).
		Return(&domain.CartEntry{ID: "c2", UserID: "u1"}, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.notifier.EXPECT().NotifyRoomAvailable(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down"))
	m.waitlist.EXPECT().MarkDispatched(mock.Anything, "w1", false).Return(nil)

	err := svc.ReleaseHold(context.Background(), "c1")

	require.NoError(t, err) // the hold and promotion are already committed

	time.Sleep(100 * time.Millisecond)
}

func TestReservationService_ReleaseHold_ClampReported(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	released := &domain.CartEntry{ID: "c1", UserID: "u0", TripID: "t1", DateSelector: -1, Quantity: 3}

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(released, nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 3).Return(1, nil)
	m.alerter.EXPECT().AlertInventoryClamp(mock.Anything, pool, 1).Return()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(0, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	err := svc.ReleaseHold(context.Background(), "c1")

	require.NoError(t, err)
}

// --- PromoteWaitlist ---

func TestReservationService_PromoteWaitlist_StopsWhenQueueEmpty(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	expiresAt := testNow.Add(domain.HoldTTL)

	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(5, nil).Once()
	m.waitlist.EXPECT().DequeueNext(mock.Anything, "t1", expiresAt).Return(nil, nil).Once()

	err := svc.PromoteWaitlist(context.Background(), "t1", 3)

	require.NoError(t, err)
}

func TestReservationService_PromoteWaitlist_StopsWhenSoldOut(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.passTx()
	m.inventory.EXPECT().Lock(mock.Anything, basePool("t1")).Return(0, nil).Once()

	err := svc.PromoteWaitlist(context.Background(), "t1", 2)

	require.NoError(t, err)
}

// --- Checkout ---

func TestReservationService_Checkout_Success(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	entry := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 2}

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(entry, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.waitlist.EXPECT().MarkBooked(mock.Anything, "u1", "t1").Return(nil)

	booking, err := svc.Checkout(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "t1", booking.TripID)
	assert.Equal(t, 2, booking.Quantity)
	assert.NotEmpty(t, booking.ID)
}

func TestReservationService_Checkout_WrongUser(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	entry := &domain.CartEntry{ID: "c1", UserID: "someone-else", TripID: "t1", Quantity: 1}

	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(entry, nil)

	_, err := svc.Checkout(context.Background(), "u1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCartEntryNotFound)
}

// --- CancelBooking ---

func TestReservationService_CancelBooking_Success(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	booking := &domain.Booking{ID: "b1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 2, Status: domain.BookingStatusConfirmed}
	trip := &domain.Trip{ID: "t1", CancellationDeadline: testNow.Add(48 * time.Hour)}

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.passTx()
	m.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 2).Return(0, nil)
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(2, nil).Once()
	m.waitlist.EXPECT().DequeueNext(mock.Anything, "t1", testNow.Add(domain.HoldTTL)).Return(nil, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	err := svc.CancelBooking(context.Background(), "b1")

	require.NoError(t, err)
}

func TestReservationService_CancelBooking_DeadlinePassed(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	booking := &domain.Booking{ID: "b1", TripID: "t1", Quantity: 1, Status: domain.BookingStatusConfirmed}
	trip := &domain.Trip{ID: "t1", CancellationDeadline: testNow.Add(-time.Hour)}

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)

	err := svc.CancelBooking(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
}

func TestReservationService_CancelBooking_NotActive(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	booking := &domain.Booking{ID: "b1", TripID: "t1", Quantity: 1, Status: domain.BookingStatusCancelled}
	trip := &domain.Trip{ID: "t1", CancellationDeadline: testNow.Add(48 * time.Hour)}

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.passTx()
	m.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(domain.ErrBookingNotActive)

	err := svc.CancelBooking(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}

// --- SweepExpired ---

func TestReservationService_SweepExpired_ReclaimsAndAgesOut(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	expired := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 2, ExpiresAt: testNow.Add(-time.Hour)}
	active := &domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusNotified}
	lapsed := &domain.WaitlistEntry{ID: "w9", UserID: "u9", TripID: "t1", Status: domain.WaitlistStatusNotified}

	m.cart.EXPECT().ListExpired(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.CartEntry{expired}, nil)
	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(expired, nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 2).Return(0, nil)
	m.waitlist.EXPECT().FindActive(mock.Anything, "u1", "t1").Return(active, nil)
	m.waitlist.EXPECT().MarkExpired(mock.Anything, "w1").Return(nil)
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(0, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()

	m.waitlist.EXPECT().ListLapsedNotified(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.WaitlistEntry{lapsed}, nil)
	m.waitlist.EXPECT().MarkExpired(mock.Anything, "w9").Return(nil)

	reclaimed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, reclaimed)
}

func TestReservationService_SweepExpired_VariantHoldLeavesPromotionOpen(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	// The user was promoted on the base pool (notified entry w1, base hold
	// still live) and separately held rooms on a date variant. Only the
	// variant hold lapsed, so w1 must stay notified.
	variantPool := domain.Pool{TripID: "t1", DateSelector: 2}
	expired := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: 2, Quantity: 1, ExpiresAt: testNow.Add(-time.Hour)}

	m.cart.EXPECT().ListExpired(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.CartEntry{expired}, nil)
	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(expired, nil)
	m.inventory.EXPECT().Increment(mock.Anything, variantPool, 1).Return(0, nil)
	m.inventory.EXPECT().Lock(mock.Anything, basePool("t1")).Return(0, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()
	m.waitlist.EXPECT().ListLapsedNotified(mock.Anything, testNow, defaultSweepBatch).Return(nil, nil)

	reclaimed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, reclaimed)
	m.waitlist.AssertNotCalled(t, "MarkExpired", mock.Anything, mock.Anything)
}

func TestReservationService_SweepExpired_SkipsAlreadyRemoved(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	expired := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 2}

	m.cart.EXPECT().ListExpired(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.CartEntry{expired}, nil)
	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(nil, domain.ErrCartEntryNotFound)
	m.waitlist.EXPECT().ListLapsedNotified(mock.Anything, testNow, defaultSweepBatch).Return(nil, nil)

	reclaimed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, reclaimed)
}

func TestReservationService_SweepExpired_OneBadRowDoesNotHaltSweep(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pool := basePool("t1")
	bad := &domain.CartEntry{ID: "c1", UserID: "u1", TripID: "t1", DateSelector: -1, Quantity: 1}
	good := &domain.CartEntry{ID: "c2", UserID: "u2", TripID: "t1", DateSelector: -1, Quantity: 3}

	m.cart.EXPECT().ListExpired(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.CartEntry{bad, good}, nil)
	m.passTx()
	m.cart.EXPECT().Remove(mock.Anything, "c1").Return(nil, errors.New("db error"))
	m.cart.EXPECT().Remove(mock.Anything, "c2").Return(good, nil)
	m.inventory.EXPECT().Increment(mock.Anything, pool, 3).Return(0, nil)
	m.waitlist.EXPECT().FindActive(mock.Anything, "u2", "t1").Return(nil, nil)
	m.inventory.EXPECT().Lock(mock.Anything, pool).Return(0, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "t1").Return()
	m.waitlist.EXPECT().ListLapsedNotified(mock.Anything, testNow, defaultSweepBatch).Return(nil, nil)

	reclaimed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, reclaimed)
}

// --- ResendNotifications ---

func TestReservationService_ResendNotifications(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	pending := &domain.WaitlistEntry{ID: "w1", UserID: "u1", TripID: "t1", Status: domain.WaitlistStatusNotified}

	m.waitlist.EXPECT().ListUndelivered(mock.Anything, testNow, defaultSweepBatch).Return([]*domain.WaitlistEntry{pending}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.trips.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Trip{ID: "t1"}, nil)
	m.notifier.EXPECT().NotifyRoomAvailable(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.waitlist.EXPECT().MarkDispatched(mock.Anything, "w1", true).Return(nil)

	resent, err := svc.ResendNotifications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resent)
}

func TestReservationService_ResendNotifications_NonePending(t *testing.T) {
	svc, m := newReservationService(t, clock.NewFixed(testNow))

	m.waitlist.EXPECT().ListUndelivered(mock.Anything, testNow, defaultSweepBatch).Return(nil, nil)

	resent, err := svc.ResendNotifications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resent)
}
