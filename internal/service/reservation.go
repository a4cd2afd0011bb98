package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/clock"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/metrics"
	"github.com/idanidan29/tripbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultSweepBatch = 100

// ReservationService is the single authority for room-count mutation. Every
// path that touches a pool counter, the cart ledger or the waitlist runs
// through here, inside one transaction per operation: the pool row lock
// taken first serializes all writers of that pool.
type ReservationService struct {
	tx        ports.TxRunner
	inventory ports.InventoryStore
	cart      ports.CartLedger
	waitlist  ports.WaitlistQueue
	bookings  ports.BookingRepo
	trips     ports.TripRepo
	users     ports.UserRepo
	notifier  ports.WaitlistNotifier
	alerter   ports.OpsAlerter
	cache     ports.AvailabilityCache
	clock     clock.Clock
	holdTTL   time.Duration
	logger    logger.Logger
}

type ReservationOption func(*ReservationService)

// WithHoldTTL overrides the default 24h hold window.
func WithHoldTTL(d time.Duration) ReservationOption {
	return func(s *ReservationService) {
		if d > 0 {
			s.holdTTL = d
		}
	}
}

func NewReservationService(
	tx ports.TxRunner,
	inventory ports.InventoryStore,
	cart ports.CartLedger,
	waitlist ports.WaitlistQueue,
	bookings ports.BookingRepo,
	trips ports.TripRepo,
	users ports.UserRepo,
	notifier ports.WaitlistNotifier,
	alerter ports.OpsAlerter,
	cache ports.AvailabilityCache,
	clk clock.Clock,
	log logger.Logger,
	opts ...ReservationOption,
) *ReservationService {
	s := &ReservationService{
		tx:        tx,
		inventory: inventory,
		cart:      cart,
		waitlist:  waitlist,
		bookings:  bookings,
		trips:     trips,
		users:     users,
		notifier:  notifier,
		alerter:   alerter,
		cache:     cache,
		clock:     clk,
		holdTTL:   domain.HoldTTL,
		logger:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestReservation places a hold on qty rooms of the pool, or reports the
// waitlist state when the pool is sold out. A sold-out pool never creates a
// hold: the caller decides whether to join the waitlist.
func (s *ReservationService) RequestReservation(ctx context.Context, userID, tripID string, dateSelector, qty int) (*domain.ReservationResult, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("check trip: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	capacity := trip.BaseCapacity
	if dateSelector != domain.BaseDateSelector {
		variant, err := s.trips.GetVariant(ctx, tripID, dateSelector)
		if err != nil {
			return nil, fmt.Errorf("check date variant: %w", err)
		}
		capacity = variant.Capacity
	}

	pool := domain.Pool{TripID: tripID, DateSelector: dateSelector}
	var result *domain.ReservationResult

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		available, err := s.inventory.Lock(txCtx, pool)
		if err != nil {
			return err
		}

		if available == 0 {
			entry, err := s.waitlist.FindActive(txCtx, userID, tripID)
			if err != nil {
				return err
			}
			waiting, err := s.waitlist.CountWaiting(txCtx, tripID)
			if err != nil {
				return err
			}
			outcome := domain.OutcomePromptWaitlist
			if entry != nil {
				outcome = domain.OutcomeAlreadyOnWaitlist
			}
			result = &domain.ReservationResult{Outcome: outcome, QueueLength: waiting}
			return nil
		}

		if qty > available {
			return domain.ErrInsufficientInventory
		}

		// Upsert adds to an existing hold, so the entry's resulting quantity
		// must stay within the pool's provisioned capacity.
		held, err := s.cart.TotalQuantityForPool(txCtx, userID, pool)
		if err != nil {
			return err
		}
		if held+qty > capacity {
			return domain.ErrInsufficientInventory
		}

		ok, err := s.inventory.TryDecrement(txCtx, pool, qty)
		if err != nil {
			return err
		}
		if !ok {
			// Lost a race despite the lock; roll back with no partial state.
			return domain.ErrInsufficientInventory
		}

		entry, err := s.cart.Upsert(txCtx, userID, tripID, dateSelector, qty, s.clock.Now().Add(s.holdTTL))
		if err != nil {
			return err
		}

		result = &domain.ReservationResult{Outcome: domain.OutcomeHeld, Entry: entry}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientInventory) {
			metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		}
		return nil, err
	}

	metrics.ReservationsTotal.WithLabelValues(string(result.Outcome)).Inc()

	if result.Outcome == domain.OutcomeHeld {
		s.cache.Invalidate(ctx, tripID)
		s.logger.Info("hold placed",
			logger.String("user_id", userID),
			logger.String("trip_id", tripID),
			logger.Int("date_selector", dateSelector),
			logger.Int("quantity", qty),
		)
	}

	return result, nil
}

// JoinWaitlist enqueues the user for the trip. Joining twice is an
// idempotent no-op reported as domain.ErrAlreadyOnWaitlist.
func (s *ReservationService) JoinWaitlist(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, int, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("check trip: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, 0, fmt.Errorf("check user: %w", err)
	}

	entry, err := s.waitlist.Enqueue(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyOnWaitlist) {
			waiting, countErr := s.waitlist.CountWaiting(ctx, tripID)
			if countErr != nil {
				return nil, 0, countErr
			}
			return nil, waiting, domain.ErrAlreadyOnWaitlist
		}
		return nil, 0, fmt.Errorf("enqueue: %w", err)
	}

	waiting, err := s.waitlist.CountWaiting(ctx, tripID)
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("joined waitlist",
		logger.String("user_id", userID),
		logger.String("trip_id", tripID),
		logger.Int("queue_length", waiting),
	)

	return entry, waiting, nil
}

// ReleaseHold removes a cart entry, returns its rooms to the pool and
// promotes waiting users for the freed capacity.
func (s *ReservationService) ReleaseHold(ctx context.Context, cartEntryID string) error {
	var (
		released *domain.CartEntry
		promoted []*domain.WaitlistEntry
	)

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		entry, err := s.cart.Remove(txCtx, cartEntryID)
		if err != nil {
			return err
		}
		released = entry

		if err := s.reclaimRooms(txCtx, entry.Pool(), entry.Quantity); err != nil {
			return err
		}

		promoted, err = s.promoteLocked(txCtx, entry.TripID, entry.Quantity)
		return err
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, released.TripID)
	s.logger.Info("hold released",
		logger.String("cart_entry_id", released.ID),
		logger.String("trip_id", released.TripID),
		logger.Int("quantity", released.Quantity),
		logger.Int("promoted", len(promoted)),
	)

	s.dispatchPromotions(ctx, promoted)

	return nil
}

// PromoteWaitlist converts up to roomsFreed rooms of the trip's base pool
// into holds for the oldest waiting users, in FIFO order.
func (s *ReservationService) PromoteWaitlist(ctx context.Context, tripID string, roomsFreed int) error {
	var promoted []*domain.WaitlistEntry

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		promoted, err = s.promoteLocked(txCtx, tripID, roomsFreed)
		return err
	})
	if err != nil {
		return err
	}

	s.dispatchPromotions(ctx, promoted)

	return nil
}

// promoteLocked runs inside a transaction. It never decrements more rooms
// than roomsFreed and stops cleanly when either roomsFreed or the base
// pool's availability runs out.
func (s *ReservationService) promoteLocked(txCtx context.Context, tripID string, roomsFreed int) ([]*domain.WaitlistEntry, error) {
	base := domain.Pool{TripID: tripID, DateSelector: domain.BaseDateSelector}
	expiresAt := s.clock.Now().Add(s.holdTTL)

	var promoted []*domain.WaitlistEntry
	for roomsFreed > 0 {
		available, err := s.inventory.Lock(txCtx, base)
		if err != nil {
			return nil, err
		}
		if available == 0 {
			break
		}

		entry, err := s.waitlist.DequeueNext(txCtx, tripID, expiresAt)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}

		ok, err := s.inventory.TryDecrement(txCtx, base, 1)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrConflict
		}

		if _, err := s.cart.Upsert(txCtx, entry.UserID, tripID, domain.BaseDateSelector, 1, expiresAt); err != nil {
			return nil, err
		}

		promoted = append(promoted, entry)
		roomsFreed--
	}

	if n := len(promoted); n > 0 {
		metrics.PromotionsTotal.Add(float64(n))
	}

	return promoted, nil
}

// dispatchPromotions notifies promoted users after the transaction has
// committed. A failed dispatch never rolls the hold back: the entry is
// flagged for the resend sweep instead.
func (s *ReservationService) dispatchPromotions(ctx context.Context, promoted []*domain.WaitlistEntry) {
	if len(promoted) == 0 {
		return
	}

	go func(ctx context.Context) {
		for _, entry := range promoted {
			s.notifyPromoted(ctx, entry)
		}
	}(context.WithoutCancel(ctx))
}

func (s *ReservationService) notifyPromoted(ctx context.Context, entry *domain.WaitlistEntry) {
	user, err := s.users.GetByID(ctx, entry.UserID)
	if err != nil {
		s.logger.Error("failed to get user for promotion notification",
			logger.String("user_id", entry.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	trip, err := s.trips.GetByID(ctx, entry.TripID)
	if err != nil {
		s.logger.Error("failed to get trip for promotion notification",
			logger.String("trip_id", entry.TripID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = s.notifier.NotifyRoomAvailable(ctx, user, trip)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("room-available notification failed",
			logger.String("user_id", entry.UserID),
			logger.String("trip_id", entry.TripID),
			logger.String("error", err.Error()),
		)
	} else {
		metrics.NotificationsTotal.WithLabelValues("ok").Inc()
	}

	if markErr := s.waitlist.MarkDispatched(ctx, entry.ID, err == nil); markErr != nil {
		s.logger.Error("failed to record notification dispatch",
			logger.String("waitlist_entry_id", entry.ID),
			logger.String("error", markErr.Error()),
		)
	}
}

// reclaimRooms increments the pool and reports a clamp when the increment
// exceeded capacity, which means some release was double counted upstream.
func (s *ReservationService) reclaimRooms(txCtx context.Context, pool domain.Pool, qty int) error {
	clamped, err := s.inventory.Increment(txCtx, pool, qty)
	if err != nil {
		return err
	}

	if clamped > 0 {
		metrics.InventoryClampTotal.Add(float64(clamped))
		s.logger.Error("inventory increment clamped at capacity",
			logger.String("trip_id", pool.TripID),
			logger.Int("date_selector", pool.DateSelector),
			logger.Int("excess", clamped),
		)
		s.alerter.AlertInventoryClamp(txCtx, pool, clamped)
	}

	return nil
}

// Checkout converts a hold into a confirmed booking. Payment is simulated:
// the hold's rooms simply stay consumed. A matching notified waitlist entry
// is closed as booked.
func (s *ReservationService) Checkout(ctx context.Context, userID, cartEntryID string) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		entry, err := s.cart.Remove(txCtx, cartEntryID)
		if err != nil {
			return err
		}
		if entry.UserID != userID {
			return domain.ErrCartEntryNotFound
		}

		booking = &domain.Booking{
			ID:           uuid.New().String(),
			UserID:       entry.UserID,
			TripID:       entry.TripID,
			DateSelector: entry.DateSelector,
			Quantity:     entry.Quantity,
			Status:       domain.BookingStatusConfirmed,
		}
		if err := s.bookings.Create(txCtx, booking); err != nil {
			return err
		}

		return s.waitlist.MarkBooked(txCtx, entry.UserID, entry.TripID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.String("trip_id", booking.TripID),
	)

	return booking, nil
}

// CancelBooking releases a confirmed booking's rooms back to the pool and
// promotes waiting users. Refused after the trip's cancellation deadline.
func (s *ReservationService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	trip, err := s.trips.GetByID(ctx, booking.TripID)
	if err != nil {
		return fmt.Errorf("get trip: %w", err)
	}

	if s.clock.Now().After(trip.CancellationDeadline) {
		return domain.ErrDeadlinePassed
	}

	var promoted []*domain.WaitlistEntry

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.bookings.Cancel(txCtx, bookingID); err != nil {
			return err
		}

		pool := domain.Pool{TripID: booking.TripID, DateSelector: booking.DateSelector}
		if err := s.reclaimRooms(txCtx, pool, booking.Quantity); err != nil {
			return err
		}

		promoted, err = s.promoteLocked(txCtx, booking.TripID, booking.Quantity)
		return err
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, booking.TripID)
	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("trip_id", booking.TripID),
		logger.Int("quantity", booking.Quantity),
		logger.Int("promoted", len(promoted)),
	)

	s.dispatchPromotions(ctx, promoted)

	return nil
}

// SweepExpired reclaims rooms held by lapsed cart entries and ages out
// notified waitlist entries whose window closed. Each entry is processed in
// its own transaction; one bad row never halts the sweep. Re-entrant safe:
// removes and marks are idempotent against already-processed state.
func (s *ReservationService) SweepExpired(ctx context.Context) (int, error) {
	now := s.clock.Now()

	expired, err := s.cart.ListExpired(ctx, now, defaultSweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list expired holds: %w", err)
	}

	reclaimed := 0
	for _, entry := range expired {
		if err := s.reclaimExpiredHold(ctx, entry); err != nil {
			if errors.Is(err, domain.ErrCartEntryNotFound) {
				continue // an overlapping sweep got there first
			}
			s.logger.Error("failed to reclaim expired hold",
				logger.String("cart_entry_id", entry.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		reclaimed += entry.Quantity
	}

	// Notified entries whose promoted hold is already gone still need to be
	// aged out.
	lapsed, err := s.waitlist.ListLapsedNotified(ctx, now, defaultSweepBatch)
	if err != nil {
		return reclaimed, fmt.Errorf("list lapsed notified: %w", err)
	}
	for _, entry := range lapsed {
		if err := s.waitlist.MarkExpired(ctx, entry.ID); err != nil {
			s.logger.Error("failed to expire waitlist entry",
				logger.String("waitlist_entry_id", entry.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if reclaimed > 0 {
		metrics.SweepReclaimedRooms.Add(float64(reclaimed))
	}

	return reclaimed, nil
}

// reclaimExpiredHold routes an expired entry through the same release path
// as an explicit removal, and additionally ages out the matching notified
// waitlist entry when the expired hold was a promotion.
func (s *ReservationService) reclaimExpiredHold(ctx context.Context, entry *domain.CartEntry) error {
	var promoted []*domain.WaitlistEntry

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		removed, err := s.cart.Remove(txCtx, entry.ID)
		if err != nil {
			return err
		}

		if err := s.reclaimRooms(txCtx, removed.Pool(), removed.Quantity); err != nil {
			return err
		}

		// A promotion's hold always sits on the base pool. An expired
		// variant hold says nothing about the promotion window, so only a
		// lapsed base hold ages the notified entry out.
		if removed.Pool().IsBase() {
			active, err := s.waitlist.FindActive(txCtx, removed.UserID, removed.TripID)
			if err != nil {
				return err
			}
			if active != nil && active.Status == domain.WaitlistStatusNotified {
				if err := s.waitlist.MarkExpired(txCtx, active.ID); err != nil {
					return err
				}
			}
		}

		promoted, err = s.promoteLocked(txCtx, removed.TripID, removed.Quantity)
		return err
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, entry.TripID)
	s.dispatchPromotions(ctx, promoted)

	return nil
}

// ResendNotifications retries room-available dispatches that failed, for
// promotions whose window is still open.
func (s *ReservationService) ResendNotifications(ctx context.Context) (int, error) {
	pending, err := s.waitlist.ListUndelivered(ctx, s.clock.Now(), defaultSweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list undelivered: %w", err)
	}

	for _, entry := range pending {
		s.notifyPromoted(ctx, entry)
	}

	return len(pending), nil
}

// CartForUser lists the user's active holds.
func (s *ReservationService) CartForUser(ctx context.Context, userID string) ([]*domain.CartEntry, error) {
	return s.cart.ListByUser(ctx, userID)
}

// BookingsForUser lists the user's bookings.
func (s *ReservationService) BookingsForUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}
