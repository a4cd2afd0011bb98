package ports

import (
	"context"
	"time"

	"github.com/idanidan29/tripbooker/internal/domain"
)

// CartLedger stores pending (unpaid) holds. An entry's quantity is already
// subtracted from its pool, so every mutation here must be paired with the
// matching inventory move in the same transaction.
type CartLedger interface {
	// Upsert creates an entry for (user, trip, dateSelector) or, if one
	// exists, adds qty to it and refreshes the expiry.
	Upsert(ctx context.Context, userID, tripID string, dateSelector, qty int, expiresAt time.Time) (*domain.CartEntry, error)

	// Remove deletes the entry and returns it so the caller can reconcile
	// inventory. Returns domain.ErrCartEntryNotFound when absent, which
	// makes concurrent sweeps idempotent.
	Remove(ctx context.Context, id string) (*domain.CartEntry, error)

	ListByUser(ctx context.Context, userID string) ([]*domain.CartEntry, error)

	// ListExpired returns up to limit entries whose expiry is at or before
	// now, oldest first. Each call recomputes from current state.
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.CartEntry, error)

	// TotalQuantityForPool sums the user's held quantity across one pool.
	TotalQuantityForPool(ctx context.Context, userID string, pool domain.Pool) (int, error)
}
