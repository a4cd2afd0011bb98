package ports

import (
	"context"

	"github.com/idanidan29/tripbooker/internal/domain"
)

// InventoryStore owns the per-pool room counters. All mutations on one pool
// are linearizable: Lock must be called first inside a transaction, which
// serializes every writer of that pool on its row lock.
type InventoryStore interface {
	// Lock reads the pool's available rooms under a row lock. Must run
	// inside a TxRunner transaction.
	Lock(ctx context.Context, pool domain.Pool) (int, error)

	// TryDecrement subtracts qty iff available >= qty. Returns false when
	// the pool cannot cover the quantity; never leaves a negative counter.
	TryDecrement(ctx context.Context, pool domain.Pool, qty int) (bool, error)

	// Increment adds qty back, clamped at the pool's provisioned capacity.
	// The returned value is the excess that was clamped away; anything
	// above zero indicates a reconciliation bug upstream.
	Increment(ctx context.Context, pool domain.Pool, qty int) (int, error)

	// Peek reads the pool's available rooms without locking.
	Peek(ctx context.Context, pool domain.Pool) (int, error)
}
