package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// InventoryRepository owns the room counters on the trips and date_variants
// rows. A pool with date selector -1 lives on the trip row, any other
// selector on the matching variant row.
type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *InventoryRepository) Lock(ctx context.Context, pool domain.Pool) (int, error) {
	var query string
	var args []any
	if pool.IsBase() {
		query = `SELECT base_available_rooms FROM trips WHERE id = $1 FOR UPDATE`
		args = []any{pool.TripID}
	} else {
		query = `SELECT available_rooms FROM date_variants
				 WHERE trip_id = $1 AND variant_index = $2
				 FOR UPDATE`
		args = []any{pool.TripID, pool.DateSelector}
	}

	row, err := queryRow(ctx, r.db, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("lock pool: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, poolNotFound(pool)
		}
		return 0, fmt.Errorf("scan pool: %w", err)
	}

	return available, nil
}

func (r *InventoryRepository) TryDecrement(ctx context.Context, pool domain.Pool, qty int) (bool, error) {
	var query string
	var args []any
	if pool.IsBase() {
		query = `UPDATE trips
				 SET base_available_rooms = base_available_rooms - $2, updated_at = now()
				 WHERE id = $1 AND base_available_rooms >= $2`
		args = []any{pool.TripID, qty}
	} else {
		query = `UPDATE date_variants
				 SET available_rooms = available_rooms - $3
				 WHERE trip_id = $1 AND variant_index = $2 AND available_rooms >= $3`
		args = []any{pool.TripID, pool.DateSelector, qty}
	}

	res, err := execQuery(ctx, r.db, r.strategy, query, args...)
	if err != nil {
		return false, fmt.Errorf("decrement pool: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("decrement rows affected: %w", err)
	}
	if affected == 1 {
		return true, nil
	}

	// Guard failed: either the pool does not exist or it cannot cover qty.
	if _, err := r.Peek(ctx, pool); err != nil {
		return false, err
	}
	return false, nil
}

func (r *InventoryRepository) Increment(ctx context.Context, pool domain.Pool, qty int) (int, error) {
	// The FROM subquery reads the pre-update row so the clamped excess can
	// be computed in one statement.
	var query string
	var args []any
	if pool.IsBase() {
		query = `UPDATE trips t
				 SET base_available_rooms = LEAST(t.base_capacity, o.prev + $2),
				     updated_at = now()
				 FROM (SELECT id, base_available_rooms AS prev, base_capacity AS cap
				       FROM trips WHERE id = $1 FOR UPDATE) o
				 WHERE t.id = o.id
				 RETURNING GREATEST(0, o.prev + $2 - o.cap)`
		args = []any{pool.TripID, qty}
	} else {
		query = `UPDATE date_variants v
				 SET available_rooms = LEAST(v.capacity, o.prev + $3)
				 FROM (SELECT id, available_rooms AS prev, capacity AS cap
				       FROM date_variants WHERE trip_id = $1 AND variant_index = $2 FOR UPDATE) o
				 WHERE v.id = o.id
				 RETURNING GREATEST(0, o.prev + $3 - o.cap)`
		args = []any{pool.TripID, pool.DateSelector, qty}
	}

	row, err := queryRow(ctx, r.db, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("increment pool: %w", err)
	}

	var clamped int
	if err = row.Scan(&clamped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, poolNotFound(pool)
		}
		return 0, fmt.Errorf("scan clamp: %w", err)
	}

	return clamped, nil
}

func (r *InventoryRepository) Peek(ctx context.Context, pool domain.Pool) (int, error) {
	var query string
	var args []any
	if pool.IsBase() {
		query = `SELECT base_available_rooms FROM trips WHERE id = $1`
		args = []any{pool.TripID}
	} else {
		query = `SELECT available_rooms FROM date_variants
				 WHERE trip_id = $1 AND variant_index = $2`
		args = []any{pool.TripID, pool.DateSelector}
	}

	row, err := queryRow(ctx, r.db, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("peek pool: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, poolNotFound(pool)
		}
		return 0, fmt.Errorf("scan pool: %w", err)
	}

	return available, nil
}

func poolNotFound(pool domain.Pool) error {
	if pool.IsBase() {
		return domain.ErrTripNotFound
	}
	return domain.ErrVariantNotFound
}
