package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CartRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const cartColumns = `id, user_id, trip_id, date_selector, quantity, expires_at, created_at, updated_at`

func (r *CartRepository) Upsert(ctx context.Context, userID, tripID string, dateSelector, qty int, expiresAt time.Time) (*domain.CartEntry, error) {
	query := `INSERT INTO cart_entries (id, user_id, trip_id, date_selector, quantity, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			  ON CONFLICT (user_id, trip_id, date_selector)
			  DO UPDATE SET quantity = cart_entries.quantity + EXCLUDED.quantity,
			                expires_at = EXCLUDED.expires_at,
			                updated_at = now()
			  RETURNING ` + cartColumns

	row, err := queryRow(ctx, r.db, r.strategy, query,
		uuid.New().String(), userID, tripID, dateSelector, qty, expiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert cart entry: %w", err)
	}

	return scanCartEntry(row)
}

func (r *CartRepository) Remove(ctx context.Context, id string) (*domain.CartEntry, error) {
	query := `DELETE FROM cart_entries WHERE id = $1 RETURNING ` + cartColumns

	row, err := queryRow(ctx, r.db, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("remove cart entry: %w", err)
	}

	entry, err := scanCartEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CartEntry, error) {
	query := `SELECT ` + cartColumns + `
			  FROM cart_entries
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := queryRows(ctx, r.db, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}
	defer rows.Close()

	return collectCartEntries(rows)
}

func (r *CartRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.CartEntry, error) {
	query := `SELECT ` + cartColumns + `
			  FROM cart_entries
			  WHERE expires_at <= $1
			  ORDER BY expires_at
			  LIMIT $2`

	rows, err := queryRows(ctx, r.db, r.strategy, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired cart entries: %w", err)
	}
	defer rows.Close()

	return collectCartEntries(rows)
}

func (r *CartRepository) TotalQuantityForPool(ctx context.Context, userID string, pool domain.Pool) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0)
			  FROM cart_entries
			  WHERE user_id = $1 AND trip_id = $2 AND date_selector = $3`

	row, err := queryRow(ctx, r.db, r.strategy, query, userID, pool.TripID, pool.DateSelector)
	if err != nil {
		return 0, fmt.Errorf("sum cart quantity: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan cart quantity: %w", err)
	}

	return total, nil
}

func scanCartEntry(row *sql.Row) (*domain.CartEntry, error) {
	var e domain.CartEntry
	if err := row.Scan(
		&e.ID, &e.UserID, &e.TripID, &e.DateSelector,
		&e.Quantity, &e.ExpiresAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan cart entry: %w", err)
	}
	return &e, nil
}

func collectCartEntries(rows *sql.Rows) ([]*domain.CartEntry, error) {
	var res []*domain.CartEntry
	for rows.Next() {
		var e domain.CartEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.TripID, &e.DateSelector,
			&e.Quantity, &e.ExpiresAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart entry: %w", err)
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}
