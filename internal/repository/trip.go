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

type TripRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTripRepo(db *dbpg.DB) *TripRepository {
	return &TripRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const tripColumns = `id, title, destination, country, description,
					 base_capacity, base_available_rooms, cancellation_deadline,
					 created_at, updated_at`

func (r *TripRepository) Create(ctx context.Context, t *domain.Trip, variants []*domain.DateVariant) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO trips (id, title, destination, country, description,
								 base_capacity, base_available_rooms, cancellation_deadline,
								 created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	if _, err = tx.ExecContext(ctx, query,
		t.ID, t.Title, t.Destination, t.Country, t.Description,
		t.BaseCapacity, t.BaseAvailableRooms, t.CancellationDeadline,
	); err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}

	variantQuery := `INSERT INTO date_variants (id, trip_id, variant_index, starts_at, ends_at, capacity, available_rooms)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, v := range variants {
		if _, err = tx.ExecContext(ctx, variantQuery,
			v.ID, v.TripID, v.VariantIndex, v.StartsAt, v.EndsAt, v.Capacity, v.AvailableRooms,
		); err != nil {
			return fmt.Errorf("insert date variant: %w", err)
		}
	}

	return tx.Commit()
}

func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	row, err := queryRow(ctx, r.db, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	var t domain.Trip
	if err = row.Scan(
		&t.ID, &t.Title, &t.Destination, &t.Country, &t.Description,
		&t.BaseCapacity, &t.BaseAvailableRooms, &t.CancellationDeadline,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}

	return &t, nil
}

func (r *TripRepository) GetVariant(ctx context.Context, tripID string, variantIndex int) (*domain.DateVariant, error) {
	query := `SELECT id, trip_id, variant_index, starts_at, ends_at, capacity, available_rooms
			  FROM date_variants
			  WHERE trip_id = $1 AND variant_index = $2`

	row, err := queryRow(ctx, r.db, r.strategy, query, tripID, variantIndex)
	if err != nil {
		return nil, fmt.Errorf("get date variant: %w", err)
	}

	var v domain.DateVariant
	if err = row.Scan(&v.ID, &v.TripID, &v.VariantIndex, &v.StartsAt, &v.EndsAt, &v.Capacity, &v.AvailableRooms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("scan date variant: %w", err)
	}

	return &v, nil
}

func (r *TripRepository) ListVariants(ctx context.Context, tripID string) ([]*domain.DateVariant, error) {
	query := `SELECT id, trip_id, variant_index, starts_at, ends_at, capacity, available_rooms
			  FROM date_variants
			  WHERE trip_id = $1
			  ORDER BY variant_index`

	rows, err := queryRows(ctx, r.db, r.strategy, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("list date variants: %w", err)
	}
	defer rows.Close()

	var res []*domain.DateVariant
	for rows.Next() {
		var v domain.DateVariant
		if err = rows.Scan(&v.ID, &v.TripID, &v.VariantIndex, &v.StartsAt, &v.EndsAt, &v.Capacity, &v.AvailableRooms); err != nil {
			return nil, fmt.Errorf("scan date variant: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *TripRepository) List(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`

	rows, err := queryRows(ctx, r.db, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var res []*domain.Trip
	for rows.Next() {
		var t domain.Trip
		if err = rows.Scan(
			&t.ID, &t.Title, &t.Destination, &t.Country, &t.Description,
			&t.BaseCapacity, &t.BaseAvailableRooms, &t.CancellationDeadline,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
