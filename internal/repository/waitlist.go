package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const waitlistColumns = `id, seq, user_id, trip_id, status, expires_at, notified_ok, created_at, updated_at`

func (r *WaitlistRepository) Enqueue(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, error) {
	query := `INSERT INTO waitlist_entries (id, user_id, trip_id, status, notified_ok, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, false, now(), now())
			  RETURNING ` + waitlistColumns

	row, err := queryRow(ctx, r.db, r.strategy, query,
		uuid.New().String(), userID, tripID, domain.WaitlistStatusWaiting,
	)
	if err != nil {
		return nil, fmt.Errorf("enqueue waitlist entry: %w", err)
	}

	entry, err := scanWaitlistEntry(row)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyOnWaitlist
		}
		return nil, err
	}

	return entry, nil
}

// DequeueNext promotes the oldest waiting entry for the trip. The inner
// SELECT pins FIFO order (created_at, then insertion id); callers serialize
// on the base pool's row lock, so no two promotions race for one room.
func (r *WaitlistRepository) DequeueNext(ctx context.Context, tripID string, expiresAt time.Time) (*domain.WaitlistEntry, error) {
	query := `UPDATE waitlist_entries
			  SET status = $3, expires_at = $2, notified_ok = false, updated_at = now()
			  WHERE id = (
			      SELECT id FROM waitlist_entries
			      WHERE trip_id = $1 AND status = ANY($4)
			      ORDER BY created_at, seq
			      LIMIT 1
			      FOR UPDATE
			  )
			  RETURNING ` + waitlistColumns

	row, err := queryRow(ctx, r.db, r.strategy, query,
		tripID, expiresAt, domain.WaitlistStatusNotified,
		pq.Array(domain.TransitionSourcesTo(domain.WaitlistStatusNotified)),
	)
	if err != nil {
		return nil, fmt.Errorf("dequeue waitlist entry: %w", err)
	}

	entry, err := scanWaitlistEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (r *WaitlistRepository) MarkExpired(ctx context.Context, id string) error {
	query := `UPDATE waitlist_entries
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`

	_, err := execQuery(ctx, r.db, r.strategy, query,
		id, domain.WaitlistStatusExpired,
		pq.Array(domain.TransitionSourcesTo(domain.WaitlistStatusExpired)),
	)
	if err != nil {
		return fmt.Errorf("mark waitlist entry expired: %w", err)
	}

	return nil
}

func (r *WaitlistRepository) MarkBooked(ctx context.Context, userID, tripID string) error {
	query := `UPDATE waitlist_entries
			  SET status = $3, updated_at = now()
			  WHERE user_id = $1 AND trip_id = $2 AND status = ANY($4)`

	_, err := execQuery(ctx, r.db, r.strategy, query,
		userID, tripID, domain.WaitlistStatusBooked,
		pq.Array(domain.TransitionSourcesTo(domain.WaitlistStatusBooked)),
	)
	if err != nil {
		return fmt.Errorf("mark waitlist entry booked: %w", err)
	}

	return nil
}

func (r *WaitlistRepository) MarkDispatched(ctx context.Context, id string, ok bool) error {
	query := `UPDATE waitlist_entries
			  SET notified_ok = $2, updated_at = now()
			  WHERE id = $1`

	_, err := execQuery(ctx, r.db, r.strategy, query, id, ok)
	if err != nil {
		return fmt.Errorf("mark waitlist dispatch: %w", err)
	}

	return nil
}

func (r *WaitlistRepository) FindActive(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE user_id = $1 AND trip_id = $2 AND status = ANY($3)`

	row, err := queryRow(ctx, r.db, r.strategy, query,
		userID, tripID, pq.Array(domain.ActiveWaitlistStatuses),
	)
	if err != nil {
		return nil, fmt.Errorf("find active waitlist entry: %w", err)
	}

	entry, err := scanWaitlistEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (r *WaitlistRepository) CountWaiting(ctx context.Context, tripID string) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist_entries
			  WHERE trip_id = $1 AND status = $2`

	row, err := queryRow(ctx, r.db, r.strategy, query, tripID, domain.WaitlistStatusWaiting)
	if err != nil {
		return 0, fmt.Errorf("count waiting: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan waiting count: %w", err)
	}

	return n, nil
}

func (r *WaitlistRepository) ListLapsedNotified(ctx context.Context, now time.Time, limit int) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE status = $1 AND expires_at <= $2
			  ORDER BY expires_at
			  LIMIT $3`

	rows, err := queryRows(ctx, r.db, r.strategy, query, domain.WaitlistStatusNotified, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list lapsed notified: %w", err)
	}
	defer rows.Close()

	return collectWaitlistEntries(rows)
}

func (r *WaitlistRepository) ListUndelivered(ctx context.Context, now time.Time, limit int) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE status = $1 AND notified_ok = false AND expires_at > $2
			  ORDER BY created_at
			  LIMIT $3`

	rows, err := queryRows(ctx, r.db, r.strategy, query, domain.WaitlistStatusNotified, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list undelivered: %w", err)
	}
	defer rows.Close()

	return collectWaitlistEntries(rows)
}

func scanWaitlistEntry(row *sql.Row) (*domain.WaitlistEntry, error) {
	var e domain.WaitlistEntry
	var expiresAt sql.NullTime
	if err := row.Scan(
		&e.ID, &e.Seq, &e.UserID, &e.TripID, &e.Status,
		&expiresAt, &e.NotifiedOK, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		e.ExpiresAt = &expiresAt.Time
	}
	return &e, nil
}

func collectWaitlistEntries(rows *sql.Rows) ([]*domain.WaitlistEntry, error) {
	var res []*domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		var expiresAt sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.Seq, &e.UserID, &e.TripID, &e.Status,
			&expiresAt, &e.NotifiedOK, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		if expiresAt.Valid {
			e.ExpiresAt = &expiresAt.Time
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}
