package ports

import (
	"context"
	"time"

	"github.com/idanidan29/tripbooker/internal/domain"
)

// WaitlistQueue is the per-trip FIFO of users waiting for a room. Ordering
// is by creation time, ties broken by insertion id.
type WaitlistQueue interface {
	// Enqueue adds the user in waiting status. Returns
	// domain.ErrAlreadyOnWaitlist when a waiting or notified entry exists.
	Enqueue(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, error)

	// DequeueNext moves the oldest waiting entry to notified with the given
	// promotion expiry and returns it, or (nil, nil) when the queue is
	// empty. This is the only waiting-to-notified mutator.
	DequeueNext(ctx context.Context, tripID string, expiresAt time.Time) (*domain.WaitlistEntry, error)

	// MarkExpired ages a notified entry out. No-op when the entry already
	// left notified status.
	MarkExpired(ctx context.Context, id string) error

	// MarkBooked closes the user's notified entry after purchase. No-op
	// when no such entry exists.
	MarkBooked(ctx context.Context, userID, tripID string) error

	// MarkDispatched records whether the room-available notification for a
	// promoted entry was delivered.
	MarkDispatched(ctx context.Context, id string, ok bool) error

	// FindActive returns the user's waiting or notified entry for the trip,
	// or (nil, nil).
	FindActive(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, error)

	CountWaiting(ctx context.Context, tripID string) (int, error)

	// ListLapsedNotified returns notified entries whose promotion window
	// closed at or before now.
	ListLapsedNotified(ctx context.Context, now time.Time, limit int) ([]*domain.WaitlistEntry, error)

	// ListUndelivered returns notified entries whose notification dispatch
	// failed and whose window is still open at now.
	ListUndelivered(ctx context.Context, now time.Time, limit int) ([]*domain.WaitlistEntry, error)
}
