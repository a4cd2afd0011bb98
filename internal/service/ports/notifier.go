package ports

import (
	"context"

	"github.com/idanidan29/tripbooker/internal/domain"
)

// WaitlistNotifier dispatches the room-available event for a promoted user
// to the external mail collaborator. A returned error never rolls back the
// promoted hold; the caller records the failure for a later resend.
type WaitlistNotifier interface {
	NotifyRoomAvailable(ctx context.Context, user *domain.User, trip *domain.Trip) error
}

// OpsAlerter pushes operator alerts for conditions that indicate a bug
// rather than a user-facing failure.
type OpsAlerter interface {
	AlertInventoryClamp(ctx context.Context, pool domain.Pool, excess int)
}
