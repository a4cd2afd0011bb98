package domain

import "time"

type WaitlistStatus string

const (
	WaitlistStatusWaiting  WaitlistStatus = "waiting"
	WaitlistStatusNotified WaitlistStatus = "notified"
	WaitlistStatusBooked   WaitlistStatus = "booked"
	WaitlistStatusExpired  WaitlistStatus = "expired"
)

// waitlistTransitions is the closed set of allowed status moves. The
// lifecycle is strictly forward: an entry never returns to waiting.
var waitlistTransitions = map[WaitlistStatus][]WaitlistStatus{
	WaitlistStatusWaiting:  {WaitlistStatusNotified},
	WaitlistStatusNotified: {WaitlistStatusBooked, WaitlistStatusExpired},
	WaitlistStatusBooked:   {},
	WaitlistStatusExpired:  {},
}

func (s WaitlistStatus) CanTransitionTo(next WaitlistStatus) bool {
	for _, allowed := range waitlistTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionSourcesTo returns every status allowed to move to next, in
// lifecycle order. The repository feeds these into its SQL status guards
// so the table above stays the single source of truth.
func TransitionSourcesTo(next WaitlistStatus) []WaitlistStatus {
	all := []WaitlistStatus{WaitlistStatusWaiting, WaitlistStatusNotified, WaitlistStatusBooked, WaitlistStatusExpired}
	var sources []WaitlistStatus
	for _, s := range all {
		if s.CanTransitionTo(next) {
			sources = append(sources, s)
		}
	}
	return sources
}

// ActiveWaitlistStatuses are the statuses under which (user, trip) is unique.
var ActiveWaitlistStatuses = []WaitlistStatus{WaitlistStatusWaiting, WaitlistStatusNotified}

// WaitlistEntry tracks a user waiting for a room on a sold-out trip. Seq is a
// monotonic insertion id used to break CreatedAt ties for FIFO ordering.
type WaitlistEntry struct {
	ID         string         `json:"id"`
	Seq        int64          `json:"-"`
	UserID     string         `json:"user_id"`
	TripID     string         `json:"trip_id"`
	Status     WaitlistStatus `json:"status"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	NotifiedOK bool           `json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
