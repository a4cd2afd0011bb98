package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitlistStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    WaitlistStatus
		to      WaitlistStatus
		allowed bool
	}{
		{"waiting to notified", WaitlistStatusWaiting, WaitlistStatusNotified, true},
		{"waiting straight to booked", WaitlistStatusWaiting, WaitlistStatusBooked, false},
		{"waiting straight to expired", WaitlistStatusWaiting, WaitlistStatusExpired, false},
		{"notified to booked", WaitlistStatusNotified, WaitlistStatusBooked, true},
		{"notified to expired", WaitlistStatusNotified, WaitlistStatusExpired, true},
		{"notified back to waiting", WaitlistStatusNotified, WaitlistStatusWaiting, false},
		{"booked is terminal", WaitlistStatusBooked, WaitlistStatusExpired, false},
		{"expired is terminal", WaitlistStatusExpired, WaitlistStatusNotified, false},
		{"no self loops", WaitlistStatusWaiting, WaitlistStatusWaiting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransitionSourcesTo(t *testing.T) {
	assert.Equal(t, []WaitlistStatus{WaitlistStatusWaiting}, TransitionSourcesTo(WaitlistStatusNotified))
	assert.Equal(t, []WaitlistStatus{WaitlistStatusNotified}, TransitionSourcesTo(WaitlistStatusBooked))
	assert.Equal(t, []WaitlistStatus{WaitlistStatusNotified}, TransitionSourcesTo(WaitlistStatusExpired))

	// Nothing transitions into waiting; the lifecycle only moves forward.
	assert.Empty(t, TransitionSourcesTo(WaitlistStatusWaiting))
}
