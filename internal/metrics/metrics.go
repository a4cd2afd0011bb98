package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripbooker_reservations_total",
			Help: "Reservation requests by outcome",
		},
		[]string{"outcome"},
	)
	PromotionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripbooker_waitlist_promotions_total",
			Help: "Waitlist entries promoted to notified",
		},
	)
	SweepReclaimedRooms = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripbooker_sweep_reclaimed_rooms_total",
			Help: "Rooms returned to pools by the expiry sweeper",
		},
	)
	InventoryClampTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripbooker_inventory_clamp_total",
			Help: "Increments clamped at pool capacity (reconciliation bug signal)",
		},
	)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripbooker_notifications_total",
			Help: "Room-available notification dispatches by status",
		},
		[]string{"status"},
	)
)

// Reservation outcome label values.
const (
	OutcomeHeld              = "held"
	OutcomePromptWaitlist    = "prompt_waitlist"
	OutcomeAlreadyOnWaitlist = "already_on_waitlist"
	OutcomeInsufficient      = "insufficient_inventory"
)
