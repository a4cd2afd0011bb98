package domain

// ReservationOutcome tags the result of a reservation request. A sold-out
// pool never creates a hold silently: the caller is prompted to join the
// waitlist instead.
type ReservationOutcome string

const (
	OutcomeHeld              ReservationOutcome = "held"
	OutcomePromptWaitlist    ReservationOutcome = "prompt_waitlist"
	OutcomeAlreadyOnWaitlist ReservationOutcome = "already_on_waitlist"
)

type ReservationResult struct {
	Outcome     ReservationOutcome `json:"outcome"`
	Entry       *CartEntry         `json:"entry,omitempty"`
	QueueLength int                `json:"queue_length,omitempty"`
}

// RoomAvailableEvent is handed to the notification collaborator when a
// waitlisted user is promoted. Fire-and-forget: delivery failures never roll
// back the promoted hold.
type RoomAvailableEvent struct {
	UserID      string `json:"user_id"`
	TripID      string `json:"trip_id"`
	Destination string `json:"destination"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
}
