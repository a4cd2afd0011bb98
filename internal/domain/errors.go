package domain

import "errors"

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrVariantNotFound   = errors.New("date variant not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrCartEntryNotFound = errors.New("cart entry not found")
	ErrBookingNotFound   = errors.New("booking not found")
)

var (
	ErrInsufficientInventory = errors.New("not enough rooms available")
	ErrAlreadyOnWaitlist     = errors.New("user is already on the waitlist for this trip")
	ErrConflict              = errors.New("concurrent modification, retry the operation")
	ErrDeadlinePassed        = errors.New("cancellation deadline has passed")
	ErrBookingNotActive      = errors.New("booking is not in confirmed status")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
