package domain

import "errors"

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrWaitlistNotFound     = errors.New("waitlist entry not found")
)

var (
	ErrReservationExists  = errors.New("reservation already exists")
	ErrAvailabilityExists = errors.New("availability already exists for this room type and date")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentRequired   = errors.New("payment must be confirmed")
	ErrCheckInTooEarly   = errors.New("cannot check in before check-in date")
	ErrNotModifiable     = errors.New("reservation cannot be modified in current state")
)

var (
	ErrCapacityExceeded = errors.New("insufficient availability")
	ErrInvalidRelease   = errors.New("cannot release more rooms than reserved")
	ErrInvalidUnblock   = errors.New("cannot unblock more rooms than blocked")
)

var (
	ErrWaitlistNotActive = errors.New("waitlist entry is not active")
)

var (
	ErrValidation = errors.New("validation error")
)
