package domain

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrDuplicateReservation = errors.New("actor already has an active reservation for this listing")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNoAvailableSlots     = errors.New("no available slots")
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("caller is not allowed to perform this action")
)
