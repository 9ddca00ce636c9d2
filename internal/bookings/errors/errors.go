package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrSlotTaken = errors.New("time slot is already held or confirmed")

	ErrNotHeld = errors.New("booking is no longer held")
)
