package booking

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room not available")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
	ErrRoomConflict        = errors.New("room already booked for overlapping dates")
	ErrInvalidStatus       = errors.New("invalid booking status")
)
