package catalog

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrHasActiveBookings = errors.New("item has active bookings")
)

// ValidationError carries per-field violations for the admin forms.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
