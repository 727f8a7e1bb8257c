package availability

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrRoomNotFound     = errors.New("room not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrPastDate         = errors.New("booking date must be in the future")
)
