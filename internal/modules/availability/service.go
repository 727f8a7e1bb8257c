package availability

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service struct {
	rooms      RoomReader
	activities ActivityReader
	bookings   BookingReader
}

func NewService(rooms RoomReader, activities ActivityReader, bookings BookingReader) *Service {
	return &Service{
		rooms:      rooms,
		activities: activities,
		bookings:   bookings,
	}
}

// CheckRoom reports whether the room can take a new booking for
// [checkIn, checkOut). The check is advisory: nothing stops a concurrent
// booking between this read and a later insert, which is why the storage
// layer carries its own no-overlap constraint.
func (s *Service) CheckRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*RoomAvailability, error) {
	if roomID == 0 || checkIn.IsZero() || checkOut.IsZero() {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	conflicts, err := s.bookings.FindConflicts(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &RoomAvailability{
		IsAvailable:      len(conflicts) == 0,
		Room:             room,
		ConflictingDates: conflicts,
	}, nil
}

// CheckActivity reports remaining capacity for the activity on the exact
// date. Participants defaults to 1 when not supplied.
func (s *Service) CheckActivity(ctx context.Context, activityID int64, date time.Time, participants int) (*ActivityAvailability, error) {
	if activityID == 0 || date.IsZero() {
		return nil, ErrValidation
	}
	if date.Before(time.Now()) {
		return nil, ErrPastDate
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	taken, err := s.bookings.SumParticipants(ctx, activityID, date)
	if err != nil {
		return nil, err
	}

	if participants <= 0 {
		participants = 1
	}

	availableSpots := activity.Capacity() - taken

	return &ActivityAvailability{
		CanBook:        availableSpots >= participants,
		AvailableSpots: availableSpots,
		Activity:       activity,
	}, nil
}
