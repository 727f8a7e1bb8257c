package availability

import (
	"context"
	"time"

	"lakeview/internal/domain"
	"lakeview/internal/repository"
)

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ActivityReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

type BookingReader interface {
	FindConflicts(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]repository.ConflictRange, error)
	SumParticipants(ctx context.Context, activityID int64, date time.Time) (int, error)
}
