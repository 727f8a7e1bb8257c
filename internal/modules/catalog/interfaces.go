package catalog

import (
	"context"

	"lakeview/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, onlyAvailable bool) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id int64) error
}

// BookingCounter guards deletes: items with live bookings stay.
type BookingCounter interface {
	CountActiveForRoom(ctx context.Context, roomID int64) (int64, error)
	CountActiveForActivity(ctx context.Context, activityID int64) (int64, error)
}
