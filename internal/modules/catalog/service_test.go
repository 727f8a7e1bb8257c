package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lakeview/internal/domain"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, onlyAvailable bool) ([]domain.Room, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *mockActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *mockActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockActivityRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookingCounter struct {
	mock.Mock
}

func (m *mockBookingCounter) CountActiveForRoom(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingCounter) CountActiveForActivity(ctx context.Context, activityID int64) (int64, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateRoom_DefaultsToAvailable(t *testing.T) {
	rooms := new(mockRoomRepo)
	svc := NewService(rooms, new(mockActivityRepo), new(mockBookingCounter))

	rooms.On("Create", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		Title: "Lakeside Deluxe",
		Price: 120,
	})

	assert.NoError(t, err)
	assert.True(t, room.Available)
}

func TestUpdateRoom_PartialFields(t *testing.T) {
	rooms := new(mockRoomRepo)
	svc := NewService(rooms, new(mockActivityRepo), new(mockBookingCounter))

	rooms.On("GetByID", mock.Anything, int64(4)).Return(&domain.Room{
		ID:        4,
		Title:     "Standard",
		Price:     80,
		Available: true,
	}, nil)
	rooms.On("Update", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	newPrice := 95.0
	room, err := svc.UpdateRoom(context.Background(), 4, UpdateRoomRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, 95.0, room.Price)
	assert.Equal(t, "Standard", room.Title)
	assert.True(t, room.Available)
}

func TestDeleteRoom_BlockedByActiveBookings(t *testing.T) {
	rooms := new(mockRoomRepo)
	counter := new(mockBookingCounter)
	svc := NewService(rooms, new(mockActivityRepo), counter)

	counter.On("CountActiveForRoom", mock.Anything, int64(4)).Return(int64(2), nil)

	err := svc.DeleteRoom(context.Background(), 4)

	assert.ErrorIs(t, err, ErrHasActiveBookings)
	rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteActivity_NotFound(t *testing.T) {
	activities := new(mockActivityRepo)
	counter := new(mockBookingCounter)
	svc := NewService(new(mockRoomRepo), activities, counter)

	counter.On("CountActiveForActivity", mock.Anything, int64(9)).Return(int64(0), nil)
	activities.On("Delete", mock.Anything, int64(9)).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteActivity(context.Background(), 9)

	assert.ErrorIs(t, err, ErrActivityNotFound)
}
