package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lakeview/internal/domain"
	"lakeview/internal/repository"
)

type mockRoomReader struct {
	mock.Mock
}

func (m *mockRoomReader) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type mockActivityReader struct {
	mock.Mock
}

func (m *mockActivityReader) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

type mockBookingReader struct {
	mock.Mock
}

func (m *mockBookingReader) FindConflicts(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]repository.ConflictRange, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ConflictRange), args.Error(1)
}

func (m *mockBookingReader) SumParticipants(ctx context.Context, activityID int64, date time.Time) (int, error) {
	args := m.Called(ctx, activityID, date)
	return args.Int(0), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckRoom_NoConflicts(t *testing.T) {
	rooms := new(mockRoomReader)
	bookings := new(mockBookingReader)
	svc := NewService(rooms, new(mockActivityReader), bookings)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Available: true}, nil)
	bookings.On("FindConflicts", mock.Anything, int64(1), day(10), day(12)).
		Return([]repository.ConflictRange{}, nil)

	res, err := svc.CheckRoom(context.Background(), 1, day(10), day(12))

	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
	assert.Empty(t, res.ConflictingDates)
	assert.Equal(t, int64(1), res.Room.ID)
}

func TestCheckRoom_OverlapReported(t *testing.T) {
	rooms := new(mockRoomReader)
	bookings := new(mockBookingReader)
	svc := NewService(rooms, new(mockActivityReader), bookings)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	bookings.On("FindConflicts", mock.Anything, int64(1), day(10), day(12)).
		Return([]repository.ConflictRange{{CheckIn: day(11), CheckOut: day(14)}}, nil)

	res, err := svc.CheckRoom(context.Background(), 1, day(10), day(12))

	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	require.Len(t, res.ConflictingDates, 1)
	assert.Equal(t, day(11), res.ConflictingDates[0].CheckIn)
}

func TestCheckRoom_RoomMissing(t *testing.T) {
	rooms := new(mockRoomReader)
	svc := NewService(rooms, new(mockActivityReader), new(mockBookingReader))

	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CheckRoom(context.Background(), 99, day(10), day(12))

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCheckRoom_MissingDates(t *testing.T) {
	svc := NewService(new(mockRoomReader), new(mockActivityReader), new(mockBookingReader))

	_, err := svc.CheckRoom(context.Background(), 1, time.Time{}, day(12))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckActivity_CapacityAtLimit(t *testing.T) {
	activities := new(mockActivityReader)
	bookings := new(mockBookingReader)
	svc := NewService(new(mockRoomReader), activities, bookings)

	future := time.Now().Add(72 * time.Hour)
	activities.On("GetByID", mock.Anything, int64(2)).Return(&domain.Activity{ID: 2, MaxParticipants: 8}, nil)
	bookings.On("SumParticipants", mock.Anything, int64(2), future).Return(6, nil)

	res, err := svc.CheckActivity(context.Background(), 2, future, 2)

	require.NoError(t, err)
	assert.True(t, res.CanBook)
	assert.Equal(t, 2, res.AvailableSpots)
}

func TestCheckActivity_OverCapacity(t *testing.T) {
	activities := new(mockActivityReader)
	bookings := new(mockBookingReader)
	svc := NewService(new(mockRoomReader), activities, bookings)

	future := time.Now().Add(72 * time.Hour)
	activities.On("GetByID", mock.Anything, int64(2)).Return(&domain.Activity{ID: 2, MaxParticipants: 8}, nil)
	bookings.On("SumParticipants", mock.Anything, int64(2), future).Return(7, nil)

	res, err := svc.CheckActivity(context.Background(), 2, future, 2)

	require.NoError(t, err)
	assert.False(t, res.CanBook)
	assert.Equal(t, 1, res.AvailableSpots)
}

func TestCheckActivity_DefaultCapacityAndParticipants(t *testing.T) {
	activities := new(mockActivityReader)
	bookings := new(mockBookingReader)
	svc := NewService(new(mockRoomReader), activities, bookings)

	future := time.Now().Add(72 * time.Hour)
	activities.On("GetByID", mock.Anything, int64(3)).Return(&domain.Activity{ID: 3}, nil)
	bookings.On("SumParticipants", mock.Anything, int64(3), future).Return(0, nil)

	// participants omitted, capacity unset
	res, err := svc.CheckActivity(context.Background(), 3, future, 0)

	require.NoError(t, err)
	assert.True(t, res.CanBook)
	assert.Equal(t, domain.DefaultMaxParticipants, res.AvailableSpots)
}

func TestCheckActivity_PastDate(t *testing.T) {
	svc := NewService(new(mockRoomReader), new(mockActivityReader), new(mockBookingReader))

	_, err := svc.CheckActivity(context.Background(), 2, time.Now().Add(-24*time.Hour), 1)

	assert.ErrorIs(t, err, ErrPastDate)
}
