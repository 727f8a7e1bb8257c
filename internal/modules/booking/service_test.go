package booking

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lakeview/internal/domain"
	"lakeview/internal/modules/payment"
	"lakeview/internal/repository"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]repository.BookingListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListItem), args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context, f repository.BookingFilter) ([]repository.BookingListItem, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListItem), args.Error(1)
}

func (m *mockBookingRepo) Stats(ctx context.Context) (*repository.BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingStats), args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) SetAvailable(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func (m *mockGateway) RefundIntent(ctx context.Context, paymentIntentID, reason string) (*payment.Refund, error) {
	args := m.Called(ctx, paymentIntentID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Refund), args.Error(1)
}

func newTestService(bookings *mockBookingRepo, rooms *mockRoomRepo, activities *mockActivityRepo, gateway *mockGateway) *Service {
	return NewService(bookings, rooms, activities, gateway, nil, "NPR", nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateRoomBooking_Success(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: true}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_123").Return(&payment.Intent{ID: "pi_123", Status: payment.IntentStatusSucceeded}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Booking).ID = 10
	}).Return(nil)
	rooms.On("SetAvailable", mock.Anything, int64(1), false).Return(nil)

	b, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 10),
		CheckOutDate:    date(2026, 9, 12),
		PaymentIntentID: "pi_123",
	})

	require.NoError(t, err)
	assert.Equal(t, 200.0, b.Amount)
	assert.Equal(t, "NPR", b.Currency)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.BookingTypeRoom, b.BookingType)
	require.NotNil(t, b.RoomID)
	assert.Nil(t, b.ActivityID)
	rooms.AssertCalled(t, "SetAvailable", mock.Anything, int64(1), false)
}

func TestCreateRoomBooking_PartialNightRoundsUp(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: true}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_123").Return(&payment.Intent{Status: payment.IntentStatusSucceeded}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	rooms.On("SetAvailable", mock.Anything, int64(1), false).Return(nil)

	// 15:00 check-in to next-day 11:00 check-out is under 24h but one night.
	b, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		CheckOutDate:    time.Date(2026, 9, 11, 11, 0, 0, 0, time.UTC),
		PaymentIntentID: "pi_123",
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, b.Amount)
}

func TestCreateRoomBooking_CheckOutBeforeCheckIn(t *testing.T) {
	svc := newTestService(new(mockBookingRepo), new(mockRoomRepo), new(mockActivityRepo), new(mockGateway))

	_, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 12),
		CheckOutDate:    date(2026, 9, 10),
		PaymentIntentID: "pi_123",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRoomBooking_RoomUnavailable(t *testing.T) {
	rooms := new(mockRoomRepo)
	svc := newTestService(new(mockBookingRepo), rooms, new(mockActivityRepo), new(mockGateway))

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: false}, nil)

	_, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 10),
		CheckOutDate:    date(2026, 9, 12),
		PaymentIntentID: "pi_123",
	})

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestCreateRoomBooking_PaymentNotSucceeded(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: true}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_123").Return(&payment.Intent{Status: "requires_payment_method"}, nil)

	_, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 10),
		CheckOutDate:    date(2026, 9, 12),
		PaymentIntentID: "pi_123",
	})

	assert.ErrorIs(t, err, ErrPaymentNotCompleted)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRoomBooking_OverlapConflict(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: true}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_123").Return(&payment.Intent{Status: payment.IntentStatusSucceeded}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23P01"})

	_, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 10),
		CheckOutDate:    date(2026, 9, 12),
		PaymentIntentID: "pi_123",
	})

	assert.ErrorIs(t, err, ErrRoomConflict)
	rooms.AssertNotCalled(t, "SetAvailable", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRoomBooking_FlagFlipFailureDoesNotFail(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 100, Available: true}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_123").Return(&payment.Intent{Status: payment.IntentStatusSucceeded}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	rooms.On("SetAvailable", mock.Anything, int64(1), false).Return(gorm.ErrInvalidDB)

	b, err := svc.CreateRoomBooking(context.Background(), 5, CreateRoomBookingRequest{
		RoomID:          1,
		CheckInDate:     date(2026, 9, 10),
		CheckOutDate:    date(2026, 9, 12),
		PaymentIntentID: "pi_123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestCreateActivityBooking_Success(t *testing.T) {
	bookings := new(mockBookingRepo)
	activities := new(mockActivityRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, new(mockRoomRepo), activities, gateway)

	activities.On("GetByID", mock.Anything, int64(2)).Return(&domain.Activity{ID: 2, Price: 50}, nil)
	gateway.On("RetrieveIntent", mock.Anything, "pi_act").Return(&payment.Intent{Status: payment.IntentStatusSucceeded}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.CreateActivityBooking(context.Background(), 5, CreateActivityBookingRequest{
		ActivityID:      2,
		BookingDate:     date(2026, 9, 15),
		Participants:    3,
		PaymentIntentID: "pi_act",
	})

	require.NoError(t, err)
	assert.Equal(t, 150.0, b.Amount)
	assert.Equal(t, domain.BookingTypeActivity, b.BookingType)
	require.NotNil(t, b.ActivityID)
	assert.Nil(t, b.RoomID)
	assert.Equal(t, 3, b.Participants)
}

func TestCreateActivityBooking_ActivityMissing(t *testing.T) {
	activities := new(mockActivityRepo)
	svc := newTestService(new(mockBookingRepo), new(mockRoomRepo), activities, new(mockGateway))

	activities.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateActivityBooking(context.Background(), 5, CreateActivityBookingRequest{
		ActivityID:      99,
		BookingDate:     date(2026, 9, 15),
		Participants:    1,
		PaymentIntentID: "pi_act",
	})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func paidRoomBooking(id, userID int64) *domain.Booking {
	roomID := int64(1)
	checkIn := date(2026, 9, 10)
	checkOut := date(2026, 9, 12)
	return &domain.Booking{
		ID:              id,
		UserID:          userID,
		RoomID:          &roomID,
		BookingType:     domain.BookingTypeRoom,
		CheckInDate:     &checkIn,
		CheckOutDate:    &checkOut,
		Status:          domain.BookingConfirmed,
		PaymentStatus:   domain.PaymentPaid,
		Amount:          200,
		Currency:        "NPR",
		PaymentIntentID: "pi_123",
	}
}

func TestCancelBooking_RefundsAndReleasesRoom(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	bookings.On("GetByIDForUser", mock.Anything, int64(10), int64(5)).Return(paidRoomBooking(10, 5), nil)
	bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	gateway.On("RefundIntent", mock.Anything, "pi_123", "requested_by_customer").
		Return(&payment.Refund{ID: "re_1", Status: "succeeded"}, nil)
	rooms.On("SetAvailable", mock.Anything, int64(1), true).Return(nil)

	b, err := svc.CancelBooking(context.Background(), 5, 10, "change of plans")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, domain.PaymentRefunded, b.PaymentStatus)
	assert.Equal(t, "change of plans", b.CancellationReason)
	require.NotNil(t, b.CancelledAt)
	rooms.AssertCalled(t, "SetAvailable", mock.Anything, int64(1), true)
	bookings.AssertNumberOfCalls(t, "Update", 2)
}

func TestCancelBooking_RefundFailureDegrades(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomRepo)
	gateway := new(mockGateway)
	svc := newTestService(bookings, rooms, new(mockActivityRepo), gateway)

	bookings.On("GetByIDForUser", mock.Anything, int64(10), int64(5)).Return(paidRoomBooking(10, 5), nil)
	bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	gateway.On("RefundIntent", mock.Anything, "pi_123", "requested_by_customer").
		Return(nil, &payment.APIError{StatusCode: 402, Message: "charge already refunded"})
	rooms.On("SetAvailable", mock.Anything, int64(1), true).Return(nil)

	b, err := svc.CancelBooking(context.Background(), 5, 10, "")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, domain.PaymentPartiallyRefunded, b.PaymentStatus)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	bookings := new(mockBookingRepo)
	svc := newTestService(bookings, new(mockRoomRepo), new(mockActivityRepo), new(mockGateway))

	cancelled := paidRoomBooking(10, 5)
	cancelled.Status = domain.BookingCancelled
	bookings.On("GetByIDForUser", mock.Anything, int64(10), int64(5)).Return(cancelled, nil)

	_, err := svc.CancelBooking(context.Background(), 5, 10, "")

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelBooking_NotOwnedByUser(t *testing.T) {
	bookings := new(mockBookingRepo)
	svc := newTestService(bookings, new(mockRoomRepo), new(mockActivityRepo), new(mockGateway))

	bookings.On("GetByIDForUser", mock.Anything, int64(10), int64(6)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CancelBooking(context.Background(), 6, 10, "")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	bookings := new(mockBookingRepo)
	svc := newTestService(bookings, new(mockRoomRepo), new(mockActivityRepo), new(mockGateway))

	_, err := svc.UpdateStatus(context.Background(), 10, "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_Valid(t *testing.T) {
	bookings := new(mockBookingRepo)
	svc := newTestService(bookings, new(mockRoomRepo), new(mockActivityRepo), new(mockGateway))

	updated := paidRoomBooking(10, 5)
	updated.Status = domain.BookingCompleted
	bookings.On("UpdateStatus", mock.Anything, int64(10), "completed").Return(updated, nil)

	b, err := svc.UpdateStatus(context.Background(), 10, "completed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
}
