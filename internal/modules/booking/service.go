package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"lakeview/internal/domain"
	"lakeview/internal/modules/payment"
	"lakeview/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings   BookingRepository
	rooms      RoomRepository
	activities ActivityRepository
	gateway    PaymentGateway
	notifs     Notifier
	currency   string
	loggerf    func(format string, args ...interface{})
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	activities ActivityRepository,
	gateway PaymentGateway,
	notifs Notifier,
	currency string,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		activities: activities,
		gateway:    gateway,
		notifs:     notifs,
		currency:   currency,
		loggerf:    loggerf,
	}
}

// Nights is the ceiling of the day difference, so a late check-in still
// counts the partial night.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func (s *Service) CreateRoomBooking(ctx context.Context, userID int64, req CreateRoomBookingRequest) (*domain.Booking, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.Available {
		return nil, ErrRoomNotAvailable
	}

	// Never trust the client's word on payment state.
	intent, err := s.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != payment.IntentStatusSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	nights := nightsBetween(req.CheckInDate, req.CheckOutDate)
	amount := room.Price * float64(nights)

	checkIn := req.CheckInDate
	checkOut := req.CheckOutDate
	b := &domain.Booking{
		UserID:          userID,
		RoomID:          &room.ID,
		BookingType:     domain.BookingTypeRoom,
		BookingDate:     time.Now(),
		CheckInDate:     &checkIn,
		CheckOutDate:    &checkOut,
		Status:          domain.BookingConfirmed,
		PaymentStatus:   domain.PaymentPaid,
		Amount:          amount,
		Currency:        s.currency,
		PaymentIntentID: req.PaymentIntentID,
		SpecialRequests: req.SpecialRequests,
	}
	if err := b.Validate(); err != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrRoomConflict
		}
		return nil, err
	}

	// Not transactional with the insert; a failure here leaves the room
	// flagged available while booked.
	if err := s.rooms.SetAvailable(ctx, room.ID, false); err != nil {
		s.loggerf("level=error msg=failed to flag room unavailable room_id=%d booking_id=%d err=%v", room.ID, b.ID, err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) CreateActivityBooking(ctx context.Context, userID int64, req CreateActivityBookingRequest) (*domain.Booking, error) {
	activity, err := s.activities.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	intent, err := s.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != payment.IntentStatusSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	amount := activity.Price * float64(req.Participants)

	b := &domain.Booking{
		UserID:          userID,
		ActivityID:      &activity.ID,
		BookingType:     domain.BookingTypeActivity,
		BookingDate:     req.BookingDate,
		Participants:    req.Participants,
		Status:          domain.BookingConfirmed,
		PaymentStatus:   domain.PaymentPaid,
		Amount:          amount,
		Currency:        s.currency,
		PaymentIntentID: req.PaymentIntentID,
		SpecialRequests: req.SpecialRequests,
	}
	if err := b.Validate(); err != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

// CancelBooking flips the booking to cancelled and, when it was paid, tries
// to refund. A failed refund degrades paymentStatus to partially_refunded
// instead of failing the cancellation.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := time.Now()
	b.Status = domain.BookingCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if b.PaymentStatus == domain.PaymentPaid {
		if _, err := s.gateway.RefundIntent(ctx, b.PaymentIntentID, "requested_by_customer"); err != nil {
			s.loggerf("level=error msg=refund failed booking_id=%d intent_id=%s err=%v", b.ID, b.PaymentIntentID, err)
			b.PaymentStatus = domain.PaymentPartiallyRefunded
		} else {
			b.PaymentStatus = domain.PaymentRefunded
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	// Unconditional: another overlapping booking may still hold the room.
	if b.RoomID != nil {
		if err := s.rooms.SetAvailable(ctx, *b.RoomID, true); err != nil {
			s.loggerf("level=error msg=failed to release room room_id=%d booking_id=%d err=%v", *b.RoomID, b.ID, err)
		}
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b)
	}

	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]repository.BookingListItem, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) GetAllBookings(ctx context.Context, f repository.BookingFilter) ([]repository.BookingListItem, error) {
	return s.bookings.ListAll(ctx, f)
}

// UpdateStatus overwrites the status directly; there is no transition graph.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingStatusChanged(ctx, b)
	}

	return b, nil
}

func (s *Service) Stats(ctx context.Context) (*repository.BookingStats, error) {
	return s.bookings.Stats(ctx)
}
