package booking

import (
	"context"

	"lakeview/internal/domain"
	"lakeview/internal/modules/payment"
	"lakeview/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.BookingListItem, error)
	ListAll(ctx context.Context, f repository.BookingFilter) ([]repository.BookingListItem, error)
	Stats(ctx context.Context) (*repository.BookingStats, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	SetAvailable(ctx context.Context, id int64, available bool) error
}

type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// PaymentGateway is the processor surface the lifecycle needs: re-verify an
// intent at creation, refund it at cancellation.
type PaymentGateway interface {
	RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error)
	RefundIntent(ctx context.Context, paymentIntentID, reason string) (*payment.Refund, error)
}

// Notifier fans booking lifecycle events out to listeners (admin live feed).
// All calls are fire-and-forget; a nil Notifier disables them.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error
	NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking) error
}
