package domain

import (
	"errors"
	"time"
)

type BookingType string

const (
	BookingTypeRoom     BookingType = "room"
	BookingTypeActivity BookingType = "activity"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid            PaymentStatus = "unpaid"
	PaymentPaid              PaymentStatus = "paid"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

var ErrInvalidBookingShape = errors.New("booking must reference exactly one of room or activity, matching its type")

type Booking struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	UserID      int64       `json:"user_id" validate:"required"`
	RoomID      *int64      `json:"room_id,omitempty"`
	ActivityID  *int64      `json:"activity_id,omitempty"`
	BookingType BookingType `json:"booking_type" validate:"required"`

	// BookingDate is the creation date for room bookings and the event
	// date for activity bookings.
	BookingDate  time.Time  `json:"booking_date" validate:"required"`
	CheckInDate  *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	Participants int        `json:"participants,omitempty"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	// Amount is fixed at creation time and never recomputed.
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`

	SpecialRequests    string `json:"special_requests,omitempty" gorm:"type:text" validate:"max=500"`
	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room     *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Activity *Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
}

// Validate enforces the room/activity tagged-union shape.
func (b *Booking) Validate() error {
	switch b.BookingType {
	case BookingTypeRoom:
		if b.RoomID == nil || b.ActivityID != nil {
			return ErrInvalidBookingShape
		}
		if b.CheckInDate == nil || b.CheckOutDate == nil {
			return ErrInvalidBookingShape
		}
	case BookingTypeActivity:
		if b.ActivityID == nil || b.RoomID != nil {
			return ErrInvalidBookingShape
		}
		if b.Participants <= 0 {
			return ErrInvalidBookingShape
		}
	default:
		return ErrInvalidBookingShape
	}
	return nil
}
