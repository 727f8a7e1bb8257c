package booking

import "time"

type CreateRoomBookingRequest struct {
	RoomID          int64     `json:"roomId" binding:"required"`
	CheckInDate     time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate    time.Time `json:"checkOutDate" binding:"required"`
	PaymentIntentID string    `json:"paymentIntentId" binding:"required"`
	SpecialRequests string    `json:"specialRequests" binding:"max=500"`
}

type CreateActivityBookingRequest struct {
	ActivityID      int64     `json:"activityId" binding:"required"`
	BookingDate     time.Time `json:"bookingDate" binding:"required"`
	Participants    int       `json:"participants" binding:"required,gt=0"`
	PaymentIntentID string    `json:"paymentIntentId" binding:"required"`
	SpecialRequests string    `json:"specialRequests" binding:"max=500"`
}

type CancelBookingRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	Reason    string `json:"reason"`
}

type UpdateStatusRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
