package booking

import (
	"net/http"
	"time"

	"lakeview/internal/pkg/response"
	"lakeview/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookingGroup := rg.Group("/bookings")
	{
		bookingGroup.POST("/room", h.CreateRoomBooking)
		bookingGroup.POST("/activity", h.CreateActivityBooking)
		bookingGroup.GET("/user", h.GetUserBookings)
		bookingGroup.POST("/cancel", h.CancelBooking)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	bookingGroup := rg.Group("/bookings")
	{
		bookingGroup.GET("/all", h.GetAllBookings)
		bookingGroup.PATCH("/status", h.UpdateStatus)
		bookingGroup.GET("/stats", h.Stats)
	}
}

func (h *Handler) CreateRoomBooking(c *gin.Context) {
	var req CreateRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateRoomBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrRoomNotAvailable:
			response.Error(c, http.StatusBadRequest, "ROOM_NOT_AVAILABLE", "Room not available")
		case ErrPaymentNotCompleted:
			response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_COMPLETED", "Payment not completed")
		case ErrRoomConflict:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is already booked for the selected dates")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room booking")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Room booking created successfully", gin.H{"booking": b})
}

func (h *Handler) CreateActivityBooking(c *gin.Context) {
	var req CreateActivityBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateActivityBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking payload")
		case ErrActivityNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Activity not found")
		case ErrPaymentNotCompleted:
			response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_COMPLETED", "Payment not completed")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create activity booking")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Activity booking created successfully", gin.H{"booking": b})
}

func (h *Handler) GetUserBookings(c *gin.Context) {
	bookings, err := h.service.GetUserBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("user_id"), req.BookingID, req.Reason)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrAlreadyCancelled:
			response.Error(c, http.StatusBadRequest, "ALREADY_CANCELLED", "Booking already cancelled")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Booking cancelled successfully", gin.H{"booking": b})
}

func (h *Handler) GetAllBookings(c *gin.Context) {
	f := repository.BookingFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if from, ok := parseDate(c.Query("from")); ok {
		f.From = &from
	}
	if to, ok := parseDate(c.Query("to")); ok {
		f.To = &to
	}

	bookings, err := h.service.GetAllBookings(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), req.BookingID, req.Status)
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking status")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Booking status updated", gin.H{"booking": b})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch booking stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
