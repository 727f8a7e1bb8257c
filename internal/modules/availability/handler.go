package availability

import (
	"net/http"
	"strconv"
	"time"

	"lakeview/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	availabilityGroup := rg.Group("/availability")
	{
		availabilityGroup.GET("/room", h.CheckRoom)
		availabilityGroup.GET("/activity", h.CheckActivity)
	}
}

func (h *Handler) CheckRoom(c *gin.Context) {
	roomID, _ := strconv.ParseInt(c.Query("roomId"), 10, 64)
	checkIn, okIn := parseDate(c.Query("checkInDate"))
	checkOut, okOut := parseDate(c.Query("checkOutDate"))

	if roomID == 0 || !okIn || !okOut {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Room ID, check-in and check-out dates are required")
		return
	}

	result, err := h.service.CheckRoom(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Room ID, check-in and check-out dates are required")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) CheckActivity(c *gin.Context) {
	activityID, _ := strconv.ParseInt(c.Query("activityId"), 10, 64)
	date, okDate := parseDate(c.Query("bookingDate"))
	participants, _ := strconv.Atoi(c.Query("participants"))

	if activityID == 0 || !okDate {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Activity ID and booking date are required")
		return
	}

	result, err := h.service.CheckActivity(c.Request.Context(), activityID, date, participants)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Activity ID and booking date are required")
		case ErrPastDate:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Booking date must be in the future")
		case ErrActivityNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Activity not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// parseDate accepts both RFC3339 timestamps and bare dates.
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
