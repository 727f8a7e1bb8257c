package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"lakeview/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
	}
	activities := r.Group("/activities")
	{
		activities.GET("", h.ListActivities)
		activities.GET("/:id", h.GetActivity)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
	activities := r.Group("/activities")
	{
		activities.POST("", h.CreateActivity)
		activities.PUT("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)
	}
}

func (h *Handler) ListRooms(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	rooms, err := h.service.ListRooms(c.Request.Context(), onlyAvailable)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Room created successfully", room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Room updated successfully", room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Room deleted successfully", nil)
}

func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.service.ListActivities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Failed to list activities")
		return
	}
	response.Success(c, http.StatusOK, activities)
}

func (h *Handler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := h.service.GetActivity(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, activity)
}

func (h *Handler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	activity, err := h.service.CreateActivity(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Activity created successfully", activity)
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	activity, err := h.service.UpdateActivity(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Activity updated successfully", activity)
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteActivity(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Activity deleted successfully", nil)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", ve.Fields)
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrActivityNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrHasActiveBookings):
		response.Error(c, http.StatusConflict, "HAS_ACTIVE_BOOKINGS", "Cannot delete an item with active bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
