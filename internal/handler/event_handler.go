package handler

import (
	"net/http"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/beaconhq/beacon-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles event management endpoints.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List godoc
// GET /api/v1/admin/events
func (h *EventHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)
	events, pagination, err := h.eventService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"events": events}, pagination)
}

// Get godoc
// GET /api/v1/admin/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// Create godoc
// POST /api/v1/admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

// Update godoc
// PUT /api/v1/admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// Delete godoc
// DELETE /api/v1/admin/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "event deleted"})
}
