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

// SermonHandler handles sermon management endpoints.
type SermonHandler struct {
	sermonService *service.SermonService
}

// NewSermonHandler creates a new SermonHandler.
func NewSermonHandler(sermonService *service.SermonService) *SermonHandler {
	return &SermonHandler{sermonService: sermonService}
}

// List godoc
// GET /api/v1/admin/sermons
func (h *SermonHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)
	sermons, pagination, err := h.sermonService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"sermons": sermons}, pagination)
}

// Get godoc
// GET /api/v1/admin/sermons/:id
func (h *SermonHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sermon, err := h.sermonService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sermon": sermon})
}

// Create godoc
// POST /api/v1/admin/sermons
func (h *SermonHandler) Create(c *gin.Context) {
	var req model.CreateSermonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sermon, err := h.sermonService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sermon": sermon})
}

// Update godoc
// PUT /api/v1/admin/sermons/:id
func (h *SermonHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSermonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sermon, err := h.sermonService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sermon": sermon})
}

// Delete godoc
// DELETE /api/v1/admin/sermons/:id
func (h *SermonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.sermonService.Delete(c.Request.Context(), id); err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "sermon deleted"})
}
