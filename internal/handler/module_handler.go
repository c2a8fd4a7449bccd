package handler

import (
	"errors"
	"net/http"

	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/beaconhq/beacon-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ModuleHandler handles module management endpoints.
type ModuleHandler struct {
	moduleService *service.ModuleService
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// List godoc
// GET /api/v1/admin/courses/:id/modules
func (h *ModuleHandler) List(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	modules, err := h.moduleService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modules": modules})
}

// Create godoc
// POST /api/v1/admin/courses/:id/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	module, collision, err := h.moduleService.Create(c.Request.Context(), courseID, &req)
	if err != nil {
		failLookup(c, err)
		return
	}

	if collision {
		response.SuccessWithWarnings(c, http.StatusCreated, gin.H{"module": module}, orderWarning())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"module": module})
}

// Update godoc
// PUT /api/v1/admin/modules/:id
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	module, err := h.moduleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"module": module})
}

// Reorder godoc
// POST /api/v1/admin/courses/:id/modules/reorder
func (h *ModuleHandler) Reorder(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	modules, err := h.moduleService.Reorder(c.Request.Context(), courseID, &req)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSibling) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modules": modules})
}

// Delete godoc
// DELETE /api/v1/admin/modules/:id
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.moduleService.Delete(c.Request.Context(), id); err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "module deleted"})
}
