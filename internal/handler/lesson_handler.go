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

// LessonHandler handles lesson management endpoints, including the
// legacy flat lessons attached directly to a course.
type LessonHandler struct {
	lessonService *service.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// List godoc
// GET /api/v1/admin/modules/:id/lessons
func (h *LessonHandler) List(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	lessons, err := h.lessonService.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

// Get godoc
// GET /api/v1/admin/lessons/:id
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	lesson, err := h.lessonService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lesson": lesson})
}

// CreateUnderModule godoc
// POST /api/v1/admin/modules/:id/lessons
func (h *LessonHandler) CreateUnderModule(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, collision, err := h.lessonService.CreateUnderModule(c.Request.Context(), moduleID, &req)
	if err != nil {
		failLookup(c, err)
		return
	}

	if collision {
		response.SuccessWithWarnings(c, http.StatusCreated, gin.H{"lesson": lesson}, orderWarning())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lesson": lesson})
}

// CreateFlat godoc
// POST /api/v1/admin/courses/:id/lessons
// Creates a module-less lesson directly under a course (legacy shape).
func (h *LessonHandler) CreateFlat(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, collision, err := h.lessonService.CreateFlat(c.Request.Context(), courseID, &req)
	if err != nil {
		failLookup(c, err)
		return
	}

	if collision {
		response.SuccessWithWarnings(c, http.StatusCreated, gin.H{"lesson": lesson}, orderWarning())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lesson": lesson})
}

// Update godoc
// PUT /api/v1/admin/lessons/:id
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, collision, err := h.lessonService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failLookup(c, err)
		return
	}

	if collision {
		response.SuccessWithWarnings(c, http.StatusOK, gin.H{"lesson": lesson}, orderWarning())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lesson": lesson})
}

// Reorder godoc
// POST /api/v1/admin/modules/:id/lessons/reorder
func (h *LessonHandler) Reorder(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lessons, err := h.lessonService.Reorder(c.Request.Context(), moduleID, &req)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSibling) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

// Delete godoc
// DELETE /api/v1/admin/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.lessonService.Delete(c.Request.Context(), id); err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "lesson deleted"})
}
