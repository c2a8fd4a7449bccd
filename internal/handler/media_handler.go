package handler

import (
	"errors"
	"net/http"

	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler handles media upload and URL endpoints.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload godoc
// POST /api/v1/admin/media/:kind/:owner_id
// Multipart upload; kind is thumbnails, videos, or audio.
func (h *MediaHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer file.Close()

	key, err := h.mediaService.Upload(
		c.Request.Context(),
		kind,
		ownerID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			response.Fail(c, http.StatusUnsupportedMediaType, response.ErrUnsupportedFile)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	url, err := h.mediaService.URL(c.Request.Context(), key)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"key": key, "url": url})
}

// URL godoc
// GET /api/v1/admin/media/url?key=...
// Returns a presigned GET URL for a stored object.
func (h *MediaHandler) URL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	url, err := h.mediaService.URL(c.Request.Context(), key)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url})
}
