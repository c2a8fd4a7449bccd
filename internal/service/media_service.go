package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/beaconhq/beacon-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Media errors.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
)

// Upload namespaces.
const (
	MediaKindThumbnail = "thumbnails"
	MediaKindVideo     = "videos"
	MediaKindAudio     = "audio"
)

var allowedContentTypes = map[string][]string{
	MediaKindThumbnail: {"image/jpeg", "image/png", "image/webp"},
	MediaKindVideo:     {"video/mp4", "video/webm"},
	MediaKindAudio:     {"audio/mpeg", "audio/mp4", "audio/ogg"},
}

// MediaService validates uploads and delegates to the object store.
type MediaService struct {
	store *storage.MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(store *storage.MediaStore, cfg *config.Config, log zerolog.Logger) *MediaService {
	return &MediaService{
		store: store,
		cfg:   cfg,
		log:   log.With().Str("component", "media_service").Logger(),
	}
}

// Upload checks size and content type for the given kind, then stores
// the object and returns its key.
func (s *MediaService) Upload(ctx context.Context, kind string, ownerID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if size > s.cfg.MaxUploadBytes {
		return "", ErrFileTooLarge
	}

	allowed, ok := allowedContentTypes[kind]
	if !ok {
		return "", ErrUnsupportedMediaType
	}
	base := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	match := false
	for _, a := range allowed {
		if base == a {
			match = true
			break
		}
	}
	if !match {
		return "", ErrUnsupportedMediaType
	}

	return s.store.Upload(ctx, kind, ownerID, filename, reader, size, base)
}

// URL returns a presigned GET URL for a stored object key.
func (s *MediaService) URL(ctx context.Context, key string) (string, error) {
	return s.store.PresignedURL(ctx, key)
}

// Delete removes a stored object.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
