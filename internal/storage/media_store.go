package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"
)

// MediaStore stores uploaded media (thumbnails, lesson videos, sermon
// audio) in an S3-compatible bucket and hands out presigned GET URLs.
type MediaStore struct {
	client       *minio.Client
	bucket       string
	presignedTTL time.Duration
	log          zerolog.Logger
}

// NewMediaStore creates a MediaStore on an already-connected client.
func NewMediaStore(client *minio.Client, bucket string, presignedTTL time.Duration, log zerolog.Logger) *MediaStore {
	return &MediaStore{
		client:       client,
		bucket:       bucket,
		presignedTTL: presignedTTL,
		log:          log.With().Str("component", "media_store").Logger(),
	}
}

// Upload stores an object under "<kind>/<id>/<random><ext>" and returns
// the object key. kind is a short namespace such as "thumbnails" or
// "videos"; ownerID scopes the object to the entity it belongs to.
func (s *MediaStore) Upload(ctx context.Context, kind string, ownerID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}

	key := fmt.Sprintf("%s/%s/%s%s", kind, ownerID, uuid.New().String()[:8], ext)

	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	s.log.Debug().Str("key", key).Int64("size", size).Msg("Media uploaded")
	return key, nil
}

// PresignedURL returns a time-limited GET URL for an object key.
func (s *MediaStore) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignedTTL, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}

// Delete removes an object. Missing objects are not an error.
func (s *MediaStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
