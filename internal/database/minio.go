package database

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// NewMinioClient connects to the S3-compatible object store and ensures
// the media bucket exists.
func NewMinioClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*minio.Client, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MediaBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MediaBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MediaBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MediaBucket, err)
		}
	}

	log.Info().
		Str("endpoint", cfg.MinioEndpoint).
		Str("bucket", cfg.MediaBucket).
		Msg("Object storage connected")

	return client, nil
}
