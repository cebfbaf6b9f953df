package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
	appconfig "velora.backend/internal/config"
	"velora.backend/pkg/logger"
	"velora.backend/pkg/metrics"
)

// ImageStore uploads binary assets and resolves their public URLs
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error)
	PublicURL(key string) string
}

// S3Store implements ImageStore on an S3 bucket
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

// NewS3Store creates an S3-backed image store
func NewS3Store(ctx context.Context, cfg appconfig.AWSConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the body under a unique key inside the folder and returns the
// object key. The key embeds a UUID so repeated uploads of the same filename
// never collide.
func (s *S3Store) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error) {
	ext := path.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error(ctx, "failed to upload object to S3",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if metrics.ImageUploadBytesTotal != nil && size > 0 {
		metrics.ImageUploadBytesTotal.Add(float64(size))
	}

	logger.Debug(ctx, "uploaded object to S3",
		zap.String("bucket", s.bucket),
		zap.String("key", key))
	return key, nil
}

// PublicURL resolves an object key to its public address. A configured CDN
// origin wins over the raw bucket endpoint.
func (s *S3Store) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
