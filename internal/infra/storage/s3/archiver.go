package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archiver stores quote snapshots in an S3-compatible bucket for audit and
// reconciliation.
type Archiver struct {
	bucket         string
	client         *minio.Client
	logger         *slog.Logger
	bucketInitOnce sync.Once
	bucketInitErr  error
}

// NewArchiver configures the archive client for the given endpoint and credentials.
func NewArchiver(endpoint string, useSSL bool, accessKey, secretKey, bucket string, logger *slog.Logger) (*Archiver, error) {
	cleanEndpoint := strings.TrimSpace(endpoint)
	if cleanEndpoint == "" {
		return nil, errors.New("s3: endpoint is required")
	}
	if bucket = strings.TrimSpace(bucket); bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(accessKey), strings.TrimSpace(secretKey), ""),
		Secure: useSSL,
	}
	minioClient, err := minio.New(parseEndpoint(cleanEndpoint), opts)
	if err != nil {
		return nil, fmt.Errorf("s3: create client: %w", err)
	}

	return &Archiver{
		bucket: bucket,
		client: minioClient,
		logger: logger,
	}, nil
}

// ArchiveQuote writes one quote snapshot, keyed by day for easy pruning.
func (a *Archiver) ArchiveQuote(ctx context.Context, quoteID string, payload []byte) error {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return errors.New("s3: quote id is required")
	}
	if len(payload) == 0 {
		return errors.New("s3: payload is required")
	}
	if err := a.ensureBucket(ctx); err != nil {
		return err
	}

	key := fmt.Sprintf("quotes/%s/%s.json", time.Now().UTC().Format("2006/01/02"), quoteID)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("s3: put object: %w", err)
	}
	if a.logger != nil {
		a.logger.Debug("quote archived", "bucket", a.bucket, "key", key)
	}
	return nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	a.bucketInitOnce.Do(func() {
		exists, err := a.client.BucketExists(ctx, a.bucket)
		if err != nil {
			a.bucketInitErr = fmt.Errorf("s3: check bucket: %w", err)
			return
		}
		if exists {
			return
		}
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			a.bucketInitErr = fmt.Errorf("s3: create bucket: %w", err)
		}
	})
	return a.bucketInitErr
}

func parseEndpoint(raw string) string {
	if parsed, err := url.Parse(raw); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
}
