package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements ObjectStore on top of a MinIO/S3 bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NormalizeEndpoint accepts either "minio:9000" or "http(s)://minio:9000"
// and returns the host plus whether TLS should be used.
func NormalizeEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	// No scheme provided, treat as host:port (insecure by default for local MinIO).
	return raw, false, nil
}

// NewMinioStore builds the object store client from environment variables
// and verifies the bucket exists.
func NewMinioStore() (*MinioStore, error) {
	rawEndpoint := pkgConfig.GetEnv("S3_ENDPOINT")
	accessKey := pkgConfig.GetEnv("S3_ACCESS_KEY")
	secretKey := pkgConfig.GetEnv("S3_SECRET_KEY")
	bucket := pkgConfig.GetEnv("S3_BUCKET")

	endpoint, secure, err := NormalizeEndpoint(rawEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid S3_ENDPOINT: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket does not exist: %s", bucket)
	}

	return &MinioStore{client: client, bucket: bucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) PresignedGet(ctx context.Context, path string, expiry time.Duration, downloadName string) (*url.URL, error) {
	reqParams := make(url.Values)
	if downloadName != "" {
		reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}
	return s.client.PresignedGetObject(ctx, s.bucket, path, expiry, reqParams)
}

func (s *MinioStore) Remove(ctx context.Context, path string) error {
	return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}

func (s *MinioStore) RemoveBatch(ctx context.Context, paths []string) []RemoveFailure {
	objectsCh := make(chan minio.ObjectInfo, len(paths))
	for _, p := range paths {
		objectsCh <- minio.ObjectInfo{Key: p}
	}
	close(objectsCh)

	var failures []RemoveFailure
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failures = append(failures, RemoveFailure{Path: rErr.ObjectName, Err: rErr.Err})
	}
	return failures
}

func (s *MinioStore) PublicURL(path string) string {
	return s.client.EndpointURL().String() + "/" + s.bucket + "/" + path
}
