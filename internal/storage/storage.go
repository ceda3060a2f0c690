package storage

import (
	"context"
	"io"
	"net/url"
	"time"
)

// RemoveFailure reports a single object that could not be removed during a
// batch delete.
type RemoveFailure struct {
	Path string
	Err  error
}

// ObjectStore is the blob storage capability used by the services. It is
// injected at construction time so tests can substitute a double.
type ObjectStore interface {
	// Put writes a new blob. Paths are generated with a unique suffix, so
	// an existing object at the same path is never expected.
	Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// PresignedGet issues a time-limited signed URL for the blob. When
	// downloadName is non-empty the URL forces an attachment download
	// under that name.
	PresignedGet(ctx context.Context, path string, expiry time.Duration, downloadName string) (*url.URL, error)

	// Remove deletes a single blob.
	Remove(ctx context.Context, path string) error

	// RemoveBatch deletes many blobs, continuing past individual
	// failures and reporting them.
	RemoveBatch(ctx context.Context, paths []string) []RemoveFailure

	// PublicURL returns the stable addressable URL for a blob.
	PublicURL(path string) string
}
