package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sync"
	"testing"
	"time"

	"drivebox/internal/config"
	"drivebox/internal/models"
	"drivebox/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	dbsql "github.com/kerimovok/go-pkg-database/sql"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore is an in-memory ObjectStore double.
type fakeStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	putErr     error
	removeErr  error
	presignErr error
	removed    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, path string, reader io.Reader, _ int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStore) PresignedGet(_ context.Context, path string, expiry time.Duration, downloadName string) (*url.URL, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	q := url.Values{}
	q.Set("X-Amz-Expires", fmt.Sprintf("%d", int(expiry.Seconds())))
	if downloadName != "" {
		q.Set("response-content-disposition", "attachment; filename="+downloadName)
	}
	return &url.URL{Scheme: "https", Host: "storage.test", Path: "/" + path, RawQuery: q.Encode()}, nil
}

func (f *fakeStore) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.objects, path)
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeStore) RemoveBatch(_ context.Context, paths []string) []storage.RemoveFailure {
	f.mu.Lock()
	defer f.mu.Unlock()
	var failures []storage.RemoveFailure
	for _, p := range paths {
		if f.removeErr != nil {
			failures = append(failures, storage.RemoveFailure{Path: p, Err: f.removeErr})
			continue
		}
		delete(f.objects, p)
		f.removed = append(f.removed, p)
	}
	return failures
}

func (f *fakeStore) PublicURL(path string) string {
	return "https://storage.test/drivebox/" + path
}

func (f *fakeStore) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[path]
	return ok
}

func setupTestConfig() {
	config.Config = config.MainConfig{
		Storage: config.StorageConfig{
			Upload: config.UploadConfig{
				MaxFileSize:       10 * 1024 * 1024,
				BlockedExtensions: []string{"exe"},
			},
			Share: config.ShareConfig{
				DefaultExpirySeconds: 3600,
				MaxExpirySeconds:     604800,
			},
			Preview: config.PreviewConfig{
				ExpirySeconds: 300,
			},
			Pagination: config.PaginationConfig{
				DefaultLimit: 20,
				MaxLimit:     100,
			},
		},
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.File{}, &models.Folder{}, &models.Share{}))
	return db
}

func seedFile(t *testing.T, db *gorm.DB, userID uuid.UUID, name, mimeType string, size int64, opts ...func(*models.File)) *models.File {
	t.Helper()
	path := fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixNano(), uuid.New())
	file := &models.File{
		BaseModel:    dbsql.BaseModel{ID: uuid.New()},
		UserID:       userID,
		OriginalName: name,
		Size:         size,
		MimeType:     mimeType,
		StoragePath:  path,
	}
	for _, opt := range opts {
		opt(file)
	}
	require.NoError(t, db.Create(file).Error)
	return file
}

// newFileHeader builds a real multipart.FileHeader by writing and
// re-parsing a form, the same shape fiber hands to the upload handler.
func newFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}
