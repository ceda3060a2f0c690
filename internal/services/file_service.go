package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"drivebox/internal/config"
	"drivebox/internal/models"
	"drivebox/internal/storage"
	"drivebox/internal/utils"

	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/errors"
	"gorm.io/gorm"
)

const bytesPerMegabyte = 1 << 20

// FileService orchestrates the file lifecycle: upload, listing, search,
// trash, restore, permanent deletion and previews. It keeps the metadata
// store and the object store in sync.
type FileService struct {
	db    *gorm.DB
	store storage.ObjectStore
	cfg   config.StorageConfig
}

// NewFileService creates a new file service instance
func NewFileService(db *gorm.DB, store storage.ObjectStore) *FileService {
	return &FileService{
		db:    db,
		store: store,
		cfg:   config.GetConfig().Storage,
	}
}

// ValidateFile validates the uploaded file against configured limits
func (s *FileService) ValidateFile(file *multipart.FileHeader) error {
	if s.cfg.Upload.MaxFileSize > 0 && file.Size > s.cfg.Upload.MaxFileSize {
		return errors.BadRequestError("FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", s.cfg.Upload.MaxFileSize))
	}

	ext := utils.GetFileExtension(file.Filename)
	for _, blocked := range s.cfg.Upload.BlockedExtensions {
		if ext == blocked {
			return errors.BadRequestError("BLOCKED_FILE_TYPE", fmt.Sprintf("File type .%s is not allowed", ext))
		}
	}

	return nil
}

// generateStoragePath builds a collision-resistant object path scoped to
// the owner: <userID>/<unixnano>-<uuid><ext>. The unique suffix makes
// overwrites of earlier uploads structurally impossible.
func (s *FileService) generateStoragePath(userID uuid.UUID, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixNano(), uuid.New(), ext)
}

// Upload writes the blob to the object store and then records the file
// metadata. If the metadata insert fails after a successful blob write the
// blob is intentionally left in place (no compensating delete); this is a
// known inconsistency window.
func (s *FileService) Upload(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader, folderID *uuid.UUID) (*models.File, error) {
	if file == nil || file.Size == 0 {
		return nil, ErrNoFileProvided
	}

	if err := s.ValidateFile(file); err != nil {
		return nil, err
	}

	if folderID != nil {
		var folder models.Folder
		if err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ? AND is_deleted = ?", folderID, userID, false).
			First(&folder).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	defer src.Close()

	path := s.generateStoragePath(userID, file.Filename)
	if err := s.store.Put(ctx, path, src, file.Size, mimeType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	publicURL := s.store.PublicURL(path)
	record := models.File{
		UserID:       userID,
		OriginalName: file.Filename,
		Size:         file.Size,
		MimeType:     mimeType,
		StoragePath:  path,
		PublicURL:    &publicURL,
		FolderID:     folderID,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// The blob written above is now orphaned; record cleanup is left
		// to an operator-run reconciliation, not a compensating delete.
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return &record, nil
}

// List returns the caller's non-deleted files, newest first, windowed by
// page/limit, together with the total match count. folderFilter is "" for
// no filter, "root" for unfiled entries, or a folder ID for an exact match.
func (s *FileService) List(ctx context.Context, userID uuid.UUID, page, limit int, folderFilter string) ([]models.File, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.cfg.Pagination.DefaultLimit
	}
	if limit > s.cfg.Pagination.MaxLimit {
		limit = s.cfg.Pagination.MaxLimit
	}

	query := s.db.WithContext(ctx).Model(&models.File{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	switch folderFilter {
	case "":
	case "root":
		query = query.Where("folder_id IS NULL")
	default:
		folderID, err := uuid.Parse(folderFilter)
		if err != nil {
			return nil, 0, errors.BadRequestError("INVALID_FOLDER_ID", "folder_id must be 'root' or a valid ID")
		}
		query = query.Where("folder_id = ?", folderID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var files []models.File
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&files).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return files, total, nil
}

// SearchParams are the optional filters applied on top of the mandatory
// name query. All provided filters AND together.
type SearchParams struct {
	Query     string
	Type      string   // image, pdf, document, video, audio
	SizeMinMB *float64 // megabytes
	SizeMaxMB *float64
	DateFrom  *time.Time // inclusive bounds on creation time
	DateTo    *time.Time
}

// Search returns the caller's non-deleted files matching the query as a
// case-insensitive substring of the name, filtered by type, size and date.
func (s *FileService) Search(ctx context.Context, userID uuid.UUID, params SearchParams) ([]models.File, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, errors.BadRequestError("MISSING_QUERY", "Search query is required")
	}

	query := s.db.WithContext(ctx).Model(&models.File{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Where("LOWER(original_name) LIKE ?", "%"+strings.ToLower(params.Query)+"%")

	switch params.Type {
	case "":
	case "image":
		query = query.Where("mime_type LIKE ?", "image/%")
	case "pdf":
		query = query.Where("mime_type = ?", "application/pdf")
	case "document":
		query = query.Where(
			"mime_type LIKE ? OR mime_type LIKE ? OR mime_type LIKE ? OR mime_type LIKE ?",
			"%word%", "%excel%", "%powerpoint%", "%officedocument%",
		)
	case "video":
		query = query.Where("mime_type LIKE ?", "video/%")
	case "audio":
		query = query.Where("mime_type LIKE ?", "audio/%")
	default:
		return nil, errors.BadRequestError("INVALID_TYPE", fmt.Sprintf("Unknown file type filter: %s", params.Type))
	}

	if params.SizeMinMB != nil {
		query = query.Where("size >= ?", int64(*params.SizeMinMB*bytesPerMegabyte))
	}
	if params.SizeMaxMB != nil {
		query = query.Where("size <= ?", int64(*params.SizeMaxMB*bytesPerMegabyte))
	}
	if params.DateFrom != nil {
		query = query.Where("created_at >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("created_at <= ?", *params.DateTo)
	}

	var files []models.File
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return files, nil
}

// ListTrash returns the caller's soft-deleted files, newest first.
func (s *FileService) ListTrash(ctx context.Context, userID uuid.UUID) ([]models.File, error) {
	var files []models.File
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, true).
		Order("updated_at DESC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return files, nil
}

// Trash soft-deletes an owned file. Re-trashing an already trashed file is
// a no-op on state but still succeeds.
func (s *FileService) Trash(ctx context.Context, userID, fileID uuid.UUID) (*models.File, error) {
	return s.setDeleted(ctx, userID, fileID, true)
}

// Restore brings a trashed file back into the active listing.
func (s *FileService) Restore(ctx context.Context, userID, fileID uuid.UUID) (*models.File, error) {
	return s.setDeleted(ctx, userID, fileID, false)
}

func (s *FileService) setDeleted(ctx context.Context, userID, fileID uuid.UUID, deleted bool) (*models.File, error) {
	var file models.File
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fileID, userID).
		First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if file.IsDeleted != deleted {
		if err := s.db.WithContext(ctx).Model(&file).Update("is_deleted", deleted).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
		}
	}

	return &file, nil
}

// PermanentlyDelete removes the blob and then the metadata row. A failed
// blob removal is logged but does not block the metadata cleanup: a
// missing blob must never pin a dead record.
func (s *FileService) PermanentlyDelete(ctx context.Context, userID, fileID uuid.UUID) error {
	var file models.File
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fileID, userID).
		First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if err := s.store.Remove(ctx, file.StoragePath); err != nil {
		log.Printf("Warning: failed to remove blob %s: %v", file.StoragePath, err)
	}

	if err := s.db.WithContext(ctx).Delete(&file).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return nil
}

// EmptyTrash permanently deletes every trashed file of the caller. Blob
// removal is best-effort; the returned count is the number of records that
// were in the trash when the operation started, not the number of blobs
// actually removed.
func (s *FileService) EmptyTrash(ctx context.Context, userID uuid.UUID) (int, error) {
	var files []models.File
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, true).
		Find(&files).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if len(files) == 0 {
		return 0, nil
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.StoragePath)
	}
	for _, failure := range s.store.RemoveBatch(ctx, paths) {
		log.Printf("Warning: failed to remove blob %s: %v", failure.Path, failure.Err)
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, true).
		Delete(&models.File{}).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return len(files), nil
}

// PreviewResult carries a short-lived signed URL plus the renderer hint
// for an owned file.
type PreviewResult struct {
	URL      string `json:"url"`
	Kind     string `json:"kind"`
	FileName string `json:"fileName"`
}

// Preview issues a short-lived signed URL for an owned file. The lookup is
// not filtered by trash state.
func (s *FileService) Preview(ctx context.Context, userID, fileID uuid.UUID) (*PreviewResult, error) {
	var file models.File
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fileID, userID).
		First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	expiry := time.Duration(s.cfg.Preview.ExpirySeconds) * time.Second
	signed, err := s.store.PresignedGet(ctx, file.StoragePath, expiry, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	return &PreviewResult{
		URL:      signed.String(),
		Kind:     utils.PreviewKind(file.MimeType),
		FileName: file.OriginalName,
	}, nil
}
