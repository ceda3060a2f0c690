package services

import (
	"context"
	"fmt"

	"drivebox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderService provides simple CRUD over folders. Folder trees are not
// validated for cycles; a parent reference only has to exist and belong
// to the same owner.
type FolderService struct {
	db *gorm.DB
}

// NewFolderService creates a new folder service instance
func NewFolderService(db *gorm.DB) *FolderService {
	return &FolderService{db: db}
}

// List returns the caller's non-deleted folders, newest first.
func (s *FolderService) List(ctx context.Context, userID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return folders, nil
}

// Create inserts a folder, optionally under a parent that must exist and
// belong to the caller.
func (s *FolderService) Create(ctx context.Context, userID uuid.UUID, name string, parentID *uuid.UUID) (*models.Folder, error) {
	if parentID != nil {
		var parent models.Folder
		if err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ? AND is_deleted = ?", parentID, userID, false).
			First(&parent).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
	}

	folder := models.Folder{
		UserID:   userID,
		Name:     name,
		ParentID: parentID,
	}
	if err := s.db.WithContext(ctx).Create(&folder).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	return &folder, nil
}

// Rename updates the display name of an owned folder.
func (s *FolderService) Rename(ctx context.Context, userID, folderID uuid.UUID, name string) (*models.Folder, error) {
	var folder models.Folder
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_deleted = ?", folderID, userID, false).
		First(&folder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if err := s.db.WithContext(ctx).Model(&folder).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	return &folder, nil
}

// Delete soft-deletes an owned folder and moves its files to the trash so
// they stay recoverable alongside it.
func (s *FolderService) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	var folder models.Folder
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_deleted = ?", folderID, userID, false).
		First(&folder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if err := s.db.WithContext(ctx).Model(&folder).Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	if err := s.db.WithContext(ctx).Model(&models.File{}).
		Where("folder_id = ? AND user_id = ?", folderID, userID).
		Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return nil
}
