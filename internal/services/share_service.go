package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"drivebox/internal/config"
	"drivebox/internal/models"
	"drivebox/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const shareTokenBytes = 16

// ShareService issues and redeems time-bounded public access grants for
// single files. Possession of a token is the whole authorization: redeeming
// requires no identity.
type ShareService struct {
	db    *gorm.DB
	store storage.ObjectStore
	cfg   config.StorageConfig
}

// NewShareService creates a new share service instance
func NewShareService(db *gorm.DB, store storage.ObjectStore) *ShareService {
	return &ShareService{
		db:    db,
		store: store,
		cfg:   config.GetConfig().Storage,
	}
}

// GenerateShareToken returns a fresh unguessable token: 16 bytes of
// cryptographically secure randomness, hex encoded to 32 characters.
func GenerateShareToken() (string, error) {
	token := make([]byte, shareTokenBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrShareCreation, err)
	}
	return hex.EncodeToString(token), nil
}

// clampExpiry applies the default when no TTL was requested and the
// configured ceiling otherwise.
func (s *ShareService) clampExpiry(expiresIn int) int {
	if expiresIn <= 0 {
		return s.cfg.Share.DefaultExpirySeconds
	}
	if expiresIn > s.cfg.Share.MaxExpirySeconds {
		return s.cfg.Share.MaxExpirySeconds
	}
	return expiresIn
}

// ShareResult bundles the signed download URL with the persisted share.
type ShareResult struct {
	SignedURL string        `json:"signedUrl"`
	Share     *models.Share `json:"share"`
}

// CreateShare verifies ownership of the file, issues a signed URL valid
// for the requested window and persists a share record carrying a fresh
// token. Each call creates a new record; tokens are never reused.
func (s *ShareService) CreateShare(ctx context.Context, userID, fileID uuid.UUID, expiresIn int) (*ShareResult, error) {
	var file models.File
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fileID, userID).
		First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	expiresIn = s.clampExpiry(expiresIn)
	expiry := time.Duration(expiresIn) * time.Second

	signed, err := s.store.PresignedGet(ctx, file.StoragePath, expiry, file.OriginalName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	token, err := GenerateShareToken()
	if err != nil {
		return nil, err
	}

	share := models.Share{
		FileID:    file.ID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(expiry),
	}
	if err := s.db.WithContext(ctx).Create(&share).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShareCreation, err)
	}

	return &ShareResult{SignedURL: signed.String(), Share: &share}, nil
}

// RedeemResult is the anonymous view of a shared file.
type RedeemResult struct {
	File        *models.File `json:"file"`
	DownloadURL string       `json:"downloadUrl"`
}

// RedeemShare resolves a token to its file and a fresh short-lived
// download URL. Unknown and expired tokens fail identically so callers
// cannot probe which tokens once existed.
func (s *ShareService) RedeemShare(ctx context.Context, token string) (*RedeemResult, error) {
	var share models.Share
	if err := s.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&share).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrShareInvalid
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var file models.File
	if err := s.db.WithContext(ctx).
		Where("id = ?", share.FileID).
		First(&file).Error; err != nil {
		// The file may have been permanently deleted since the share was
		// issued; treat the token as dead.
		if err == gorm.ErrRecordNotFound {
			return nil, ErrShareInvalid
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	// The download URL expiry is fixed and independent of the share's own
	// window.
	expiry := time.Duration(s.cfg.Preview.ExpirySeconds) * time.Second
	signed, err := s.store.PresignedGet(ctx, file.StoragePath, expiry, file.OriginalName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	return &RedeemResult{File: &file, DownloadURL: signed.String()}, nil
}
