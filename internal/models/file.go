package models

import (
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
)

// File represents an uploaded file owned by a single user.
// StoragePath is set once at upload time and never changes; IsDeleted
// toggles trash visibility without touching the record or the blob.
type File struct {
	sql.BaseModel
	UserID       uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	OriginalName string     `json:"originalName" gorm:"not null"`
	Size         int64      `json:"size" gorm:"not null"`
	MimeType     string     `json:"mimeType" gorm:"not null"`
	StoragePath  string     `json:"storagePath" gorm:"not null;uniqueIndex"`
	PublicURL    *string    `json:"publicUrl"`
	FolderID     *uuid.UUID `json:"folderId" gorm:"type:uuid;index"`
	IsDeleted    bool       `json:"isDeleted" gorm:"not null;default:false;index"`
}
