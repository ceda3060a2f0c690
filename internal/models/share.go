package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
)

// Share grants anonymous, time-bounded access to one file. Token is the
// sole lookup key; a share is never mutated after creation and simply
// stops resolving once ExpiresAt passes.
type Share struct {
	sql.BaseModel
	FileID    uuid.UUID `json:"fileId" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Token     string    `json:"token" gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}
