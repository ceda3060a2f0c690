package models

import (
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
)

// Folder is a named container for files. ParentID is nil for root-level
// folders; the tree is not validated for cycles.
type Folder struct {
	sql.BaseModel
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	ParentID  *uuid.UUID `json:"parentId" gorm:"type:uuid;index"`
	IsDeleted bool       `json:"isDeleted" gorm:"not null;default:false;index"`
}
