package requests

import "github.com/google/uuid"

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

// UpdateFolderRequest represents a folder rename request
type UpdateFolderRequest struct {
	Name string `json:"name" validate:"required"`
}
