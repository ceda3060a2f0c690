package requests

// ListFilesRequest represents the paginated file listing query
type ListFilesRequest struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	FolderID string `query:"folder_id"` // "root" for unfiled, uuid for exact match, empty for all
}

// SearchFilesRequest represents a file search query
type SearchFilesRequest struct {
	Query    string   `query:"query" validate:"required"`
	Type     string   `query:"type" validate:"omitempty,oneof=image pdf document video audio"`
	SizeMin  *float64 `query:"sizeMin" validate:"omitempty,min=0"` // megabytes
	SizeMax  *float64 `query:"sizeMax" validate:"omitempty,min=0"` // megabytes
	DateFrom string   `query:"dateFrom"`                           // YYYY-MM-DD
	DateTo   string   `query:"dateTo"`                             // YYYY-MM-DD, inclusive
}

// ShareFileRequest represents a share link creation request
type ShareFileRequest struct {
	ExpiresIn int `json:"expiresIn" validate:"omitempty,min=1"` // seconds; 0 means server default
}
