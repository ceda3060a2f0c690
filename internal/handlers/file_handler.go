package handlers

import (
	"time"

	"drivebox/internal/auth"
	"drivebox/internal/requests"
	"drivebox/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	fileService  *services.FileService
	shareService *services.ShareService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *services.FileService, shareService *services.ShareService) *FileHandler {
	return &FileHandler{
		fileService:  fileService,
		shareService: shareService,
	}
}

// UploadFile handles multipart file upload requests
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	file, err := c.FormFile("file")
	if err != nil {
		response := httpx.BadRequest("No file provided", err)
		return httpx.SendResponse(c, response)
	}

	var folderID *uuid.UUID
	if raw := c.FormValue("folder_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response := httpx.BadRequest("Invalid folder ID", err)
			return httpx.SendResponse(c, response)
		}
		folderID = &id
	}

	record, err := h.fileService.Upload(c.UserContext(), userID, file, folderID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.Created("File uploaded successfully", record)
	return httpx.SendResponse(c, response)
}

// ListFiles handles paginated file listing requests
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	var input requests.ListFilesRequest
	if err := c.QueryParser(&input); err != nil {
		response := httpx.BadRequest("Invalid query parameters", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	files, total, err := h.fileService.List(c.UserContext(), userID, input.Page, input.Limit, input.FolderID)
	if err != nil {
		return respondServiceError(c, err)
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	result := fiber.Map{
		"files": files,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	}

	response := httpx.OK("Files retrieved successfully", result)
	return httpx.SendResponse(c, response)
}

// SearchFiles handles filtered file search requests
func (h *FileHandler) SearchFiles(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	var input requests.SearchFilesRequest
	if err := c.QueryParser(&input); err != nil {
		response := httpx.BadRequest("Invalid query parameters", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	params := services.SearchParams{
		Query:     input.Query,
		Type:      input.Type,
		SizeMinMB: input.SizeMin,
		SizeMaxMB: input.SizeMax,
	}

	if input.DateFrom != "" {
		from, err := time.Parse("2006-01-02", input.DateFrom)
		if err != nil {
			response := httpx.BadRequest("Invalid dateFrom, expected YYYY-MM-DD", err)
			return httpx.SendResponse(c, response)
		}
		params.DateFrom = &from
	}
	if input.DateTo != "" {
		to, err := time.Parse("2006-01-02", input.DateTo)
		if err != nil {
			response := httpx.BadRequest("Invalid dateTo, expected YYYY-MM-DD", err)
			return httpx.SendResponse(c, response)
		}
		// Inclusive upper bound: cover the whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		params.DateTo = &to
	}

	files, err := h.fileService.Search(c.UserContext(), userID, params)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Files retrieved successfully", fiber.Map{"files": files})
	return httpx.SendResponse(c, response)
}

// ListTrash handles trashed file listing requests
func (h *FileHandler) ListTrash(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	files, err := h.fileService.ListTrash(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Trash retrieved successfully", fiber.Map{"files": files})
	return httpx.SendResponse(c, response)
}

// TrashFile handles soft-delete requests
func (h *FileHandler) TrashFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.fileService.Trash(c.UserContext(), userID, fileID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("File moved to trash", file)
	return httpx.SendResponse(c, response)
}

// RestoreFile handles un-delete requests
func (h *FileHandler) RestoreFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.fileService.Restore(c.UserContext(), userID, fileID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("File restored successfully", file)
	return httpx.SendResponse(c, response)
}

// PermanentlyDeleteFile handles hard delete requests
func (h *FileHandler) PermanentlyDeleteFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.fileService.PermanentlyDelete(c.UserContext(), userID, fileID); err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("File permanently deleted", nil)
	return httpx.SendResponse(c, response)
}

// EmptyTrash handles trash purge requests
func (h *FileHandler) EmptyTrash(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	count, err := h.fileService.EmptyTrash(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Trash emptied successfully", fiber.Map{"deletedCount": count})
	return httpx.SendResponse(c, response)
}

// PreviewFile handles signed preview URL requests
func (h *FileHandler) PreviewFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	preview, err := h.fileService.Preview(c.UserContext(), userID, fileID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Preview URL issued", preview)
	return httpx.SendResponse(c, response)
}

// ShareFile handles share link creation requests
func (h *FileHandler) ShareFile(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.ShareFileRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			response := httpx.BadRequest("Invalid request body", err)
			return httpx.SendResponse(c, response)
		}
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	result, err := h.shareService.CreateShare(c.UserContext(), userID, fileID, input.ExpiresIn)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.Created("Share link created", result)
	return httpx.SendResponse(c, response)
}

// RedeemShare handles anonymous share token redemption. This is the only
// unauthenticated read path.
func (h *FileHandler) RedeemShare(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		response := httpx.BadRequest("Missing share token", nil)
		return httpx.SendResponse(c, response)
	}

	result, err := h.shareService.RedeemShare(c.UserContext(), token)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Share resolved successfully", result)
	return httpx.SendResponse(c, response)
}
