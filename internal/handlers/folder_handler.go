package handlers

import (
	"drivebox/internal/auth"
	"drivebox/internal/requests"
	"drivebox/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// FolderHandler handles folder-related HTTP requests
type FolderHandler struct {
	folderService *services.FolderService
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService *services.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// ListFolders returns the caller's folders
func (h *FolderHandler) ListFolders(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	folders, err := h.folderService.List(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Folders retrieved successfully", fiber.Map{"folders": folders})
	return httpx.SendResponse(c, response)
}

// CreateFolder creates a folder, optionally under a parent
func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	var input requests.CreateFolderRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	folder, err := h.folderService.Create(c.UserContext(), userID, input.Name, input.ParentID)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.Created("Folder created successfully", folder)
	return httpx.SendResponse(c, response)
}

// UpdateFolder renames a folder
func (h *FolderHandler) UpdateFolder(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	folderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid folder ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdateFolderRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	folder, err := h.folderService.Rename(c.UserContext(), userID, folderID, input.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Folder updated successfully", folder)
	return httpx.SendResponse(c, response)
}

// DeleteFolder soft-deletes a folder and trashes its files
func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)

	folderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid folder ID", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.folderService.Delete(c.UserContext(), userID, folderID); err != nil {
		return respondServiceError(c, err)
	}

	response := httpx.OK("Folder deleted successfully", nil)
	return httpx.SendResponse(c, response)
}
