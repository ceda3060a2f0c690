package handlers

import (
	"errors"

	"drivebox/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// respondServiceError translates service error kinds into HTTP responses.
// Share lookups intentionally answer 404 for both unknown and expired
// tokens.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return httpx.SendResponse(c, httpx.NotFound("Resource not found"))
	case errors.Is(err, services.ErrShareInvalid):
		return httpx.SendResponse(c, httpx.NotFound("Share link is invalid or has expired"))
	case errors.Is(err, services.ErrNoFileProvided):
		return httpx.SendResponse(c, httpx.BadRequest("No file provided", err))
	case errors.Is(err, services.ErrStorageWrite):
		return httpx.SendResponse(c, httpx.BadRequest("Failed to store file", err))
	case errors.Is(err, services.ErrQuery),
		errors.Is(err, services.ErrMetadataWrite),
		errors.Is(err, services.ErrShareCreation):
		return httpx.SendResponse(c, httpx.BadRequest("Database operation failed", err))
	case errors.Is(err, services.ErrStorageRead):
		return httpx.SendResponse(c, httpx.InternalServerError("Object storage unavailable", err))
	default:
		return httpx.SendResponse(c, httpx.BadRequest("Request failed", err))
	}
}
