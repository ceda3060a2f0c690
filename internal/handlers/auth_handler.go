package handlers

import (
	"strings"

	"drivebox/internal/auth"
	"drivebox/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// AuthHandler proxies credential operations to the external auth service.
// The provider's JSON responses are forwarded verbatim, status included,
// so clients consume the provider's token payloads directly.
type AuthHandler struct {
	client *auth.Client
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *auth.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

func forward(c *fiber.Ctx, code int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(code).Send(body)
}

// SignUp registers a new identity
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input requests.SignUpRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	code, body, err := h.client.SignUp(input.Email, input.Password)
	if err != nil {
		response := httpx.InternalServerError("Auth service unavailable", err)
		return httpx.SendResponse(c, response)
	}
	return forward(c, code, body)
}

// SignIn exchanges credentials for a token pair
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input requests.SignInRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	code, body, err := h.client.SignIn(input.Email, input.Password)
	if err != nil {
		response := httpx.InternalServerError("Auth service unavailable", err)
		return httpx.SendResponse(c, response)
	}
	return forward(c, code, body)
}

// SignOut revokes the caller's bearer token
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		response := httpx.Unauthorized("Missing or invalid authorization header")
		return httpx.SendResponse(c, response)
	}

	code, body, err := h.client.SignOut(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		response := httpx.InternalServerError("Auth service unavailable", err)
		return httpx.SendResponse(c, response)
	}
	return forward(c, code, body)
}
