package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// UserIDKey is the locals key under which the middleware stores the
// authenticated user's ID.
const UserIDKey = "userID"

var ErrInvalidToken = errors.New("invalid token")

// Verifier resolves bearer tokens issued by the external auth service.
// Tokens are HS256-signed with a shared secret; the subject claim carries
// the user ID.
type Verifier struct {
	secret []byte
}

func NewVerifier() *Verifier {
	return &Verifier{secret: []byte(pkgConfig.GetEnv("JWT_SECRET"))}
}

// NewVerifierWithSecret is used by tests to construct a verifier without
// touching the environment.
func NewVerifierWithSecret(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// ParseUserID validates the token signature and expiry and returns the
// user ID from the subject claim.
func (v *Verifier) ParseUserID(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// Middleware gates a route group on a valid bearer credential and stores
// the resolved user ID in the request locals.
func (v *Verifier) Middleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		response := httpx.Unauthorized("Missing or invalid authorization header")
		return httpx.SendResponse(c, response)
	}

	userID, err := v.ParseUserID(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		response := httpx.Unauthorized("Invalid or expired token")
		return httpx.SendResponse(c, response)
	}

	c.Locals(UserIDKey, userID)
	return c.Next()
}

// UserIDFromContext returns the authenticated user ID stored by Middleware.
func UserIDFromContext(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(UserIDKey).(uuid.UUID)
	return id
}
