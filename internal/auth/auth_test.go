package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestParseUserID(t *testing.T) {
	v := NewVerifierWithSecret(testSecret)
	userID := uuid.New()

	token := signToken(t, testSecret, userID.String(), time.Now().Add(time.Hour))
	got, err := v.ParseUserID(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestParseUserIDRejectsBadTokens(t *testing.T) {
	v := NewVerifierWithSecret(testSecret)
	userID := uuid.New()

	cases := map[string]string{
		"wrong secret": signToken(t, []byte("other"), userID.String(), time.Now().Add(time.Hour)),
		"expired":      signToken(t, testSecret, userID.String(), time.Now().Add(-time.Minute)),
		"non-uuid sub": signToken(t, testSecret, "admin", time.Now().Add(time.Hour)),
		"empty sub":    signToken(t, testSecret, "", time.Now().Add(time.Hour)),
		"garbage":      "not.a.jwt",
	}

	for name, token := range cases {
		_, err := v.ParseUserID(token)
		require.Error(t, err, name)
	}
}

func TestMiddleware(t *testing.T) {
	v := NewVerifierWithSecret(testSecret)
	userID := uuid.New()

	app := fiber.New()
	app.Get("/protected", v.Middleware, func(c *fiber.Ctx) error {
		require.Equal(t, userID, UserIDFromContext(c))
		return c.SendStatus(fiber.StatusOK)
	})

	// Valid bearer token passes and exposes the user ID.
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String(), time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Missing header is rejected.
	resp, err = app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Expired token is rejected.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String(), time.Now().Add(-time.Minute)))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Non-bearer scheme is rejected.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
