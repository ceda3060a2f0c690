package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
)

// Client proxies credential operations to the external GoTrue-compatible
// auth service. Responses are passed through verbatim so clients see the
// provider's token payloads unchanged.
type Client struct {
	baseURL string
}

func NewClient() *Client {
	return &Client{baseURL: pkgConfig.GetEnv("AUTH_URL")}
}

// SignUp registers a new identity with the auth service.
func (c *Client) SignUp(email, password string) (int, []byte, error) {
	agent := fiber.Post(c.baseURL + "/signup")
	agent.JSON(fiber.Map{"email": email, "password": password})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("auth service unreachable: %w", errs[0])
	}
	return code, body, nil
}

// SignIn exchanges credentials for a token pair.
func (c *Client) SignIn(email, password string) (int, []byte, error) {
	agent := fiber.Post(c.baseURL + "/token?grant_type=password")
	agent.JSON(fiber.Map{"email": email, "password": password})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("auth service unreachable: %w", errs[0])
	}
	return code, body, nil
}

// SignOut revokes the bearer token with the auth service.
func (c *Client) SignOut(bearer string) (int, []byte, error) {
	agent := fiber.Post(c.baseURL + "/logout")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("auth service unreachable: %w", errs[0])
	}
	return code, body, nil
}
