package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Header is the API key header.
const Header = "X-API-Key"

// Config holds the auth middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware that requires the configured API key, either in
// the X-API-Key header or as a Bearer token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if !valid(cfg.ApiKey, key(c)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

func key(c *fiber.Ctx) string {
	if k := c.Get(Header); k != "" {
		return k
	}
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func valid(expected, got string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
