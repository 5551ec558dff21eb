package rayid

import (
	"sync-actions/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request and response header carrying the ray id.
const Header = "X-Ray-ID"

// New returns a middleware that assigns every request a ray id. An
// incoming X-Ray-ID header is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
