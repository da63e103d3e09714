package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray id.
const HeaderName = "X-Ray-ID"

// New creates a middleware that assigns a unique ray id to every request.
// The id is stored in Locals under "ray_id" and echoed in the response
// headers so clients can correlate logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an incoming id so upstream proxies can trace through
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
