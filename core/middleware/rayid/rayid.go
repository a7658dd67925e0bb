package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response (and optional request) header carrying the RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a RayID.
// An incoming X-Ray-ID header is reused so that proxies can correlate requests.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
