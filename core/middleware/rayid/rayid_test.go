package rayid_test

import (
	"net/http/httptest"
	"testing"

	"catalog-browser/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)

		rid := resp.Header.Get(rayid.HeaderName)
		_, parseErr := uuid.Parse(rid)
		assert.NoError(t, parseErr)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
	})
}
