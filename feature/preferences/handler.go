package preferences

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for preferences.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the preference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/preferences")
	group.Get("/:client", h.HandleGet)
	group.Put("/:client", h.HandlePut)
}

// HandleGet returns a client's saved preference.
// @Summary Get Preference
// @Tags preferences
// @Produce json
// @Param client path string true "Client ID"
// @Success 200 {object} models.Preference
// @Failure 404 {object} map[string]string "No saved preference"
// @Router /preferences/{client} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	pref, err := h.service.Get(c.Context(), c.Params("client"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pref)
}

// HandlePut stores a client's preference.
// @Summary Save Preference
// @Description Stores theme and sort for a client. Omitted sort means name ascending; omitted theme keeps the saved theme.
// @Tags preferences
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param request body UpdateRequest true "Preference"
// @Success 200 {object} models.Preference
// @Failure 400 {object} map[string]string "Invalid preference"
// @Router /preferences/{client} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pref, err := h.service.Put(c.Context(), c.Params("client"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pref)
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalid):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
