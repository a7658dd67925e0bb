package catalog

import (
	"bytes"
	"context"
	"errors"

	"catalog-browser/core/logger"
	"catalog-browser/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SortPreferences looks up the saved sort of a client. A nil spec means nothing is saved.
type SortPreferences interface {
	SavedSort(ctx context.Context, client string) (*models.SortSpec, error)
}

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
	prefs   SortPreferences
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateSessionRequest is the optional body of POST /catalog/sessions.
// Without an explicit sort, the saved sort of Client is used when preferences are enabled.
type CreateSessionRequest struct {
	Sort   *models.SortSpec `json:"sort,omitempty"`
	Client string           `json:"client,omitempty"`
}

// SessionResponse pairs a session id with its first view.
type SessionResponse struct {
	ID   string `json:"id"`
	View View   `json:"view"`
}

// ColumnRequest is the body of a column header click.
type ColumnRequest struct {
	Key models.SortKey `json:"key"`
}

// StatRequest is the body of a stat badge click.
type StatRequest struct {
	Stat     string `json:"stat"`
	Modifier bool   `json:"modifier"`
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/status", h.HandleStatus)
	group.Post("/reload", h.HandleReload)
	group.Post("/sessions", h.HandleCreateSession)

	group.Get("/sessions/:id", h.HandleGetView)
	group.Delete("/sessions/:id", h.HandleCloseSession)
	group.Put("/sessions/:id/filters", h.HandleApplyFilters)
	group.Post("/sessions/:id/sort/column", h.HandleSelectColumn)
	group.Post("/sessions/:id/sort/stat", h.HandleClickStat)
	group.Post("/sessions/:id/reveal", h.HandleReveal)
	group.Post("/sessions/:id/reset", h.HandleReset)
	group.Get("/sessions/:id/debug", h.HandleGetDebug)
	group.Post("/sessions/:id/debug", h.HandleToggleDebug)
	group.Get("/sessions/:id/export.json", h.HandleExportJSON)
	group.Get("/sessions/:id/export.csv", h.HandleExportCSV)
}

// HandleStatus reports the catalog load state.
// @Summary Catalog Status
// @Description Returns whether the catalog is loaded, its item count and the last load report.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Status
// @Router /catalog/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleReload rebuilds the catalog from its source.
// @Summary Reload Catalog
// @Description Fetches the manifest and every chunk again. Chunk failures are reported, a manifest failure is fatal.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.LoadReport
// @Failure 503 {object} map[string]string "Manifest unavailable"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Reloading catalog")

	report, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleCreateSession opens a view session.
// @Summary Create View Session
// @Description Opens a browsing session over the loaded catalog, optionally with an initial sort.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Initial sort or client whose saved sort to use"
// @Success 201 {object} SessionResponse
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /catalog/sessions [post]
func (h *Handler) HandleCreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if req.Sort == nil && req.Client != "" && h.prefs != nil {
		saved, err := h.prefs.SavedSort(c.Context(), req.Client)
		if err != nil {
			logger.WithRayID(h.service.logger, c).Warn("Failed to load saved sort",
				zap.String("client", req.Client), zap.Error(err))
		}
		req.Sort = saved
	}

	id, view, err := h.service.CreateSession(req.Sort)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(SessionResponse{ID: id, View: view})
}

// HandleGetView returns the current view.
// @Summary Get View
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} catalog.View
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /catalog/sessions/{id} [get]
func (h *Handler) HandleGetView(c *fiber.Ctx) error {
	return h.respond(c)(h.service.View(c.Params("id")))
}

// HandleCloseSession drops a view session.
// @Summary Close View Session
// @Tags catalog
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /catalog/sessions/{id} [delete]
func (h *Handler) HandleCloseSession(c *fiber.Ctx) error {
	if err := h.service.CloseSession(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleApplyFilters replaces the filter criteria.
// @Summary Apply Filters
// @Description Empty category, path or tier lists accept everything for that dimension.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param criteria body models.FilterCriteria true "Filter criteria"
// @Success 200 {object} catalog.View
// @Router /catalog/sessions/{id}/filters [put]
func (h *Handler) HandleApplyFilters(c *fiber.Ctx) error {
	var criteria models.FilterCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.respond(c)(h.service.ApplyFilters(c.Params("id"), criteria))
}

// HandleSelectColumn applies a column header click.
// @Summary Sort By Column
// @Description Re-selecting the active column flips the direction; a new column sorts ascending.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ColumnRequest true "Column"
// @Success 200 {object} catalog.View
// @Failure 400 {object} map[string]string "Unknown column"
// @Router /catalog/sessions/{id}/sort/column [post]
func (h *Handler) HandleSelectColumn(c *fiber.Ctx) error {
	var req ColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.respond(c)(h.service.SelectColumn(c.Params("id"), req.Key))
}

// HandleClickStat applies a stat badge click.
// @Summary Sort By Stat
// @Description Clicking the active stat clears the stat sort; with modifier it flips direction. AC always sorts ascending.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body StatRequest true "Stat"
// @Success 200 {object} catalog.View
// @Router /catalog/sessions/{id}/sort/stat [post]
func (h *Handler) HandleClickStat(c *fiber.Ctx) error {
	var req StatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.respond(c)(h.service.ClickStat(c.Params("id"), req.Stat, req.Modifier))
}

// HandleReveal reveals the next page.
// @Summary Reveal More
// @Description Scroll-proximity signal: reveals one more page unless everything is visible.
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} catalog.View
// @Router /catalog/sessions/{id}/reveal [post]
func (h *Handler) HandleReveal(c *fiber.Ctx) error {
	return h.respond(c)(h.service.Reveal(c.Params("id")))
}

// HandleReset clears filters and sort.
// @Summary Reset View
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} catalog.View
// @Router /catalog/sessions/{id}/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	return h.respond(c)(h.service.Reset(c.Params("id")))
}

// HandleGetDebug returns the diagnostic line.
// @Summary Debug Meta
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string
// @Router /catalog/sessions/{id}/debug [get]
func (h *Handler) HandleGetDebug(c *fiber.Ctx) error {
	meta, err := h.service.Debug(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"debug": meta})
}

// HandleToggleDebug opens or closes the diagnostic line.
// @Summary Toggle Debug
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} catalog.View
// @Router /catalog/sessions/{id}/debug [post]
func (h *Handler) HandleToggleDebug(c *fiber.Ctx) error {
	return h.respond(c)(h.service.ToggleDebug(c.Params("id")))
}

// HandleExportJSON downloads the filtered view as JSON.
// @Summary Export JSON
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} catalog.ExportDocument
// @Router /catalog/sessions/{id}/export.json [get]
func (h *Handler) HandleExportJSON(c *fiber.Ctx) error {
	return h.export(c, "json", fiber.MIMEApplicationJSONCharsetUTF8, "filtered-items.json")
}

// HandleExportCSV downloads the filtered view as CSV.
// @Summary Export CSV
// @Tags catalog
// @Produce text/csv
// @Param id path string true "Session ID"
// @Success 200 {string} string "CSV document"
// @Router /catalog/sessions/{id}/export.csv [get]
func (h *Handler) HandleExportCSV(c *fiber.Ctx) error {
	return h.export(c, "csv", "text/csv; charset=utf-8", "filtered-items.csv")
}

func (h *Handler) export(c *fiber.Ctx, format, contentType, filename string) error {
	var buf bytes.Buffer
	if err := h.service.Export(c.Params("id"), format, &buf); err != nil {
		return h.fail(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

func (h *Handler) respond(c *fiber.Ctx) func(View, error) error {
	return func(view View, err error) error {
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(view)
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownFormat):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotLoaded), errors.Is(err, ErrManifest):
		status = fiber.StatusServiceUnavailable
	}

	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error("Catalog request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Debug("Catalog request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
