package sync

import (
	"hideout-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync engine.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *Engine, log *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: log}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSyncNow)
	group.Get("/status", h.HandleStatus)
}

// HandleSyncNow triggers an immediate catalog sync.
// @Summary Sync Now
// @Description Run a full catalog sync immediately instead of waiting for the next cycle.
// @Tags sync
// @Produce json
// @Success 200 {object} Report "Sync Report"
// @Router /sync [post]
func (h *Handler) HandleSyncNow(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Manual sync requested")

	report := h.engine.SyncAll(c.Context())
	return c.JSON(report)
}

// HandleStatus returns the most recent sync report.
// @Summary Sync Status
// @Description Get the report of the most recent catalog sync.
// @Tags sync
// @Produce json
// @Success 200 {object} Report "Last Sync Report"
// @Failure 404 {object} map[string]string "No sync has run yet"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report := h.engine.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync has run yet",
		})
	}
	return c.JSON(report)
}
