package legacy

import (
	"hideout-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for profile export and import.
type Handler struct {
	exporter *Exporter
	importer *Importer
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(exporter *Exporter, importer *Importer, log *zap.Logger) *Handler {
	return &Handler{exporter: exporter, importer: importer, logger: log}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/profile")
	group.Get("/export", h.HandleExport)
	group.Post("/import", h.HandleImport)
}

// HandleExport renders the current user state as a TOML profile.
// @Summary Export Profile
// @Description Export the full user state as editable TOML.
// @Tags profile
// @Produce plain
// @Success 200 {string} string "TOML profile"
// @Router /profile/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	data, err := h.exporter.Export(c.Context())
	if err != nil {
		l.Error("Profile export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/toml; charset=utf-8")
	return c.Send(data)
}

// HandleImport applies a TOML profile to the local store.
// @Summary Import Profile
// @Description Parse a TOML profile and apply it over the current state.
// @Tags profile
// @Accept plain
// @Produce json
// @Success 200 {object} map[string]string "Imported"
// @Failure 400 {object} map[string]string "Invalid profile"
// @Router /profile/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.importer.Import(c.Context(), c.Body()); err != nil {
		l.Warn("Profile import rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Profile imported")
	return c.JSON(fiber.Map{"status": "imported"})
}
