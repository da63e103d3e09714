package progress

import (
	"hideout-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for derived progress views.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the progress routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/progress")
	group.Get("/state", h.HandleState)
	group.Get("/upgrades", h.HandleUpgrades)
	group.Get("/summary", h.HandleSummary)
	group.Post("/raid", h.HandleRaid)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleState returns the rebuilt user state snapshot.
// @Summary User State
// @Description Get the merged user-state snapshot rebuilt from the local store.
// @Tags progress
// @Produce json
// @Success 200 {object} UserState
// @Router /progress/state [get]
func (h *Handler) HandleState(c *fiber.Ctx) error {
	state, err := h.service.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot rebuild failed", err)
	}
	return c.JSON(state)
}

// HandleUpgrades returns every unpurchased upgrade with availability detail.
// @Summary Upgrades
// @Description List unpurchased upgrades with availability, focus and unmet requirement detail.
// @Tags progress
// @Produce json
// @Success 200 {array} UpgradeView
// @Router /progress/upgrades [get]
func (h *Handler) HandleUpgrades(c *fiber.Ctx) error {
	views, err := h.service.Upgrades(c.Context())
	if err != nil {
		return h.fail(c, "Upgrade derivation failed", err)
	}
	return c.JSON(views)
}

// HandleSummary returns the aggregated item shopping summary.
// @Summary Item Summary
// @Description Get the required-now / will-need / total / owned / remaining summary per item.
// @Tags progress
// @Produce json
// @Param sort query string false "Sort field (itemName, requiredNow, willNeed, totalRequired, owned, remaining)"
// @Param desc query bool false "Sort descending"
// @Success 200 {array} SummaryRow
// @Router /progress/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	field := ParseSortField(c.Query("sort"))
	descending := c.QueryBool("desc", field != SortByItemName)

	rows, err := h.service.Summary(c.Context(), field, descending)
	if err != nil {
		return h.fail(c, "Summary derivation failed", err)
	}
	return c.JSON(rows)
}

type raidBody struct {
	Items map[string]int `json:"items"`
	Tasks []string       `json:"tasks"`
}

// HandleRaid simulates a raid's loot against the current state.
// @Summary Raid Simulation
// @Description Project a batch of item additions and task completions without committing them.
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} RaidSummary
// @Router /progress/raid [post]
func (h *Handler) HandleRaid(c *fiber.Ctx) error {
	var body raidBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.Raid(c.Context(), body.Items, body.Tasks)
	if err != nil {
		return h.fail(c, "Raid simulation failed", err)
	}
	return c.JSON(summary)
}
