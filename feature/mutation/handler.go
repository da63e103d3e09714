package mutation

import (
	"errors"

	"hideout-tracker/core/logger"
	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for user-state mutations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the mutation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	hideout := app.Group("/hideout")
	hideout.Put("/stations/:id/level", h.HandleSetStationLevel)
	hideout.Post("/upgrades/toggle-focus", h.HandleToggleFocus)
	hideout.Post("/upgrades/clear-focus", h.HandleClearFocus)
	hideout.Post("/upgrades/purchase", h.HandlePurchaseUpgrade)
	hideout.Post("/reset", h.HandleResetHideout)

	inventory := app.Group("/inventory")
	inventory.Put("/quantity", h.HandleSetQuantity)
	inventory.Post("/reset", h.HandleResetInventory)
	inventory.Put("/pins", h.HandleSetItemPin)
	inventory.Delete("/pins", h.HandleRemoveItemPin)

	tasks := app.Group("/tasks")
	tasks.Post("/:id/toggle", h.HandleToggleTask)
	tasks.Post("/complete", h.HandleCompleteTasks)
	tasks.Put("/:id/pins/:mapId", h.HandleSetTaskPin)
	tasks.Delete("/:id/pins/:mapId", h.HandleRemoveTaskPin)

	watchlist := app.Group("/watchlist")
	watchlist.Post("/items", h.HandleAddToWatchlist)
	watchlist.Put("/items", h.HandleSetWatchlistQuantity)
	watchlist.Delete("/items", h.HandleRemoveFromWatchlist)
	watchlist.Post("/tasks/:id", h.HandleWatchTask)
	watchlist.Delete("/tasks/:id", h.HandleUnwatchTask)

	general := app.Group("/general")
	general.Put("/traders/level", h.HandleSetTraderLevel)
	general.Put("/player/level", h.HandleSetPlayerLevel)
}

func (h *Handler) run(c *fiber.Ctx, op string, fn func() error) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := fn(); err != nil {
		if errors.Is(err, ErrUnknownItem) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Mutation failed", zap.String("operation", op), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

type levelBody struct {
	Level int `json:"level"`
}

type upgradeKeyBody struct {
	StationID string `json:"stationId"`
	Level     int    `json:"level"`
}

type quantityBody struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

type traderLevelBody struct {
	TraderName string `json:"traderName"`
	Level      int    `json:"level"`
}

type taskPinBody struct {
	ObjectiveID *string `json:"objectiveId,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

type itemPinBody struct {
	ItemName string  `json:"itemName"`
	MapID    string  `json:"mapId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// HandleSetStationLevel sets the purchased level of one station.
// @Summary Set Station Level
// @Tags hideout
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} map[string]string
// @Router /hideout/stations/{id}/level [put]
func (h *Handler) HandleSetStationLevel(c *fiber.Ctx) error {
	var body levelBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_station_level", func() error {
		return h.service.SetStationLevel(c.Context(), c.Params("id"), body.Level)
	})
}

// HandleToggleFocus flips the focus flag of one upgrade.
// @Summary Toggle Focused Upgrade
// @Tags hideout
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /hideout/upgrades/toggle-focus [post]
func (h *Handler) HandleToggleFocus(c *fiber.Ctx) error {
	var body upgradeKeyBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "toggle_focus", func() error {
		return h.service.ToggleFocusedUpgrade(c.Context(), body.StationID, body.Level)
	})
}

// HandleClearFocus clears every focus flag.
// @Summary Clear Focused Upgrades
// @Tags hideout
// @Produce json
// @Success 200 {object} map[string]string
// @Router /hideout/upgrades/clear-focus [post]
func (h *Handler) HandleClearFocus(c *fiber.Ctx) error {
	return h.run(c, "clear_focus", func() error {
		return h.service.ClearFocusedUpgrades(c.Context())
	})
}

// HandlePurchaseUpgrade applies an upgrade purchase: the station level
// write plus the item deductions.
// @Summary Purchase Upgrade
// @Tags hideout
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /hideout/upgrades/purchase [post]
func (h *Handler) HandlePurchaseUpgrade(c *fiber.Ctx) error {
	var upgrade catalog.StationLevel
	if err := c.BodyParser(&upgrade); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "purchase_upgrade", func() error {
		return h.service.PurchaseUpgrade(c.Context(), upgrade)
	})
}

// HandleResetHideout sets every station back to level zero.
// @Summary Reset Hideout Levels
// @Tags hideout
// @Produce json
// @Success 200 {object} map[string]string
// @Router /hideout/reset [post]
func (h *Handler) HandleResetHideout(c *fiber.Ctx) error {
	return h.run(c, "reset_hideout", func() error {
		return h.service.ResetHideoutLevels(c.Context())
	})
}

// HandleSetQuantity sets the owned quantity of one item.
// @Summary Set Inventory Quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /inventory/quantity [put]
func (h *Handler) HandleSetQuantity(c *fiber.Ctx) error {
	var body quantityBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_quantity", func() error {
		return h.service.SetInventoryQuantity(c.Context(), body.ItemName, body.Quantity)
	})
}

// HandleResetInventory zeroes every owned quantity.
// @Summary Reset Inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]string
// @Router /inventory/reset [post]
func (h *Handler) HandleResetInventory(c *fiber.Ctx) error {
	return h.run(c, "reset_inventory", func() error {
		return h.service.ResetInventory(c.Context())
	})
}

// HandleSetItemPin places an item's single pin on a map.
// @Summary Set Item Map Pin
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /inventory/pins [put]
func (h *Handler) HandleSetItemPin(c *fiber.Ctx) error {
	var body itemPinBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_item_pin", func() error {
		return h.service.UpdateItemMapPosition(c.Context(), body.ItemName, body.MapID, store.MapPoint{X: body.X, Y: body.Y})
	})
}

// HandleRemoveItemPin removes an item's pin from a map. The item and map
// are passed as query parameters because item names contain spaces.
// @Summary Remove Item Map Pin
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]string
// @Router /inventory/pins [delete]
func (h *Handler) HandleRemoveItemPin(c *fiber.Ctx) error {
	return h.run(c, "remove_item_pin", func() error {
		return h.service.RemoveItemMapPosition(c.Context(), c.Query("item"), c.Query("map"))
	})
}

// HandleToggleTask flips the completion flag of one task.
// @Summary Toggle Quest Completion
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]string
// @Router /tasks/{id}/toggle [post]
func (h *Handler) HandleToggleTask(c *fiber.Ctx) error {
	return h.run(c, "toggle_task", func() error {
		return h.service.ToggleQuestCompletion(c.Context(), c.Params("id"))
	})
}

// HandleCompleteTasks marks a batch of tasks completed, skipping unknown ids.
// @Summary Mark Quests As Completed
// @Tags tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /tasks/complete [post]
func (h *Handler) HandleCompleteTasks(c *fiber.Ctx) error {
	var body struct {
		TaskIDs []string `json:"taskIds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "complete_tasks", func() error {
		return h.service.MarkQuestsAsCompleted(c.Context(), body.TaskIDs)
	})
}

// HandleSetTaskPin upserts a pin for a task (or one objective) on a map.
// @Summary Set Task Map Pin
// @Tags tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /tasks/{id}/pins/{mapId} [put]
func (h *Handler) HandleSetTaskPin(c *fiber.Ctx) error {
	var body taskPinBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_task_pin", func() error {
		return h.service.UpdateTaskMapPosition(c.Context(), c.Params("id"), c.Params("mapId"), store.TaskMapPoint{
			ObjectiveID: body.ObjectiveID,
			X:           body.X,
			Y:           body.Y,
		})
	})
}

// HandleRemoveTaskPin removes a task pin from a map. An optional
// "objective" query parameter targets one objective's pin; without it the
// whole-task pin is removed.
// @Summary Remove Task Map Pin
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]string
// @Router /tasks/{id}/pins/{mapId} [delete]
func (h *Handler) HandleRemoveTaskPin(c *fiber.Ctx) error {
	var objectiveID *string
	if obj := c.Query("objective"); obj != "" {
		objectiveID = &obj
	}
	return h.run(c, "remove_task_pin", func() error {
		return h.service.RemoveTaskMapPosition(c.Context(), c.Params("id"), c.Params("mapId"), objectiveID)
	})
}

// HandleAddToWatchlist adds to an item's watchlist target (additive).
// @Summary Add Item To Watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Unknown item"
// @Router /watchlist/items [post]
func (h *Handler) HandleAddToWatchlist(c *fiber.Ctx) error {
	var body quantityBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "add_to_watchlist", func() error {
		return h.service.AddToWatchlist(c.Context(), body.ItemName, body.Quantity)
	})
}

// HandleSetWatchlistQuantity sets an item's absolute watchlist target.
// @Summary Set Watchlist Quantity
// @Tags watchlist
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /watchlist/items [put]
func (h *Handler) HandleSetWatchlistQuantity(c *fiber.Ctx) error {
	var body quantityBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_watchlist_quantity", func() error {
		return h.service.SetWatchlistQuantity(c.Context(), body.ItemName, body.Quantity)
	})
}

// HandleRemoveFromWatchlist clears an item's watchlist entry. The item is
// passed as a query parameter because item names contain spaces.
// @Summary Remove Item From Watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {object} map[string]string
// @Router /watchlist/items [delete]
func (h *Handler) HandleRemoveFromWatchlist(c *fiber.Ctx) error {
	return h.run(c, "remove_from_watchlist", func() error {
		return h.service.RemoveFromWatchlist(c.Context(), c.Query("item"))
	})
}

// HandleWatchTask pins a task onto the task watchlist.
// @Summary Watch Task
// @Tags watchlist
// @Produce json
// @Success 200 {object} map[string]string
// @Router /watchlist/tasks/{id} [post]
func (h *Handler) HandleWatchTask(c *fiber.Ctx) error {
	return h.run(c, "watch_task", func() error {
		return h.service.AddTaskToWatchlist(c.Context(), c.Params("id"))
	})
}

// HandleUnwatchTask removes a task from the task watchlist.
// @Summary Unwatch Task
// @Tags watchlist
// @Produce json
// @Success 200 {object} map[string]string
// @Router /watchlist/tasks/{id} [delete]
func (h *Handler) HandleUnwatchTask(c *fiber.Ctx) error {
	return h.run(c, "unwatch_task", func() error {
		return h.service.RemoveTaskFromWatchlist(c.Context(), c.Params("id"))
	})
}

// HandleSetTraderLevel updates a trader's loyalty level.
// @Summary Set Trader Level
// @Tags general
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /general/traders/level [put]
func (h *Handler) HandleSetTraderLevel(c *fiber.Ctx) error {
	var body traderLevelBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_trader_level", func() error {
		return h.service.SetTraderLevel(c.Context(), body.TraderName, body.Level)
	})
}

// HandleSetPlayerLevel updates the player level.
// @Summary Set Player Level
// @Tags general
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /general/player/level [put]
func (h *Handler) HandleSetPlayerLevel(c *fiber.Ctx) error {
	var body levelBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, "set_player_level", func() error {
		return h.service.SetPlayerLevel(c.Context(), body.Level)
	})
}
