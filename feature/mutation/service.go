package mutation

import (
	"context"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"go.uber.org/zap"
)

// Service applies user-state mutations to the store.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a mutation service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// SetStationLevel sets the user's purchased level for a station. There is
// no bounds check against the station's max level; that is the caller's
// responsibility. No-op when the station is unknown.
func (s *Service) SetStationLevel(ctx context.Context, stationID string, level int) error {
	rec, err := s.store.GetStation(ctx, stationID)
	if err != nil {
		return err
	}
	if rec == nil {
		s.logger.Warn("Station level set for unknown station", zap.String("station_id", stationID))
		return nil
	}
	return s.store.UpdateStation(ctx, stationID, map[string]any{"current_level": level})
}

// SetInventoryQuantity sets the owned quantity for an item by catalog name.
// Negative input is clamped to zero. No-op when the item is unknown.
func (s *Service) SetInventoryQuantity(ctx context.Context, itemName string, quantity int) error {
	rec, err := s.store.FindItemByName(ctx, itemName)
	if err != nil {
		return err
	}
	if rec == nil {
		s.logger.Warn("Quantity set for unknown item", zap.String("item", itemName))
		return nil
	}
	if quantity < 0 {
		quantity = 0
	}
	return s.store.UpdateItem(ctx, rec.ID, map[string]any{"quantity_owned": quantity})
}

// ToggleFocusedUpgrade flips the focus flag of one station level. No-op
// when the station or the level is not found.
func (s *Service) ToggleFocusedUpgrade(ctx context.Context, stationID string, level int) error {
	rec, err := s.store.GetStation(ctx, stationID)
	if err != nil || rec == nil {
		return err
	}

	found := false
	for i := range rec.Levels {
		if rec.Levels[i].Level == level {
			rec.Levels[i].IsFocused = !rec.Levels[i].IsFocused
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return s.store.UpdateStation(ctx, stationID, map[string]any{"levels": rec.Levels})
}

// SetFocusedUpgrade sets the focus flag of one station level to an absolute
// value, so applying the same state twice converges instead of flipping.
// No-op when the station or the level is not found.
func (s *Service) SetFocusedUpgrade(ctx context.Context, stationID string, level int, focused bool) error {
	rec, err := s.store.GetStation(ctx, stationID)
	if err != nil || rec == nil {
		return err
	}

	changed := false
	for i := range rec.Levels {
		if rec.Levels[i].Level == level && rec.Levels[i].IsFocused != focused {
			rec.Levels[i].IsFocused = focused
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	return s.store.UpdateStation(ctx, stationID, map[string]any{"levels": rec.Levels})
}

// ClearFocusedUpgrades removes the focus flag from every level of every station.
func (s *Service) ClearFocusedUpgrades(ctx context.Context) error {
	stations, err := s.store.ListStations(ctx)
	if err != nil {
		return err
	}

	for _, rec := range stations {
		changed := false
		for i := range rec.Levels {
			if rec.Levels[i].IsFocused {
				rec.Levels[i].IsFocused = false
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.store.UpdateStation(ctx, rec.ID, map[string]any{"levels": rec.Levels}); err != nil {
			return err
		}
	}
	return nil
}

// ResetInventory zeroes the owned quantity of every item. Watchlist targets
// are not touched.
func (s *Service) ResetInventory(ctx context.Context) error {
	return s.store.UpdateAllItems(ctx, map[string]any{"quantity_owned": 0})
}

// ResetHideoutLevels sets every station back to level zero.
func (s *Service) ResetHideoutLevels(ctx context.Context) error {
	return s.store.UpdateAllStations(ctx, map[string]any{"current_level": 0})
}

// SetTraderLevel updates one trader's loyalty level on the general
// singleton. No-op when the trader is not present there.
func (s *Service) SetTraderLevel(ctx context.Context, traderName string, level int) error {
	general, err := s.store.GetGeneral(ctx)
	if err != nil || general == nil {
		return err
	}

	found := false
	for i := range general.Traders {
		if general.Traders[i].Name == traderName {
			general.Traders[i].Level = level
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn("Level set for unknown trader", zap.String("trader", traderName))
		return nil
	}

	return s.store.UpdateGeneral(ctx, map[string]any{"traders": general.Traders})
}

// SetPlayerLevel updates the player level on the general singleton.
func (s *Service) SetPlayerLevel(ctx context.Context, level int) error {
	return s.store.UpdateGeneral(ctx, map[string]any{"player_level": level})
}

// PurchaseUpgrade sets the station to the upgrade's level and deducts each
// item requirement from the owned quantities, clamping at zero. A failure
// on one item does not block the others.
func (s *Service) PurchaseUpgrade(ctx context.Context, upgrade catalog.StationLevel) error {
	if err := s.SetStationLevel(ctx, upgrade.StationID, upgrade.Level); err != nil {
		return err
	}

	for _, req := range upgrade.ItemRequirements {
		rec, err := s.store.FindItemByName(ctx, req.ItemName)
		if err != nil {
			s.logger.Warn("Purchase deduction lookup failed",
				zap.String("item", req.ItemName),
				zap.Error(err))
			continue
		}
		if rec == nil {
			continue
		}

		remaining := rec.QuantityOwned - req.Count
		if remaining < 0 {
			remaining = 0
		}
		if err := s.store.UpdateItem(ctx, rec.ID, map[string]any{"quantity_owned": remaining}); err != nil {
			s.logger.Warn("Purchase deduction failed",
				zap.String("item", req.ItemName),
				zap.Error(err))
		}
	}

	return nil
}

// ToggleQuestCompletion flips the completion flag of one task. No-op when
// the task is unknown.
func (s *Service) ToggleQuestCompletion(ctx context.Context, taskID string) error {
	rec, err := s.store.GetTask(ctx, taskID)
	if err != nil || rec == nil {
		return err
	}
	return s.store.UpdateTask(ctx, taskID, map[string]any{"is_completed": !rec.IsCompleted})
}

// MarkQuestsAsCompleted sets the completion flag for each id, skipping
// unknown ids. Bulk variant, not a toggle.
func (s *Service) MarkQuestsAsCompleted(ctx context.Context, taskIDs []string) error {
	for _, id := range taskIDs {
		rec, err := s.store.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			s.logger.Warn("Completion set for unknown task", zap.String("task_id", id))
			continue
		}
		if err := s.store.UpdateTask(ctx, id, map[string]any{"is_completed": true}); err != nil {
			return err
		}
	}
	return nil
}
