package legacy

import (
	"context"

	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"

	"go.uber.org/zap"
)

// applyState replays a portable user state through the mutation operations.
// Every operation is an absolute set, so replaying the same state twice
// is harmless; unknown ids degrade to warnings inside the mutation layer.
func applyState(ctx context.Context, state progress.UserState, muts *mutation.Service, logger *zap.Logger) error {
	for stationID, level := range state.StationLevels {
		if err := muts.SetStationLevel(ctx, stationID, level); err != nil {
			return err
		}
	}

	for itemName, qty := range state.Inventory {
		if err := muts.SetInventoryQuantity(ctx, itemName, qty); err != nil {
			return err
		}
	}

	for _, key := range state.FocusedUpgrades {
		stationID, level, err := progress.ParseUpgradeKey(key)
		if err != nil {
			logger.Warn("Skipping malformed focused upgrade key", zap.String("key", key))
			continue
		}
		if err := muts.SetFocusedUpgrade(ctx, stationID, level, true); err != nil {
			return err
		}
	}

	for traderName, level := range state.TraderLevels {
		if err := muts.SetTraderLevel(ctx, traderName, level); err != nil {
			return err
		}
	}

	if state.PlayerLevel > 0 {
		if err := muts.SetPlayerLevel(ctx, state.PlayerLevel); err != nil {
			return err
		}
	}

	if err := muts.MarkQuestsAsCompleted(ctx, state.CompletedQuests); err != nil {
		return err
	}

	for itemName, qty := range state.Watchlist {
		if err := muts.SetWatchlistQuantity(ctx, itemName, qty); err != nil {
			return err
		}
	}

	for _, taskID := range state.TaskWatchlist {
		if err := muts.AddTaskToWatchlist(ctx, taskID); err != nil {
			return err
		}
	}

	return nil
}
