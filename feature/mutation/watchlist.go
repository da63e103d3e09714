package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// AddToWatchlist flags an item as watchlisted and adds qty to its target
// quantity. Returns ErrUnknownItem when the catalog has never provided the
// item; the caller is expected to surface this to the user.
func (s *Service) AddToWatchlist(ctx context.Context, itemName string, qty int) error {
	rec, err := s.store.FindItemByName(ctx, itemName)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemName)
	}

	return s.store.UpdateItem(ctx, rec.ID, map[string]any{
		"is_watchlisted":  true,
		"quantity_needed": rec.QuantityNeeded + qty,
	})
}

// SetWatchlistQuantity sets the absolute watchlist target for an item.
// A target of zero or less clears the watchlist flag entirely. No-op when
// the item is unknown.
func (s *Service) SetWatchlistQuantity(ctx context.Context, itemName string, qty int) error {
	rec, err := s.store.FindItemByName(ctx, itemName)
	if err != nil {
		return err
	}
	if rec == nil {
		s.logger.Warn("Watchlist quantity set for unknown item", zap.String("item", itemName))
		return nil
	}

	if qty <= 0 {
		return s.store.UpdateItem(ctx, rec.ID, map[string]any{
			"is_watchlisted":  false,
			"quantity_needed": 0,
		})
	}

	return s.store.UpdateItem(ctx, rec.ID, map[string]any{
		"is_watchlisted":  true,
		"quantity_needed": qty,
	})
}

// RemoveFromWatchlist clears the watchlist flag and target for an item.
// No-op when the item is unknown.
func (s *Service) RemoveFromWatchlist(ctx context.Context, itemName string) error {
	return s.SetWatchlistQuantity(ctx, itemName, 0)
}

// AddTaskToWatchlist pins a task onto the task watchlist. No-op when the
// task is unknown.
func (s *Service) AddTaskToWatchlist(ctx context.Context, taskID string) error {
	return s.setTaskWatchlisted(ctx, taskID, true)
}

// RemoveTaskFromWatchlist removes a task from the task watchlist. No-op
// when the task is unknown.
func (s *Service) RemoveTaskFromWatchlist(ctx context.Context, taskID string) error {
	return s.setTaskWatchlisted(ctx, taskID, false)
}

func (s *Service) setTaskWatchlisted(ctx context.Context, taskID string, watchlisted bool) error {
	rec, err := s.store.GetTask(ctx, taskID)
	if err != nil || rec == nil {
		return err
	}
	return s.store.UpdateTask(ctx, taskID, map[string]any{"is_watchlisted": watchlisted})
}
