package mutation

import (
	"context"

	"hideout-tracker/feature/store"
)

// UpdateTaskMapPosition upserts a pin into the task's positions for one
// map, keyed by objective id (a nil objective id is its own key: the
// "whole task" pin). Coordinates are expected in [0,100] percentage space
// and are not clamped here. No-op when the task is unknown.
func (s *Service) UpdateTaskMapPosition(ctx context.Context, taskID, mapID string, pin store.TaskMapPoint) error {
	rec, err := s.store.GetTask(ctx, taskID)
	if err != nil || rec == nil {
		return err
	}

	positions := rec.MapPositions
	if positions == nil {
		positions = map[string][]store.TaskMapPoint{}
	}

	pins := positions[mapID]
	replaced := false
	for i := range pins {
		if sameObjective(pins[i].ObjectiveID, pin.ObjectiveID) {
			pins[i] = pin
			replaced = true
			break
		}
	}
	if !replaced {
		pins = append(pins, pin)
	}
	positions[mapID] = pins

	return s.store.UpdateTask(ctx, taskID, map[string]any{"map_positions": positions})
}

// RemoveTaskMapPosition removes the matching pins from one map. With a nil
// objectiveID filter the whole-task pin is removed; the map key is deleted
// entirely once no pins remain. No-op when the task is unknown.
func (s *Service) RemoveTaskMapPosition(ctx context.Context, taskID, mapID string, objectiveID *string) error {
	rec, err := s.store.GetTask(ctx, taskID)
	if err != nil || rec == nil {
		return err
	}

	pins, ok := rec.MapPositions[mapID]
	if !ok {
		return nil
	}

	kept := pins[:0]
	for _, p := range pins {
		if !sameObjective(p.ObjectiveID, objectiveID) {
			kept = append(kept, p)
		}
	}

	positions := rec.MapPositions
	if len(kept) == 0 {
		delete(positions, mapID)
	} else {
		positions[mapID] = kept
	}

	return s.store.UpdateTask(ctx, taskID, map[string]any{"map_positions": positions})
}

// UpdateItemMapPosition upserts the single pin an item may have on one map.
// No-op when the item is unknown.
func (s *Service) UpdateItemMapPosition(ctx context.Context, itemName, mapID string, point store.MapPoint) error {
	rec, err := s.store.FindItemByName(ctx, itemName)
	if err != nil || rec == nil {
		return err
	}

	positions := rec.MapPositions
	if positions == nil {
		positions = map[string]store.MapPoint{}
	}
	positions[mapID] = point

	return s.store.UpdateItem(ctx, rec.ID, map[string]any{"map_positions": positions})
}

// RemoveItemMapPosition removes an item's pin from one map. No-op when the
// item is unknown or has no pin there.
func (s *Service) RemoveItemMapPosition(ctx context.Context, itemName, mapID string) error {
	rec, err := s.store.FindItemByName(ctx, itemName)
	if err != nil || rec == nil {
		return err
	}

	if _, ok := rec.MapPositions[mapID]; !ok {
		return nil
	}

	positions := rec.MapPositions
	delete(positions, mapID)

	return s.store.UpdateItem(ctx, rec.ID, map[string]any{"map_positions": positions})
}

// sameObjective reports whether two objective-id keys match; two nils match
// each other (the whole-task pin slot).
func sameObjective(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
