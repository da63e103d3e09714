package progress

import (
	"sort"

	"hideout-tracker/feature/catalog"
)

// UpgradeImpact is the effect of a raid's item deltas on one item
// requirement of one unpurchased upgrade.
type UpgradeImpact struct {
	UpgradeKey  string `json:"upgradeKey"`
	StationName string `json:"stationName"`
	Level       int    `json:"level"`
	ItemName    string `json:"itemName"`
	Required    int    `json:"required"`
	Before      int    `json:"before"`
	After       int    `json:"after"`
	Locked      bool   `json:"locked"`
}

// WatchlistImpact is the effect of a raid's item deltas on one watchlist
// target.
type WatchlistImpact struct {
	ItemName string `json:"itemName"`
	Target   int    `json:"target"`
	Before   int    `json:"before"`
	After    int    `json:"after"`
}

// RaidSummary projects what a proposed batch of item additions and task
// completions would accomplish, without committing anything.
type RaidSummary struct {
	Upgrades       []UpgradeImpact   `json:"upgrades"`
	Watchlist      []WatchlistImpact `json:"watchlist"`
	CompletedTasks []string          `json:"completedTasks"`
}

// CalculateRaidSummary simulates applying itemDeltas (quantity additions by
// item name) and taskCompletions (task ids) against the current state. It
// is a pure projection: for every unpurchased upgrade touched by a delta
// item it reports the before/after owned count against that requirement and
// whether the upgrade is still locked; for every delta item with a nonzero
// watchlist target it reports target progress; completed task ids are
// resolved to names where the catalog knows them.
func CalculateRaidSummary(itemDeltas map[string]int, taskCompletions []string, state UserState, levels []catalog.StationLevel, tasks []catalog.Task) RaidSummary {
	summary := RaidSummary{
		Upgrades:       []UpgradeImpact{},
		Watchlist:      []WatchlistImpact{},
		CompletedTasks: []string{},
	}
	if len(itemDeltas) == 0 && len(taskCompletions) == 0 {
		return summary
	}

	for _, lv := range levels {
		if state.StationLevels[lv.StationID] >= lv.Level {
			continue
		}

		locked := !IsUpgradeAvailable(lv, state)
		for _, req := range lv.ItemRequirements {
			delta, ok := itemDeltas[req.ItemName]
			if !ok {
				continue
			}
			before := state.Inventory[req.ItemName]
			summary.Upgrades = append(summary.Upgrades, UpgradeImpact{
				UpgradeKey:  UpgradeKey(lv.StationID, lv.Level),
				StationName: lv.StationName,
				Level:       lv.Level,
				ItemName:    req.ItemName,
				Required:    req.Count,
				Before:      before,
				After:       before + delta,
				Locked:      locked,
			})
		}
	}

	for name, delta := range itemDeltas {
		target := state.Watchlist[name]
		if target == 0 {
			continue
		}
		before := state.Inventory[name]
		summary.Watchlist = append(summary.Watchlist, WatchlistImpact{
			ItemName: name,
			Target:   target,
			Before:   before,
			After:    before + delta,
		})
	}

	names := map[string]string{}
	for _, t := range tasks {
		names[t.ID] = t.Name
	}
	for _, id := range taskCompletions {
		if name, ok := names[id]; ok {
			summary.CompletedTasks = append(summary.CompletedTasks, name)
		} else {
			summary.CompletedTasks = append(summary.CompletedTasks, id)
		}
	}

	// Deterministic output regardless of map iteration order
	sort.Slice(summary.Upgrades, func(i, j int) bool {
		if summary.Upgrades[i].UpgradeKey != summary.Upgrades[j].UpgradeKey {
			return summary.Upgrades[i].UpgradeKey < summary.Upgrades[j].UpgradeKey
		}
		return summary.Upgrades[i].ItemName < summary.Upgrades[j].ItemName
	})
	sort.Slice(summary.Watchlist, func(i, j int) bool {
		return summary.Watchlist[i].ItemName < summary.Watchlist[j].ItemName
	})
	sort.Strings(summary.CompletedTasks)

	return summary
}
