package progress

import (
	"fmt"
	"sort"
	"strconv"

	"hideout-tracker/feature/catalog"
)

// ItemSummary aggregates one item's requirements across all unpurchased
// upgrades. RequiredNow counts focused upgrades, WillNeed counts the rest;
// by construction RequiredNow + WillNeed == TotalRequired.
type ItemSummary struct {
	ItemName      string `json:"itemName"`
	RequiredNow   int    `json:"requiredNow"`
	WillNeed      int    `json:"willNeed"`
	TotalRequired int    `json:"totalRequired"`
	Owned         int    `json:"owned"`
	Remaining     int    `json:"remaining"`
}

// CalculateItemSummary aggregates the item requirements of every
// unpurchased upgrade into per-item summaries, sorted by remaining
// descending with ties broken by requiredNow descending, surfacing the most
// urgently blocking items first.
func CalculateItemSummary(levels []catalog.StationLevel, state UserState) []ItemSummary {
	p := PartitionUpgrades(levels, state)

	byName := map[string]*ItemSummary{}
	get := func(name string) *ItemSummary {
		s, ok := byName[name]
		if !ok {
			s = &ItemSummary{ItemName: name}
			byName[name] = s
		}
		return s
	}

	for _, lv := range p.Focused {
		for _, req := range lv.ItemRequirements {
			get(req.ItemName).RequiredNow += req.Count
		}
	}
	for _, lv := range p.NonFocused {
		for _, req := range lv.ItemRequirements {
			get(req.ItemName).WillNeed += req.Count
		}
	}

	summaries := make([]ItemSummary, 0, len(byName))
	for _, s := range byName {
		s.TotalRequired = s.RequiredNow + s.WillNeed
		s.Owned = state.Inventory[s.ItemName]
		s.Remaining = s.RequiredNow - s.Owned
		if s.Remaining < 0 {
			s.Remaining = 0
		}
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Remaining != summaries[j].Remaining {
			return summaries[i].Remaining > summaries[j].Remaining
		}
		if summaries[i].RequiredNow != summaries[j].RequiredNow {
			return summaries[i].RequiredNow > summaries[j].RequiredNow
		}
		return summaries[i].ItemName < summaries[j].ItemName
	})

	return summaries
}

// DisplayStatus renders the shopping status of one summary row. A focused
// item (RequiredNow > 0) is measured against its focused need first; an
// item only needed later is measured against its total; items nothing needs
// show a neutral dash.
func DisplayStatus(s ItemSummary) string {
	if s.RequiredNow > 0 {
		switch {
		case s.Owned > s.TotalRequired:
			return fmt.Sprintf("+%d over", s.Owned-s.TotalRequired)
		case s.Owned >= s.RequiredNow:
			return "Complete"
		default:
			return strconv.Itoa(s.RequiredNow - s.Owned)
		}
	}

	if s.TotalRequired > 0 {
		switch {
		case s.Owned > s.TotalRequired:
			return fmt.Sprintf("+%d over", s.Owned-s.TotalRequired)
		case s.Owned >= s.TotalRequired:
			return "Complete"
		default:
			return strconv.Itoa(s.TotalRequired - s.Owned)
		}
	}

	return "-"
}
