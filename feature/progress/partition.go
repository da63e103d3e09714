package progress

import "hideout-tracker/feature/catalog"

// Partition splits the flat list of all station levels by purchase, focus
// and availability status. Focused and NonFocused partition Unpurchased:
// a locked-but-unpurchased upgrade still counts toward "will need".
type Partition struct {
	Unpurchased []catalog.StationLevel `json:"unpurchased"`
	Available   []catalog.StationLevel `json:"available"`
	Focused     []catalog.StationLevel `json:"focused"`
	NonFocused  []catalog.StationLevel `json:"nonFocused"`
}

// PartitionUpgrades classifies every upgrade tier against the user state.
func PartitionUpgrades(levels []catalog.StationLevel, state UserState) Partition {
	focused := state.IsFocusedSet()

	var p Partition
	for _, lv := range levels {
		if state.StationLevels[lv.StationID] >= lv.Level {
			continue // purchased
		}

		p.Unpurchased = append(p.Unpurchased, lv)

		if IsUpgradeAvailable(lv, state) {
			p.Available = append(p.Available, lv)
		}

		if _, ok := focused[UpgradeKey(lv.StationID, lv.Level)]; ok {
			p.Focused = append(p.Focused, lv)
		} else {
			p.NonFocused = append(p.NonFocused, lv)
		}
	}
	return p
}
