package progress

import "hideout-tracker/feature/catalog"

// UnmetStationRequirement pairs a station requirement with the user's
// current level of that station, for display.
type UnmetStationRequirement struct {
	Requirement  catalog.StationRequirement `json:"requirement"`
	CurrentLevel int                        `json:"currentLevel"`
}

// UnmetTraderRequirement pairs a trader requirement with the user's current
// loyalty level, for display.
type UnmetTraderRequirement struct {
	Requirement  catalog.TraderRequirement `json:"requirement"`
	CurrentLevel int                       `json:"currentLevel"`
}

// UnmetRequirements returns the station and trader requirements of an
// upgrade the user has not met yet. Item requirements never lock an
// upgrade; they only feed the shopping summary.
func UnmetRequirements(upgrade catalog.StationLevel, state UserState) ([]UnmetStationRequirement, []UnmetTraderRequirement) {
	var stations []UnmetStationRequirement
	for _, req := range upgrade.StationRequirements {
		current := state.StationLevels[req.StationID]
		if current < req.Level {
			stations = append(stations, UnmetStationRequirement{Requirement: req, CurrentLevel: current})
		}
	}

	var traders []UnmetTraderRequirement
	for _, req := range upgrade.TraderRequirements {
		current := state.TraderLevels[req.TraderName]
		if current < req.Level {
			traders = append(traders, UnmetTraderRequirement{Requirement: req, CurrentLevel: current})
		}
	}

	return stations, traders
}

// IsUpgradeAvailable reports whether every station and trader requirement
// of the upgrade is met.
func IsUpgradeAvailable(upgrade catalog.StationLevel, state UserState) bool {
	stations, traders := UnmetRequirements(upgrade, state)
	return len(stations) == 0 && len(traders) == 0
}
