package progress

// UserState is the derived snapshot the derivation engine consumes. It is
// reconstructed by scanning all persisted records and is never the source
// of truth; mutations go through the mutation package and the snapshot is
// simply rebuilt afterwards.
type UserState struct {
	StationLevels   map[string]int `json:"stationLevels" toml:"stationLevels"`
	Inventory       map[string]int `json:"inventory" toml:"inventory"`
	FocusedUpgrades []string       `json:"focusedUpgrades" toml:"focusedUpgrades"`
	TraderLevels    map[string]int `json:"traderLevels" toml:"traderLevels"`
	CompletedQuests []string       `json:"completedQuests" toml:"completedQuests"`
	Watchlist       map[string]int `json:"watchlist,omitempty" toml:"watchlist,omitempty"`
	TaskWatchlist   []string       `json:"taskWatchlist,omitempty" toml:"taskWatchlist,omitempty"`
	PlayerLevel     int            `json:"playerLevel" toml:"playerLevel"`
}

// NewUserState returns an empty snapshot with every map allocated.
func NewUserState() UserState {
	return UserState{
		StationLevels:   map[string]int{},
		Inventory:       map[string]int{},
		FocusedUpgrades: []string{},
		TraderLevels:    map[string]int{},
		CompletedQuests: []string{},
		Watchlist:       map[string]int{},
		TaskWatchlist:   []string{},
		PlayerLevel:     1,
	}
}

// IsFocusedSet indexes the focused upgrade keys for constant-time lookups.
func (s UserState) IsFocusedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.FocusedUpgrades))
	for _, key := range s.FocusedUpgrades {
		set[key] = struct{}{}
	}
	return set
}
