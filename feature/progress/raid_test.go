package progress

import (
	"testing"

	"hideout-tracker/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRaidSummaryEmptyInput(t *testing.T) {
	state := NewUserState()
	summary := CalculateRaidSummary(nil, nil, state, fixtureLevels(), nil)
	assert.Empty(t, summary.Upgrades)
	assert.Empty(t, summary.Watchlist)
	assert.Empty(t, summary.CompletedTasks)
}

func TestCalculateRaidSummaryUpgradeImpacts(t *testing.T) {
	state := NewUserState()
	state.StationLevels["generator"] = 1
	state.Inventory["Duct Tape"] = 1
	state.Watchlist["Duct Tape"] = 4

	summary := CalculateRaidSummary(
		map[string]int{"Duct Tape": 2},
		nil,
		state,
		fixtureLevels(),
		nil,
	)

	// generator-2 and water-collector-1 both need Duct Tape; generator-1 is
	// already purchased and never appears.
	require.Len(t, summary.Upgrades, 2)
	assert.Equal(t, UpgradeKey("generator", 2), summary.Upgrades[0].UpgradeKey)
	assert.Equal(t, UpgradeKey("water-collector", 1), summary.Upgrades[1].UpgradeKey)

	for _, impact := range summary.Upgrades {
		assert.Equal(t, 1, impact.Before)
		assert.Equal(t, 3, impact.After)
	}

	// water-collector-1 still misses its trader gate.
	assert.False(t, summary.Upgrades[0].Locked)
	assert.True(t, summary.Upgrades[1].Locked)

	require.Len(t, summary.Watchlist, 1)
	assert.Equal(t, 4, summary.Watchlist[0].Target)
	assert.Equal(t, 1, summary.Watchlist[0].Before)
	assert.Equal(t, 3, summary.Watchlist[0].After)
}

func TestCalculateRaidSummaryTaskNames(t *testing.T) {
	state := NewUserState()
	tasks := []catalog.Task{{ID: "q1", Name: "Debut"}}

	summary := CalculateRaidSummary(nil, []string{"q1", "unknown-id"}, state, nil, tasks)

	// Known ids resolve to names, unknown ids pass through; output sorted.
	assert.Equal(t, []string{"Debut", "unknown-id"}, summary.CompletedTasks)
}
