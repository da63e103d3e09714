package progress

import (
	"testing"

	"hideout-tracker/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureLevels models a small hideout: a generator with two tiers and a
// water collector whose first tier is gated on generator 1 and a trader.
func fixtureLevels() []catalog.StationLevel {
	return []catalog.StationLevel{
		{
			StationID: "generator", StationName: "Generator", Level: 1,
			ItemRequirements: []catalog.ItemRequirement{{ItemName: "Nails", Count: 10}},
		},
		{
			StationID: "generator", StationName: "Generator", Level: 2,
			ItemRequirements: []catalog.ItemRequirement{{ItemName: "Nails", Count: 5}, {ItemName: "Duct Tape", Count: 2}},
		},
		{
			StationID: "water-collector", StationName: "Water Collector", Level: 1,
			ItemRequirements:    []catalog.ItemRequirement{{ItemName: "Duct Tape", Count: 3}},
			StationRequirements: []catalog.StationRequirement{{StationID: "generator", StationName: "Generator", Level: 1}},
			TraderRequirements:  []catalog.TraderRequirement{{TraderName: "Therapist", Level: 2}},
		},
	}
}

func TestPartitionUpgrades(t *testing.T) {
	state := NewUserState()
	state.StationLevels["generator"] = 1
	state.FocusedUpgrades = []string{UpgradeKey("generator", 2)}
	state.TraderLevels["Therapist"] = 2

	p := PartitionUpgrades(fixtureLevels(), state)

	// generator-1 is purchased; the other two remain.
	require.Len(t, p.Unpurchased, 2)

	// Focused and non-focused partition the unpurchased set exactly.
	assert.Len(t, p.Focused, 1)
	assert.Len(t, p.NonFocused, 1)
	assert.Equal(t, len(p.Unpurchased), len(p.Focused)+len(p.NonFocused))

	// Both gates of water-collector-1 are met, so both tiers are available.
	assert.Len(t, p.Available, 2)
}

func TestUnmetRequirements(t *testing.T) {
	state := NewUserState()
	state.TraderLevels["Therapist"] = 1

	waterCollector := fixtureLevels()[2]
	stations, traders := UnmetRequirements(waterCollector, state)

	require.Len(t, stations, 1)
	assert.Equal(t, "generator", stations[0].Requirement.StationID)
	assert.Equal(t, 0, stations[0].CurrentLevel)

	require.Len(t, traders, 1)
	assert.Equal(t, "Therapist", traders[0].Requirement.TraderName)
	assert.Equal(t, 1, traders[0].CurrentLevel)

	assert.False(t, IsUpgradeAvailable(waterCollector, state))

	// Item requirements never lock an upgrade.
	state.StationLevels["generator"] = 1
	state.TraderLevels["Therapist"] = 2
	assert.True(t, IsUpgradeAvailable(waterCollector, state))
}

func TestUpgradeGatedOnDashedStationID(t *testing.T) {
	upgrade := catalog.StationLevel{
		StationID: "hydro", StationName: "Hydroponics", Level: 2,
		ItemRequirements:    []catalog.ItemRequirement{{ItemName: "Metal Fuel Tank", Count: 2}},
		StationRequirements: []catalog.StationRequirement{{StationID: "security-150", StationName: "Security", Level: 1}},
	}

	state := NewUserState()
	assert.False(t, IsUpgradeAvailable(upgrade, state))

	stations, _ := UnmetRequirements(upgrade, state)
	require.Len(t, stations, 1)
	assert.Equal(t, "security-150", stations[0].Requirement.StationID)
	assert.Equal(t, 0, stations[0].CurrentLevel)
}

func TestCalculateItemSummaryAdditivity(t *testing.T) {
	state := NewUserState()
	state.FocusedUpgrades = []string{UpgradeKey("generator", 1)}
	state.Inventory["Nails"] = 4

	summaries := CalculateItemSummary(fixtureLevels(), state)
	require.Len(t, summaries, 2)

	byName := map[string]ItemSummary{}
	for _, s := range summaries {
		byName[s.ItemName] = s
		assert.Equal(t, s.TotalRequired, s.RequiredNow+s.WillNeed, s.ItemName)
		assert.GreaterOrEqual(t, s.Remaining, 0, s.ItemName)
	}

	nails := byName["Nails"]
	assert.Equal(t, 10, nails.RequiredNow)
	assert.Equal(t, 5, nails.WillNeed)
	assert.Equal(t, 15, nails.TotalRequired)
	assert.Equal(t, 4, nails.Owned)
	assert.Equal(t, 6, nails.Remaining)

	tape := byName["Duct Tape"]
	assert.Equal(t, 0, tape.RequiredNow)
	assert.Equal(t, 5, tape.WillNeed)
	assert.Equal(t, 0, tape.Remaining)

	// Nails has the larger deficit and sorts first.
	assert.Equal(t, "Nails", summaries[0].ItemName)
}

func TestCalculateItemSummarySkipsPurchased(t *testing.T) {
	state := NewUserState()
	state.StationLevels["generator"] = 2
	state.TraderLevels["Therapist"] = 2

	summaries := CalculateItemSummary(fixtureLevels(), state)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Duct Tape", summaries[0].ItemName)
	assert.Equal(t, 3, summaries[0].WillNeed)
}

func TestDisplayStatus(t *testing.T) {
	cases := []struct {
		name string
		s    ItemSummary
		want string
	}{
		{"focused deficit", ItemSummary{RequiredNow: 3, WillNeed: 2, TotalRequired: 5, Owned: 1}, "2"},
		{"focused met but not total", ItemSummary{RequiredNow: 3, WillNeed: 2, TotalRequired: 5, Owned: 4}, "Complete"},
		{"over total while focused", ItemSummary{RequiredNow: 3, WillNeed: 2, TotalRequired: 5, Owned: 6}, "+1 over"},
		{"future only deficit", ItemSummary{WillNeed: 4, TotalRequired: 4, Owned: 1}, "3"},
		{"future only met", ItemSummary{WillNeed: 4, TotalRequired: 4, Owned: 4}, "Complete"},
		{"future only over", ItemSummary{WillNeed: 4, TotalRequired: 4, Owned: 9}, "+5 over"},
		{"not needed", ItemSummary{Owned: 12}, "-"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DisplayStatus(tc.s))
		})
	}
}

func TestSortSummaries(t *testing.T) {
	summaries := []ItemSummary{
		{ItemName: "Bolts", Owned: 2, Remaining: 1},
		{ItemName: "Nails", Owned: 7, Remaining: 5},
		{ItemName: "Duct Tape", Owned: 2, Remaining: 3},
	}

	SortSummaries(summaries, SortByOwned, false)
	// Ties on owned fall back to name.
	assert.Equal(t, []string{"Bolts", "Duct Tape", "Nails"}, names(summaries))

	SortSummaries(summaries, SortByOwned, true)
	assert.Equal(t, "Nails", summaries[0].ItemName)

	SortSummaries(summaries, SortByItemName, false)
	assert.Equal(t, []string{"Bolts", "Duct Tape", "Nails"}, names(summaries))

	SortSummaries(summaries, SortByRemaining, false)
	assert.Equal(t, []string{"Bolts", "Duct Tape", "Nails"}, names(summaries))
}

func names(summaries []ItemSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ItemName)
	}
	return out
}

func TestParseSortField(t *testing.T) {
	assert.Equal(t, SortByOwned, ParseSortField("owned"))
	assert.Equal(t, SortByRemaining, ParseSortField(""))
	assert.Equal(t, SortByRemaining, ParseSortField("bogus"))
}
