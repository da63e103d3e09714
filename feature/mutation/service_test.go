package mutation

import (
	"context"
	"path/filepath"
	"testing"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// seedStore builds a store with one two-tier station, two items, one task
// and one known trader.
func seedStore(t *testing.T) (*store.Store, *Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	require.NoError(t, err)

	st, err := store.Open(db, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.CreateStation(ctx, &store.StationRecord{
		ID:   "generator",
		Name: "Generator",
		Levels: []store.StationLevel{
			{StationLevel: catalog.StationLevel{StationID: "generator", Level: 1, ItemRequirements: []catalog.ItemRequirement{
				{ItemName: "Nails", Count: 10},
				{ItemName: "Duct Tape", Count: 2},
			}}},
			{StationLevel: catalog.StationLevel{StationID: "generator", Level: 2}},
		},
	}))
	require.NoError(t, st.CreateItem(ctx, &store.InventoryRecord{ID: "i1", Name: "Nails", QuantityOwned: 7}))
	require.NoError(t, st.CreateItem(ctx, &store.InventoryRecord{ID: "i2", Name: "Duct Tape", QuantityOwned: 5}))
	require.NoError(t, st.CreateTask(ctx, &store.TaskRecord{ID: "q1", Name: "Debut"}))
	require.NoError(t, st.UpdateGeneral(ctx, map[string]any{
		"traders": []store.TraderState{{Trader: catalog.Trader{ID: "t1", Name: "Prapor"}, Level: 1}},
	}))

	return st, NewService(st, zap.NewNop())
}

func TestSetStationLevel(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetStationLevel(ctx, "generator", 2))

	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CurrentLevel)

	// Unknown station degrades to a no-op.
	require.NoError(t, svc.SetStationLevel(ctx, "nope", 1))
}

func TestSetInventoryQuantityClampsNegative(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetInventoryQuantity(ctx, "Nails", -3))

	rec, err := st.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.QuantityOwned)

	require.NoError(t, svc.SetInventoryQuantity(ctx, "No Such Item", 5))
}

func TestToggleFocusedUpgradeIsInvolution(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.ToggleFocusedUpgrade(ctx, "generator", 1))
	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.True(t, rec.Levels[0].IsFocused)

	require.NoError(t, svc.ToggleFocusedUpgrade(ctx, "generator", 1))
	rec, err = st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.False(t, rec.Levels[0].IsFocused)

	// Unknown level is a no-op rather than an error.
	require.NoError(t, svc.ToggleFocusedUpgrade(ctx, "generator", 9))
}

func TestSetFocusedUpgradeConverges(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetFocusedUpgrade(ctx, "generator", 1, true))
	require.NoError(t, svc.SetFocusedUpgrade(ctx, "generator", 1, true))

	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.True(t, rec.Levels[0].IsFocused)
}

func TestClearFocusedUpgrades(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetFocusedUpgrade(ctx, "generator", 1, true))
	require.NoError(t, svc.SetFocusedUpgrade(ctx, "generator", 2, true))
	require.NoError(t, svc.ClearFocusedUpgrades(ctx))

	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	for _, lv := range rec.Levels {
		assert.False(t, lv.IsFocused)
	}
}

func TestPurchaseUpgradeDeductsAndClamps(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	upgrade := rec.Levels[0].StationLevel

	require.NoError(t, svc.PurchaseUpgrade(ctx, upgrade))

	rec, err = st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentLevel)

	// 7 owned - 10 required clamps to 0; 5 - 2 leaves 3.
	nails, err := st.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, 0, nails.QuantityOwned)

	tape, err := st.GetItem(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, 3, tape.QuantityOwned)
}

func TestResetInventoryKeepsWatchlist(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToWatchlist(ctx, "Nails", 20))
	require.NoError(t, svc.ResetInventory(ctx))

	rec, err := st.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.QuantityOwned)
	assert.True(t, rec.IsWatchlisted)
	assert.Equal(t, 20, rec.QuantityNeeded)
}

func TestResetHideoutLevels(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetStationLevel(ctx, "generator", 2))
	require.NoError(t, svc.ResetHideoutLevels(ctx))

	rec, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.CurrentLevel)
}

func TestSetTraderLevel(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTraderLevel(ctx, "Prapor", 4))

	general, err := st.GetGeneral(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, general.Traders[0].Level)

	// Unknown trader is a logged no-op.
	require.NoError(t, svc.SetTraderLevel(ctx, "Fence", 2))
	general, err = st.GetGeneral(ctx)
	require.NoError(t, err)
	require.Len(t, general.Traders, 1)
}

func TestQuestCompletion(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.ToggleQuestCompletion(ctx, "q1"))
	rec, err := st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.True(t, rec.IsCompleted)

	require.NoError(t, svc.ToggleQuestCompletion(ctx, "q1"))
	rec, err = st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, rec.IsCompleted)

	// Bulk marking is absolute and skips unknown ids.
	require.NoError(t, svc.MarkQuestsAsCompleted(ctx, []string{"q1", "ghost", "q1"}))
	rec, err = st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.True(t, rec.IsCompleted)
}
