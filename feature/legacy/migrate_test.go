package legacy

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/catalog/mocks"
	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"
	"hideout-tracker/feature/store"

	synceng "hideout-tracker/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	require.NoError(t, err)

	st, err := store.Open(db, zap.NewNop())
	require.NoError(t, err)
	return st
}

// catalogProvider serves a catalog with one station, two items and one
// trader, enough for a legacy blob to land on.
func catalogProvider() *mocks.Provider {
	provider := &mocks.Provider{}
	provider.On("Stations", mock.Anything).Return([]catalog.Station{{
		ID:   "generator",
		Name: "Generator",
		Levels: []catalog.StationLevel{
			{StationID: "generator", Level: 1},
			{StationID: "generator", Level: 2},
		},
	}}, nil)
	provider.On("Traders", mock.Anything).Return([]catalog.Trader{{ID: "t1", Name: "Prapor"}}, nil)
	provider.On("Items", mock.Anything).Return([]catalog.Item{
		{ID: "i1", Name: "Bolts"},
		{ID: "i2", Name: "Nails"},
	}, nil)
	provider.On("Tasks", mock.Anything).Return([]catalog.Task{{ID: "q1", Name: "Debut"}}, nil)
	provider.On("Maps", mock.Anything).Return([]catalog.Map{}, nil)
	return provider
}

func newTestMigrator(t *testing.T, blobPath string) (*Migrator, *store.Store) {
	t.Helper()

	st := newTestStore(t)
	engine := synceng.NewEngine(catalogProvider(), st, zap.NewNop())
	muts := mutation.NewService(st, zap.NewNop())
	return NewMigrator(Config{BlobPath: blobPath}, engine, muts, zap.NewNop()), st
}

func TestMigratorNoBlobIsNoop(t *testing.T) {
	migrator, st := newTestMigrator(t, filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, migrator.Run(context.Background()))

	// Nothing ran, not even the sync.
	stations, err := st.ListStations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestMigratorAppliesBlobThenDeletesIt(t *testing.T) {
	blobPath := filepath.Join(t.TempDir(), "hideout-legacy.json")

	state := progress.NewUserState()
	state.StationLevels["generator"] = 1
	state.Inventory["Nails"] = 7
	state.FocusedUpgrades = []string{"generator-2"}
	state.TraderLevels["Prapor"] = 3
	state.CompletedQuests = []string{"q1"}
	// Watchlisting Bolts only works because the catalog sync runs first.
	state.Watchlist = map[string]int{"Bolts": 15}
	state.PlayerLevel = 12

	data, err := json.Marshal(Profile{Version: ProfileVersion, UserState: state})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(blobPath, data, 0o644))

	migrator, st := newTestMigrator(t, blobPath)
	ctx := context.Background()
	require.NoError(t, migrator.Run(ctx))

	station, err := st.GetStation(ctx, "generator")
	require.NoError(t, err)
	require.NotNil(t, station)
	assert.Equal(t, 1, station.CurrentLevel)
	assert.True(t, station.Levels[1].IsFocused)

	nails, err := st.FindItemByName(ctx, "Nails")
	require.NoError(t, err)
	assert.Equal(t, 7, nails.QuantityOwned)

	bolts, err := st.FindItemByName(ctx, "Bolts")
	require.NoError(t, err)
	assert.True(t, bolts.IsWatchlisted)
	assert.Equal(t, 15, bolts.QuantityNeeded)

	task, err := st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.True(t, task.IsCompleted)

	general, err := st.GetGeneral(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, general.PlayerLevel)
	assert.Equal(t, 3, general.Traders[0].Level)

	// The blob is consumed exactly once.
	_, err = os.Stat(blobPath)
	assert.True(t, os.IsNotExist(err))

	// A second run in the same process is a no-op.
	require.NoError(t, migrator.Run(ctx))
}

func TestMigratorKeepsMalformedBlob(t *testing.T) {
	blobPath := filepath.Join(t.TempDir(), "hideout-legacy.json")
	require.NoError(t, os.WriteFile(blobPath, []byte("{not json"), 0o644))

	migrator, _ := newTestMigrator(t, blobPath)
	err := migrator.Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(blobPath)
	assert.NoError(t, statErr)
}
