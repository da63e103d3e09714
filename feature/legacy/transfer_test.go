package legacy

import (
	"context"
	"testing"

	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"

	synceng "hideout-tracker/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestExportImportRoundTrip exports the state of one store and imports it
// into a second store built from the same catalog, then compares snapshots.
func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := newTestStore(t)
	synceng.NewEngine(catalogProvider(), source, zap.NewNop()).SyncAll(ctx)

	muts := mutation.NewService(source, zap.NewNop())
	require.NoError(t, muts.SetStationLevel(ctx, "generator", 1))
	require.NoError(t, muts.SetFocusedUpgrade(ctx, "generator", 2, true))
	require.NoError(t, muts.SetInventoryQuantity(ctx, "Nails", 9))
	require.NoError(t, muts.SetWatchlistQuantity(ctx, "Bolts", 15))
	require.NoError(t, muts.SetTraderLevel(ctx, "Prapor", 3))
	require.NoError(t, muts.SetPlayerLevel(ctx, 12))
	require.NoError(t, muts.MarkQuestsAsCompleted(ctx, []string{"q1"}))
	require.NoError(t, muts.AddTaskToWatchlist(ctx, "q1"))

	sourceProgress := progress.NewService(source, zap.NewNop())
	data, err := NewExporter(sourceProgress).Export(ctx)
	require.NoError(t, err)

	target := newTestStore(t)
	synceng.NewEngine(catalogProvider(), target, zap.NewNop()).SyncAll(ctx)

	importer := NewImporter(mutation.NewService(target, zap.NewNop()), zap.NewNop())
	require.NoError(t, importer.Import(ctx, data))

	want, err := sourceProgress.Snapshot(ctx)
	require.NoError(t, err)
	got, err := progress.NewService(target, zap.NewNop()).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportRejectsGarbageWithoutApplying(t *testing.T) {
	ctx := context.Background()

	target := newTestStore(t)
	synceng.NewEngine(catalogProvider(), target, zap.NewNop()).SyncAll(ctx)

	importer := NewImporter(mutation.NewService(target, zap.NewNop()), zap.NewNop())
	err := importer.Import(ctx, []byte("definitely not toml = ="))
	require.Error(t, err)

	// Nothing changed.
	state, snapErr := progress.NewService(target, zap.NewNop()).Snapshot(ctx)
	require.NoError(t, snapErr)
	assert.Empty(t, state.CompletedQuests)
	assert.Equal(t, 1, state.PlayerLevel)
}
