package mutation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToWatchlistUnknownItem(t *testing.T) {
	_, svc := seedStore(t)

	err := svc.AddToWatchlist(context.Background(), "No Such Item", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestAddToWatchlistIsAdditive(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToWatchlist(ctx, "Nails", 5))
	require.NoError(t, svc.AddToWatchlist(ctx, "Nails", 3))

	rec, err := st.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, rec.IsWatchlisted)
	assert.Equal(t, 8, rec.QuantityNeeded)
}

func TestSetWatchlistQuantityZeroClearsFlag(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToWatchlist(ctx, "Nails", 5))
	require.NoError(t, svc.SetWatchlistQuantity(ctx, "Nails", 0))

	rec, err := st.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.False(t, rec.IsWatchlisted)
	assert.Equal(t, 0, rec.QuantityNeeded)
}

func TestRemoveFromWatchlist(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToWatchlist(ctx, "Duct Tape", 4))
	require.NoError(t, svc.RemoveFromWatchlist(ctx, "Duct Tape"))

	rec, err := st.GetItem(ctx, "i2")
	require.NoError(t, err)
	assert.False(t, rec.IsWatchlisted)
	assert.Equal(t, 0, rec.QuantityNeeded)

	// Flag and target always move together.
	assert.Equal(t, rec.IsWatchlisted, rec.QuantityNeeded > 0)
}

func TestTaskWatchlist(t *testing.T) {
	st, svc := seedStore(t)
	ctx := context.Background()

	require.NoError(t, svc.AddTaskToWatchlist(ctx, "q1"))
	rec, err := st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.True(t, rec.IsWatchlisted)

	require.NoError(t, svc.RemoveTaskFromWatchlist(ctx, "q1"))
	rec, err = st.GetTask(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, rec.IsWatchlisted)

	// Unknown task ids are no-ops.
	require.NoError(t, svc.AddTaskToWatchlist(ctx, "ghost"))
}
