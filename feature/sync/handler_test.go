package sync

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, engine *Engine) *fiber.App {
	t.Helper()
	app := fiber.New()
	NewHandler(engine, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestStatusBeforeFirstSync(t *testing.T) {
	app := newTestApp(t, NewEngine(emptyProvider(), newTestStore(t), zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSyncNowThenStatus(t *testing.T) {
	app := newTestApp(t, NewEngine(emptyProvider(), newTestStore(t), zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
