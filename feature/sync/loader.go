package sync

import (
	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	engine  *Engine
	handler *Handler
}

// NewFeature creates a new Sync feature.
func NewFeature(provider catalog.Provider, st *store.Store, logger *zap.Logger) *Feature {
	engine := NewEngine(provider, st, logger)
	h := NewHandler(engine, logger)
	return &Feature{engine: engine, handler: h}
}

// Engine exposes the sync engine for the background runner and the migrator.
func (f *Feature) Engine() *Engine {
	return f.engine
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
