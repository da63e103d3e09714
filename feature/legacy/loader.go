package legacy

import (
	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"

	synceng "hideout-tracker/feature/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	migrator *Migrator
	handler  *Handler
}

// NewFeature creates a new Legacy feature.
func NewFeature(cfg Config, engine *synceng.Engine, muts *mutation.Service, prog *progress.Service, logger *zap.Logger) *Feature {
	exporter := NewExporter(prog)
	importer := NewImporter(muts, logger)
	return &Feature{
		migrator: NewMigrator(cfg, engine, muts, logger),
		handler:  NewHandler(exporter, importer, logger),
	}
}

// Migrator exposes the one-time blob migrator for the startup path.
func (f *Feature) Migrator() *Migrator {
	return f.migrator
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "legacy"
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
