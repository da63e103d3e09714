package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"hideout-tracker/feature/mutation"

	synceng "hideout-tracker/feature/sync"

	"go.uber.org/zap"
)

// Migrator moves the legacy flat-JSON blob into the local store exactly
// once per process.
type Migrator struct {
	path   string
	engine *synceng.Engine
	muts   *mutation.Service
	logger *zap.Logger

	mu  sync.Mutex
	ran bool
}

// NewMigrator creates the one-time migrator.
func NewMigrator(cfg Config, engine *synceng.Engine, muts *mutation.Service, logger *zap.Logger) *Migrator {
	return &Migrator{
		path:   cfg.BlobPath,
		engine: engine,
		muts:   muts,
		logger: logger,
	}
}

// Run executes the migration. Absence of the blob is a no-op, so the
// condition is re-evaluated on every fresh process; once Run actually
// proceeds it will not proceed again in this process. A failed run leaves
// the blob intact for the next start.
func (m *Migrator) Run(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ran {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy blob: %w", err)
	}

	m.ran = true
	m.logger.Info("Legacy blob found, migrating", zap.String("path", m.path))

	// User state cannot land on records that don't exist yet.
	m.engine.SyncAll(ctx)

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		// Blob stays on disk so the user can fix or retry.
		return fmt.Errorf("failed to parse legacy blob (left intact): %w", err)
	}

	if err := applyState(ctx, profile.UserState, m.muts, m.logger); err != nil {
		return fmt.Errorf("failed to apply legacy state (blob left intact): %w", err)
	}

	if err := os.Remove(m.path); err != nil {
		m.logger.Warn("Migrated but failed to delete legacy blob; next start will re-apply",
			zap.String("path", m.path),
			zap.Error(err))
		return nil
	}

	m.logger.Info("Legacy migration completed", zap.String("path", m.path))
	return nil
}
