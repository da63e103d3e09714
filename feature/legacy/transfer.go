package legacy

import (
	"context"

	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"

	"go.uber.org/zap"
)

// Exporter renders the current user state as a portable TOML profile.
type Exporter struct {
	progress *progress.Service
}

// NewExporter creates an exporter over the snapshot builder.
func NewExporter(svc *progress.Service) *Exporter {
	return &Exporter{progress: svc}
}

// Export rebuilds the snapshot and encodes it.
func (e *Exporter) Export(ctx context.Context) ([]byte, error) {
	state, err := e.progress.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return EncodeProfile(Profile{Version: ProfileVersion, UserState: state})
}

// Importer applies a TOML profile through the mutation operations.
type Importer struct {
	muts   *mutation.Service
	logger *zap.Logger
}

// NewImporter creates an importer.
func NewImporter(muts *mutation.Service, logger *zap.Logger) *Importer {
	return &Importer{muts: muts, logger: logger}
}

// Import parses and applies a profile. A parse failure is returned with a
// descriptive message and nothing is applied; the caller keeps the source
// text.
func (i *Importer) Import(ctx context.Context, data []byte) error {
	profile, err := DecodeProfile(data)
	if err != nil {
		return err
	}
	return applyState(ctx, profile.UserState, i.muts, i.logger)
}
