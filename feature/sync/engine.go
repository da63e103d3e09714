package sync

import (
	"context"
	"sync"
	"time"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"go.uber.org/zap"
)

// Report summarizes one SyncAll run. Errors are informational; the caller
// never sees a failed sync as fatal.
type Report struct {
	Stations      int      `json:"stations"`
	Traders       int      `json:"traders"`
	Items         int      `json:"items"`
	Tasks         int      `json:"tasks"`
	Maps          int      `json:"maps"`
	Errors        []string `json:"errors"`
	ExecutionTime string   `json:"execution_time"`
}

// Engine pulls the catalog and merges it into the store.
type Engine struct {
	provider catalog.Provider
	store    *store.Store
	logger   *zap.Logger

	mu         sync.Mutex
	lastReport *Report
}

// NewEngine creates a sync engine.
func NewEngine(provider catalog.Provider, st *store.Store, logger *zap.Logger) *Engine {
	return &Engine{provider: provider, store: st, logger: logger}
}

// SyncAll runs the per-kind catalog syncs concurrently. A failure in one
// kind is logged, recorded in the report and swallowed; the others proceed.
func (e *Engine) SyncAll(ctx context.Context) *Report {
	startTime := time.Now()
	report := &Report{Errors: []string{}}

	var mu sync.Mutex
	var wg sync.WaitGroup

	run := func(kind string, fn func(context.Context) (int, error)) {
		defer wg.Done()
		count, err := fn(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			e.logger.Warn("Catalog sync failed, will retry next cycle",
				zap.String("kind", kind),
				zap.Error(err))
			report.Errors = append(report.Errors, kind+": "+err.Error())
			return
		}
		switch kind {
		case "stations":
			report.Stations = count
		case "traders":
			report.Traders = count
		case "items":
			report.Items = count
		case "tasks":
			report.Tasks = count
		case "maps":
			report.Maps = count
		}
	}

	wg.Add(5)
	go run("stations", e.syncStations)
	go run("traders", e.syncTraders)
	go run("items", e.syncItems)
	go run("tasks", e.syncTasks)
	go run("maps", e.syncMaps)
	wg.Wait()

	report.ExecutionTime = time.Since(startTime).String()
	e.logger.Info("Catalog sync completed",
		zap.Int("stations", report.Stations),
		zap.Int("traders", report.Traders),
		zap.Int("items", report.Items),
		zap.Int("tasks", report.Tasks),
		zap.Int("maps", report.Maps),
		zap.Int("failures", len(report.Errors)),
		zap.String("duration", report.ExecutionTime))

	e.mu.Lock()
	e.lastReport = report
	e.mu.Unlock()

	return report
}

// LastReport returns the most recent sync report, nil before the first run.
func (e *Engine) LastReport() *Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastReport
}

// Run syncs eagerly once and then on every interval tick until the context
// is cancelled. Cancellation stops future cycles; an in-flight sync
// completes and its writes land regardless.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	e.SyncAll(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.SyncAll(ctx)
		}
	}
}

// syncStations merges incoming stations into the station table. Incoming
// levels are matched to existing levels by upgrade key; the user's
// focus/completed flags are carried over, and current_level is never
// written by this path.
func (e *Engine) syncStations(ctx context.Context) (int, error) {
	incoming, err := e.provider.Stations(ctx)
	if err != nil {
		return 0, err
	}

	for _, st := range incoming {
		existing, err := e.store.GetStation(ctx, st.ID)
		if err != nil {
			return 0, err
		}

		levels := mergeStationLevels(st.Levels, existing)

		if existing == nil {
			if err := e.store.CreateStation(ctx, &store.StationRecord{
				ID:        st.ID,
				Name:      st.Name,
				ImageLink: st.ImageLink,
				Levels:    levels,
			}); err != nil {
				return 0, err
			}
			continue
		}

		if err := e.store.UpdateStation(ctx, st.ID, map[string]any{
			"name":       st.Name,
			"image_link": st.ImageLink,
			"levels":     levels,
		}); err != nil {
			return 0, err
		}
	}

	return len(incoming), nil
}

// mergeStationLevels copies isFocused/isCompleted from the matching
// existing level (same upgrade key) onto each incoming level, defaulting
// both to false for levels the store has never seen.
func mergeStationLevels(incoming []catalog.StationLevel, existing *store.StationRecord) []store.StationLevel {
	flags := map[int]store.StationLevel{}
	if existing != nil {
		for _, lv := range existing.Levels {
			flags[lv.Level] = lv
		}
	}

	merged := make([]store.StationLevel, 0, len(incoming))
	for _, lv := range incoming {
		level := store.StationLevel{StationLevel: lv}
		if prev, ok := flags[lv.Level]; ok {
			level.IsFocused = prev.IsFocused
			level.IsCompleted = prev.IsCompleted
		}
		merged = append(merged, level)
	}
	return merged
}

// syncTraders folds incoming traders into the general singleton. Existing
// user-set loyalty levels are matched by trader name and preserved;
// player_level is never touched by this path.
func (e *Engine) syncTraders(ctx context.Context) (int, error) {
	incoming, err := e.provider.Traders(ctx)
	if err != nil {
		return 0, err
	}

	general, err := e.store.GetGeneral(ctx)
	if err != nil {
		return 0, err
	}

	levels := map[string]int{}
	if general != nil {
		for _, t := range general.Traders {
			levels[t.Name] = t.Level
		}
	}

	states := make([]store.TraderState, 0, len(incoming))
	for _, t := range incoming {
		states = append(states, store.TraderState{
			Trader: t,
			Level:  levels[t.Name],
		})
	}

	return len(incoming), e.store.UpdateGeneral(ctx, map[string]any{"traders": states})
}

// syncItems merges incoming items into the inventory table, refreshing only
// catalog columns on existing rows.
func (e *Engine) syncItems(ctx context.Context) (int, error) {
	incoming, err := e.provider.Items(ctx)
	if err != nil {
		return 0, err
	}

	for _, item := range incoming {
		existing, err := e.store.GetItem(ctx, item.ID)
		if err != nil {
			return 0, err
		}

		if existing == nil {
			if err := e.store.CreateItem(ctx, &store.InventoryRecord{
				ID:          item.ID,
				Name:        item.Name,
				IconLink:    item.IconLink,
				WikiLink:    item.WikiLink,
				UsedInTasks: item.UsedInTasks,
				CraftsFor:   item.CraftsFor,
				CraftsUsing: item.CraftsUsing,
			}); err != nil {
				return 0, err
			}
			continue
		}

		if err := e.store.UpdateItem(ctx, item.ID, map[string]any{
			"name":          item.Name,
			"icon_link":     item.IconLink,
			"wiki_link":     item.WikiLink,
			"used_in_tasks": item.UsedInTasks,
			"crafts_for":    item.CraftsFor,
			"crafts_using":  item.CraftsUsing,
		}); err != nil {
			return 0, err
		}
	}

	return len(incoming), nil
}

// syncTasks merges incoming tasks into the task table, refreshing only
// catalog columns on existing rows.
func (e *Engine) syncTasks(ctx context.Context) (int, error) {
	incoming, err := e.provider.Tasks(ctx)
	if err != nil {
		return 0, err
	}

	for _, task := range incoming {
		existing, err := e.store.GetTask(ctx, task.ID)
		if err != nil {
			return 0, err
		}

		if existing == nil {
			if err := e.store.CreateTask(ctx, &store.TaskRecord{
				ID:                  task.ID,
				Name:                task.Name,
				WikiLink:            task.WikiLink,
				Trader:              task.Trader,
				TaskRequirements:    task.TaskRequirements,
				Objectives:          task.Objectives,
				Map:                 task.Map,
				MinPlayerLevel:      task.MinPlayerLevel,
				KappaRequired:       task.KappaRequired,
				LightkeeperRequired: task.LightkeeperRequired,
				TaskImageLink:       task.TaskImageLink,
			}); err != nil {
				return 0, err
			}
			continue
		}

		if err := e.store.UpdateTask(ctx, task.ID, map[string]any{
			"name":                 task.Name,
			"wiki_link":            task.WikiLink,
			"trader":               task.Trader,
			"task_requirements":    task.TaskRequirements,
			"objectives":           task.Objectives,
			"map":                  task.Map,
			"min_player_level":     task.MinPlayerLevel,
			"kappa_required":       task.KappaRequired,
			"lightkeeper_required": task.LightkeeperRequired,
			"task_image_link":      task.TaskImageLink,
		}); err != nil {
			return 0, err
		}
	}

	return len(incoming), nil
}

// syncMaps replaces map records wholesale; maps carry no user state.
func (e *Engine) syncMaps(ctx context.Context) (int, error) {
	incoming, err := e.provider.Maps(ctx)
	if err != nil {
		return 0, err
	}

	for _, m := range incoming {
		if err := e.store.UpsertMap(ctx, &store.MapRecord{
			ID:             m.ID,
			Name:           m.Name,
			NormalizedName: m.NormalizedName,
			Wiki:           m.Wiki,
			ImageLink:      m.ImageLink,
		}); err != nil {
			return 0, err
		}
	}

	return len(incoming), nil
}
