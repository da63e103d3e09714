package progress

import (
	"context"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"

	"go.uber.org/zap"
)

// Service assembles snapshots from the store and runs the pure derivations
// over them. It only ever reads.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a progress service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Snapshot rebuilds the UserState by scanning all persisted records.
func (s *Service) Snapshot(ctx context.Context) (UserState, error) {
	state := NewUserState()

	stations, err := s.store.ListStations(ctx)
	if err != nil {
		return state, err
	}
	for _, st := range stations {
		state.StationLevels[st.ID] = st.CurrentLevel
		for _, lv := range st.Levels {
			if lv.IsFocused {
				state.FocusedUpgrades = append(state.FocusedUpgrades, UpgradeKey(st.ID, lv.Level))
			}
		}
	}

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return state, err
	}
	for _, item := range items {
		state.Inventory[item.Name] = item.QuantityOwned
		if item.IsWatchlisted {
			state.Watchlist[item.Name] = item.QuantityNeeded
		}
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return state, err
	}
	for _, task := range tasks {
		if task.IsCompleted {
			state.CompletedQuests = append(state.CompletedQuests, task.ID)
		}
		if task.IsWatchlisted {
			state.TaskWatchlist = append(state.TaskWatchlist, task.ID)
		}
	}

	general, err := s.store.GetGeneral(ctx)
	if err != nil {
		return state, err
	}
	if general != nil {
		state.PlayerLevel = general.PlayerLevel
		for _, trader := range general.Traders {
			state.TraderLevels[trader.Name] = trader.Level
		}
	}

	return state, nil
}

// StationLevels flattens every station's level tiers into the single list
// the derivations consume.
func (s *Service) StationLevels(ctx context.Context) ([]catalog.StationLevel, error) {
	stations, err := s.store.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	var levels []catalog.StationLevel
	for _, st := range stations {
		for _, lv := range st.Levels {
			levels = append(levels, lv.StationLevel)
		}
	}
	return levels, nil
}

// SummaryRow is an item summary with its rendered shopping status.
type SummaryRow struct {
	ItemSummary
	Status string `json:"status"`
}

// Summary computes the aggregated item shopping summary, sorted by the
// requested field.
func (s *Service) Summary(ctx context.Context, field SortField, descending bool) ([]SummaryRow, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := s.StationLevels(ctx)
	if err != nil {
		return nil, err
	}

	summaries := CalculateItemSummary(levels, state)
	SortSummaries(summaries, field, descending)

	rows := make([]SummaryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, SummaryRow{ItemSummary: summary, Status: DisplayStatus(summary)})
	}
	return rows, nil
}

// UpgradeView is one unpurchased upgrade with its availability detail.
type UpgradeView struct {
	Upgrade             catalog.StationLevel      `json:"upgrade"`
	UpgradeKey          string                    `json:"upgradeKey"`
	Available           bool                      `json:"available"`
	Focused             bool                      `json:"focused"`
	UnmetStations       []UnmetStationRequirement `json:"unmetStations,omitempty"`
	UnmetTraders        []UnmetTraderRequirement  `json:"unmetTraders,omitempty"`
}

// Upgrades returns every unpurchased upgrade with availability and focus
// detail for display.
func (s *Service) Upgrades(ctx context.Context) ([]UpgradeView, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := s.StationLevels(ctx)
	if err != nil {
		return nil, err
	}

	p := PartitionUpgrades(levels, state)
	focused := state.IsFocusedSet()

	views := make([]UpgradeView, 0, len(p.Unpurchased))
	for _, lv := range p.Unpurchased {
		key := UpgradeKey(lv.StationID, lv.Level)
		unmetStations, unmetTraders := UnmetRequirements(lv, state)
		_, isFocused := focused[key]
		views = append(views, UpgradeView{
			Upgrade:       lv,
			UpgradeKey:    key,
			Available:     len(unmetStations) == 0 && len(unmetTraders) == 0,
			Focused:       isFocused,
			UnmetStations: unmetStations,
			UnmetTraders:  unmetTraders,
		})
	}
	return views, nil
}

// Raid projects a proposed batch of item additions and task completions
// against the current snapshot without committing anything.
func (s *Service) Raid(ctx context.Context, itemDeltas map[string]int, taskCompletions []string) (RaidSummary, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return RaidSummary{}, err
	}
	levels, err := s.StationLevels(ctx)
	if err != nil {
		return RaidSummary{}, err
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return RaidSummary{}, err
	}
	catalogTasks := make([]catalog.Task, 0, len(tasks))
	for _, t := range tasks {
		catalogTasks = append(catalogTasks, catalog.Task{ID: t.ID, Name: t.Name})
	}

	return CalculateRaidSummary(itemDeltas, taskCompletions, state, levels, catalogTasks), nil
}
