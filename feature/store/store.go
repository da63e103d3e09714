package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the single handle to the persisted tables. It is created once at
// startup and injected into the sync engine, the mutation operations and
// the derivation layer; no package keeps ambient global state.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open prepares the schema and returns the store handle. It is idempotent:
// AutoMigrate only adds what is missing, the schema version row and the
// general singleton are created once.
func Open(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(
		&StationRecord{},
		&InventoryRecord{},
		&TaskRecord{},
		&GeneralInfoRecord{},
		&MapRecord{},
		&SchemaMeta{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	meta := SchemaMeta{ID: 1, Version: SchemaVersion}
	if err := db.FirstOrCreate(&meta, SchemaMeta{ID: 1}).Error; err != nil {
		return nil, fmt.Errorf("failed to pin schema version: %w", err)
	}

	general := GeneralInfoRecord{ID: GeneralID, PlayerLevel: 1}
	if err := db.FirstOrCreate(&general, GeneralInfoRecord{ID: GeneralID}).Error; err != nil {
		return nil, fmt.Errorf("failed to seed general record: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// getOne runs a point read, translating gorm's not-found into (nil, nil) so
// missing entities degrade to no-ops in callers per the error taxonomy.
func getOne[T any](ctx context.Context, db *gorm.DB, query string, arg any) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Stations

// GetStation returns the station record by id, nil when absent.
func (s *Store) GetStation(ctx context.Context, id string) (*StationRecord, error) {
	return getOne[StationRecord](ctx, s.db, "id = ?", id)
}

// ListStations scans the station table.
func (s *Store) ListStations(ctx context.Context) ([]StationRecord, error) {
	var recs []StationRecord
	return recs, s.db.WithContext(ctx).Find(&recs).Error
}

// CreateStation inserts a station record if absent.
func (s *Store) CreateStation(ctx context.Context, rec *StationRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

// UpdateStation merges the named columns into the station row, leaving
// every other column untouched.
func (s *Store) UpdateStation(ctx context.Context, id string, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&StationRecord{}).Where("id = ?", id).Updates(cols).Error
}

// UpdateAllStations merges the named columns into every station row.
func (s *Store) UpdateAllStations(ctx context.Context, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&StationRecord{}).Where("1 = 1").Updates(cols).Error
}

// Inventory

// GetItem returns the inventory record by id, nil when absent.
func (s *Store) GetItem(ctx context.Context, id string) (*InventoryRecord, error) {
	return getOne[InventoryRecord](ctx, s.db, "id = ?", id)
}

// FindItemByName returns the inventory record by catalog name, nil when absent.
func (s *Store) FindItemByName(ctx context.Context, name string) (*InventoryRecord, error) {
	return getOne[InventoryRecord](ctx, s.db, "name = ?", name)
}

// ListItems scans the inventory table.
func (s *Store) ListItems(ctx context.Context) ([]InventoryRecord, error) {
	var recs []InventoryRecord
	return recs, s.db.WithContext(ctx).Find(&recs).Error
}

// CreateItem inserts an inventory record if absent.
func (s *Store) CreateItem(ctx context.Context, rec *InventoryRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

// UpdateItem merges the named columns into the inventory row.
func (s *Store) UpdateItem(ctx context.Context, id string, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&InventoryRecord{}).Where("id = ?", id).Updates(cols).Error
}

// UpdateAllItems merges the named columns into every inventory row.
func (s *Store) UpdateAllItems(ctx context.Context, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&InventoryRecord{}).Where("1 = 1").Updates(cols).Error
}

// Tasks

// GetTask returns the task record by id, nil when absent.
func (s *Store) GetTask(ctx context.Context, id string) (*TaskRecord, error) {
	return getOne[TaskRecord](ctx, s.db, "id = ?", id)
}

// FindTaskByName returns the task record by catalog name, nil when absent.
func (s *Store) FindTaskByName(ctx context.Context, name string) (*TaskRecord, error) {
	return getOne[TaskRecord](ctx, s.db, "name = ?", name)
}

// ListTasks scans the task table.
func (s *Store) ListTasks(ctx context.Context) ([]TaskRecord, error) {
	var recs []TaskRecord
	return recs, s.db.WithContext(ctx).Find(&recs).Error
}

// CreateTask inserts a task record if absent.
func (s *Store) CreateTask(ctx context.Context, rec *TaskRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

// UpdateTask merges the named columns into the task row.
func (s *Store) UpdateTask(ctx context.Context, id string, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&TaskRecord{}).Where("id = ?", id).Updates(cols).Error
}

// General information singleton

// GetGeneral returns the singleton general record. Open seeds it, so a nil
// result only happens on a fresh-but-broken store and is treated as absent.
func (s *Store) GetGeneral(ctx context.Context) (*GeneralInfoRecord, error) {
	return getOne[GeneralInfoRecord](ctx, s.db, "id = ?", GeneralID)
}

// UpdateGeneral merges the named columns into the singleton row.
func (s *Store) UpdateGeneral(ctx context.Context, cols map[string]any) error {
	return s.db.WithContext(ctx).Model(&GeneralInfoRecord{}).Where("id = ?", GeneralID).Updates(cols).Error
}

// Maps

// ListMaps scans the map table.
func (s *Store) ListMaps(ctx context.Context) ([]MapRecord, error) {
	var recs []MapRecord
	return recs, s.db.WithContext(ctx).Find(&recs).Error
}

// UpsertMap inserts or fully refreshes a map record. Maps carry no user
// state, so a wholesale replace is safe.
func (s *Store) UpsertMap(ctx context.Context, rec *MapRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rec).Error
}
