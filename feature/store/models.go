package store

import "hideout-tracker/feature/catalog"

// SchemaVersion is the persisted store schema generation.
const SchemaVersion = 1

// GeneralID is the fixed id of the singleton general information record.
const GeneralID = "general"

// StationLevel is a catalog station level annotated with the user's
// per-upgrade flags. IsCompleted is carried for export compatibility but is
// never derived from the station's current level; only CurrentLevel gates
// purchased status in the derivation layer.
type StationLevel struct {
	catalog.StationLevel
	IsFocused   bool `json:"isFocused"`
	IsCompleted bool `json:"isCompleted"`
}

// StationRecord colocates a catalog station with the user's purchased level.
// Catalog columns (name, image_link, levels) are refreshed by sync;
// current_level and the per-level flags inside levels persist across syncs.
type StationRecord struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	ImageLink    string         `json:"imageLink"`
	Levels       []StationLevel `gorm:"serializer:json" json:"levels"`
	CurrentLevel int            `json:"currentLevel"`
}

// MapPoint is a percentage-space pin on a map image. One pin per map per item.
type MapPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// InventoryRecord colocates a catalog item with the user's owned quantity,
// watchlist target and map pins.
type InventoryRecord struct {
	ID             string              `gorm:"primaryKey" json:"id"`
	Name           string              `gorm:"index" json:"name"`
	IconLink       string              `json:"iconLink"`
	WikiLink       string              `json:"wikiLink"`
	UsedInTasks    []string            `gorm:"serializer:json" json:"usedInTasks"`
	CraftsFor      []string            `gorm:"serializer:json" json:"craftsFor"`
	CraftsUsing    []string            `gorm:"serializer:json" json:"craftsUsing"`
	QuantityOwned  int                 `json:"quantityOwned"`
	QuantityNeeded int                 `json:"quantityNeeded"`
	IsWatchlisted  bool                `json:"isWatchlisted"`
	MapPositions   map[string]MapPoint `gorm:"serializer:json" json:"mapPositions"`
}

// TaskMapPoint is a percentage-space pin for a task on a map. A nil
// ObjectiveID means the pin covers the whole task; uniqueness is enforced
// per (map, objective id) pair, later writes replacing earlier ones.
type TaskMapPoint struct {
	ObjectiveID *string `json:"objectiveId,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// TaskRecord colocates a catalog task with the user's completion and
// watchlist flags plus map pins.
type TaskRecord struct {
	ID                  string                    `gorm:"primaryKey" json:"id"`
	Name                string                    `gorm:"index" json:"name"`
	WikiLink            string                    `json:"wikiLink"`
	Trader              string                    `json:"trader"`
	TaskRequirements    []catalog.TaskRequirement `gorm:"serializer:json" json:"taskRequirements"`
	Objectives          []catalog.TaskObjective   `gorm:"serializer:json" json:"objectives"`
	Map                 string                    `json:"map"`
	MinPlayerLevel      int                       `json:"minPlayerLevel"`
	KappaRequired       bool                      `json:"kappaRequired"`
	LightkeeperRequired bool                      `json:"lightkeeperRequired"`
	TaskImageLink       string                    `json:"taskImageLink"`
	IsCompleted         bool                      `json:"isCompleted"`
	IsWatchlisted       bool                      `json:"isWatchlisted"`
	MapPositions        map[string][]TaskMapPoint `gorm:"serializer:json" json:"mapPositions"`
}

// TraderState is a catalog trader annotated with the user's loyalty level.
type TraderState struct {
	catalog.Trader
	Level int `json:"level"`
}

// GeneralInfoRecord is the singleton record holding player level and
// per-trader loyalty. Sync refreshes the catalog side of each trader and
// preserves the user-set level; player_level is never touched by sync.
type GeneralInfoRecord struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	PlayerLevel int           `json:"playerLevel"`
	Traders     []TraderState `gorm:"serializer:json" json:"traders"`
}

// MapRecord is a catalog map descriptor for pin rendering.
type MapRecord struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
	Wiki           string `json:"wiki"`
	ImageLink      string `json:"imageLink"`
}

// SchemaMeta pins the persisted schema version.
type SchemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int
}
