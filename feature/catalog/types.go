package catalog

// ItemRequirement is one item cost of a station upgrade.
type ItemRequirement struct {
	ItemName string `json:"itemName"`
	Count    int    `json:"count"`
}

// TraderRequirement is a minimum trader loyalty level gating an upgrade.
type TraderRequirement struct {
	TraderName string `json:"traderName"`
	Level      int    `json:"level"`
}

// StationRequirement is a minimum level of another station gating an upgrade.
type StationRequirement struct {
	StationID   string `json:"stationId"`
	StationName string `json:"stationName"`
	Level       int    `json:"level"`
}

// StationLevel is one upgrade tier of a station, identified by the
// composite upgrade key (stationId, level).
type StationLevel struct {
	StationID           string               `json:"stationId"`
	StationName         string               `json:"stationName"`
	Level               int                  `json:"level"`
	ItemRequirements    []ItemRequirement    `json:"itemRequirements"`
	TraderRequirements  []TraderRequirement  `json:"traderRequirements"`
	StationRequirements []StationRequirement `json:"stationRequirements"`
}

// Station is a hideout station with all of its upgrade tiers.
type Station struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	ImageLink string         `json:"imageLink"`
	Levels    []StationLevel `json:"levels"`
}

// TraderLevelTier is one loyalty tier of a trader.
type TraderLevelTier struct {
	Level               int     `json:"level"`
	RequiredPlayerLevel int     `json:"requiredPlayerLevel"`
	RequiredReputation  float64 `json:"requiredReputation"`
	RequiredCommerce    int     `json:"requiredCommerce"`
}

// Trader is a catalog trader with its loyalty tiers.
type Trader struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ImageLink string            `json:"imageLink"`
	Levels    []TraderLevelTier `json:"levels"`
}

// Item is a catalog item with its task usage and craft graph.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	IconLink    string   `json:"iconLink"`
	WikiLink    string   `json:"wikiLink"`
	UsedInTasks []string `json:"usedInTasks"`
	CraftsFor   []string `json:"craftsFor"`
	CraftsUsing []string `json:"craftsUsing"`
}

// TaskRequirement is a prerequisite task of another task.
type TaskRequirement struct {
	TaskID   string `json:"taskId"`
	TaskName string `json:"taskName"`
}

// TaskObjective is one objective of a task.
type TaskObjective struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Type        string `json:"type"`
	MapID       string `json:"mapId,omitempty"`
	Optional    bool   `json:"optional"`
}

// Task is a catalog quest with its requirements and objectives.
type Task struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	WikiLink            string            `json:"wikiLink"`
	Trader              string            `json:"trader"`
	TaskRequirements    []TaskRequirement `json:"taskRequirements"`
	Objectives          []TaskObjective   `json:"objectives"`
	Map                 string            `json:"map,omitempty"`
	MinPlayerLevel      int               `json:"minPlayerLevel"`
	KappaRequired       bool              `json:"kappaRequired"`
	LightkeeperRequired bool              `json:"lightkeeperRequired"`
	TaskImageLink       string            `json:"taskImageLink"`
}

// Map is a catalog map image descriptor used for pin rendering.
type Map struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
	Wiki           string `json:"wiki"`
	ImageLink      string `json:"imageLink"`
}
