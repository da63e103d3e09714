package catalog

// One batch query per entity kind. The upstream caches responses for roughly
// a day, so the tracker's much tighter sync cadence is mostly served from
// that cache.

const stationsQuery = `{
  hideoutStations {
    id
    name
    imageLink
    levels {
      level
      itemRequirements { count item { name } }
      traderRequirements { level trader { name } }
      stationLevelRequirements { level station { id name } }
    }
  }
}`

const tradersQuery = `{
  traders {
    id
    name
    imageLink
    levels { level requiredPlayerLevel requiredReputation requiredCommerce }
  }
}`

const itemsQuery = `{
  items {
    id
    name
    iconLink
    wikiLink
    usedInTasks { name }
    craftsFor { station { name } }
    craftsUsing { station { name } }
  }
}`

const tasksQuery = `{
  tasks {
    id
    name
    wikiLink
    taskImageLink
    minPlayerLevel
    kappaRequired
    lightkeeperRequired
    trader { name }
    map { id }
    taskRequirements { task { id name } }
    objectives { id description type optional maps { id } }
  }
}`

const mapsQuery = `{
  maps {
    id
    name
    normalizedName
    wiki
    imageLink
  }
}`

// Wire shapes mirror the GraphQL response nesting and are flattened into the
// catalog types before anything else sees them.

type wireNamed struct {
	Name string `json:"name"`
}

type wireStation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"imageLink"`
	Levels    []struct {
		Level            int `json:"level"`
		ItemRequirements []struct {
			Count int       `json:"count"`
			Item  wireNamed `json:"item"`
		} `json:"itemRequirements"`
		TraderRequirements []struct {
			Level  int       `json:"level"`
			Trader wireNamed `json:"trader"`
		} `json:"traderRequirements"`
		StationLevelRequirements []struct {
			Level   int `json:"level"`
			Station struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"station"`
		} `json:"stationLevelRequirements"`
	} `json:"levels"`
}

func (w wireStation) toStation() Station {
	s := Station{
		ID:        w.ID,
		Name:      w.Name,
		ImageLink: w.ImageLink,
		Levels:    make([]StationLevel, 0, len(w.Levels)),
	}

	for _, wl := range w.Levels {
		level := StationLevel{
			StationID:   w.ID,
			StationName: w.Name,
			Level:       wl.Level,
		}
		for _, ir := range wl.ItemRequirements {
			level.ItemRequirements = append(level.ItemRequirements, ItemRequirement{
				ItemName: ir.Item.Name,
				Count:    ir.Count,
			})
		}
		for _, tr := range wl.TraderRequirements {
			level.TraderRequirements = append(level.TraderRequirements, TraderRequirement{
				TraderName: tr.Trader.Name,
				Level:      tr.Level,
			})
		}
		for _, sr := range wl.StationLevelRequirements {
			level.StationRequirements = append(level.StationRequirements, StationRequirement{
				StationID:   sr.Station.ID,
				StationName: sr.Station.Name,
				Level:       sr.Level,
			})
		}
		s.Levels = append(s.Levels, level)
	}

	return s
}

type wireTrader struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ImageLink string            `json:"imageLink"`
	Levels    []TraderLevelTier `json:"levels"`
}

func (w wireTrader) toTrader() Trader {
	return Trader{ID: w.ID, Name: w.Name, ImageLink: w.ImageLink, Levels: w.Levels}
}

type wireItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	IconLink    string      `json:"iconLink"`
	WikiLink    string      `json:"wikiLink"`
	UsedInTasks []wireNamed `json:"usedInTasks"`
	CraftsFor   []struct {
		Station wireNamed `json:"station"`
	} `json:"craftsFor"`
	CraftsUsing []struct {
		Station wireNamed `json:"station"`
	} `json:"craftsUsing"`
}

func (w wireItem) toItem() Item {
	item := Item{
		ID:       w.ID,
		Name:     w.Name,
		IconLink: w.IconLink,
		WikiLink: w.WikiLink,
	}
	for _, t := range w.UsedInTasks {
		item.UsedInTasks = append(item.UsedInTasks, t.Name)
	}
	for _, c := range w.CraftsFor {
		item.CraftsFor = append(item.CraftsFor, c.Station.Name)
	}
	for _, c := range w.CraftsUsing {
		item.CraftsUsing = append(item.CraftsUsing, c.Station.Name)
	}
	return item
}

type wireTask struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	WikiLink            string    `json:"wikiLink"`
	TaskImageLink       string    `json:"taskImageLink"`
	MinPlayerLevel      int       `json:"minPlayerLevel"`
	KappaRequired       bool      `json:"kappaRequired"`
	LightkeeperRequired bool      `json:"lightkeeperRequired"`
	Trader              wireNamed `json:"trader"`
	Map                 *struct {
		ID string `json:"id"`
	} `json:"map"`
	TaskRequirements []struct {
		Task struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"task"`
	} `json:"taskRequirements"`
	Objectives []struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Optional    bool   `json:"optional"`
		Maps        []struct {
			ID string `json:"id"`
		} `json:"maps"`
	} `json:"objectives"`
}

func (w wireTask) toTask() Task {
	task := Task{
		ID:                  w.ID,
		Name:                w.Name,
		WikiLink:            w.WikiLink,
		TaskImageLink:       w.TaskImageLink,
		MinPlayerLevel:      w.MinPlayerLevel,
		KappaRequired:       w.KappaRequired,
		LightkeeperRequired: w.LightkeeperRequired,
		Trader:              w.Trader.Name,
	}
	if w.Map != nil {
		task.Map = w.Map.ID
	}
	for _, tr := range w.TaskRequirements {
		task.TaskRequirements = append(task.TaskRequirements, TaskRequirement{
			TaskID:   tr.Task.ID,
			TaskName: tr.Task.Name,
		})
	}
	for _, o := range w.Objectives {
		objective := TaskObjective{
			ID:          o.ID,
			Description: o.Description,
			Type:        o.Type,
			Optional:    o.Optional,
		}
		if len(o.Maps) > 0 {
			objective.MapID = o.Maps[0].ID
		}
		task.Objectives = append(task.Objectives, objective)
	}
	return task
}
