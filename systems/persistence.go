package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/trapdoor/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const statsKey = "stats"

var gdataManager *gdata.Manager

// InitPersistence opens the save directory for the given app name
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadStats reads saved run statistics. Missing or unreadable data gives zero stats.
func LoadStats() components.RunStats {
	var stats components.RunStats
	if gdataManager == nil {
		return stats
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return stats
	}
	if len(data) == 0 {
		return stats
	}

	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved stats: %v", err)
		return components.RunStats{}
	}
	return stats
}

// SaveStats writes run statistics to disk
func SaveStats(stats components.RunStats) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
		return err
	}
	return nil
}

// CurrentStats returns the world's run statistics.
func CurrentStats(w donburi.World) components.RunStats {
	if entry, ok := components.Level.First(w); ok {
		return components.Level.Get(entry).Stats
	}
	return components.RunStats{}
}
