package components

import (
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level            *leveldata.Level
	Stats            RunStats
	RestartRequested bool // Set once the run should start over; the scene rebuilds the world
}

// RunStats are counters kept across restarts and persisted between sessions.
type RunStats struct {
	Deaths      int `json:"deaths"`
	Restarts    int `json:"restarts"`
	KeysFound   int `json:"keysFound"`
	DoorsOpened int `json:"doorsOpened"`
	ArrowsFired int `json:"arrowsFired"`
}

var Level = donburi.NewComponentType[LevelData]()
