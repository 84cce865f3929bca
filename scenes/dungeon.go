package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/sim"
	"github.com/automoto/trapdoor/systems"
	"github.com/automoto/trapdoor/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// DungeonScene plays one level, rebuilding it from scratch whenever the run ends.
type DungeonScene struct {
	sceneChanger SceneChanger
	level        *leveldata.Level
	sim          *sim.Simulation
	statsUI      *ui.StatsUI
	once         sync.Once
}

func NewDungeonScene(sc SceneChanger, level *leveldata.Level) *DungeonScene {
	return &DungeonScene{sceneChanger: sc, level: level}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)

	systems.UpdateInput(ds.sim.ECS)
	ds.sim.Step()

	if death, dead := systems.PlayerDeath(ds.sim.World()); dead {
		ds.statsUI.SetStats(death.Cause, ds.sim.Stats())
		ds.statsUI.Update()
	}

	if ds.sim.RestartRequested() {
		ds.restart()
	}
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.sim == nil {
		return
	}
	ds.sim.ECS.Draw(screen)

	if _, dead := systems.PlayerDeath(ds.sim.World()); dead {
		ds.statsUI.Draw(screen)
	}
}

func (ds *DungeonScene) configure() {
	ds.statsUI = ui.NewStatsUI()
	ds.build(systems.LoadStats())
}

// restart throws the world away and builds the level again, keeping the counters.
func (ds *DungeonScene) restart() {
	stats := ds.sim.Stats()
	stats.Restarts++
	if err := systems.SaveStats(stats); err != nil {
		log.Printf("Warning: stats not saved: %v", err)
	}
	log.Printf("Restarting %s (deaths %d, restarts %d)", ds.level.Name, stats.Deaths, stats.Restarts)
	ds.build(stats)
}

func (ds *DungeonScene) build(stats components.RunStats) {
	s, err := sim.New(ds.level, stats)
	if err != nil {
		panic("failed to build level: " + err.Error())
	}
	ds.sim = s
}
