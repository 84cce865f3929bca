// Package sim builds a playable world from a level and steps it at a fixed tick.
package sim

import (
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/systems"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is one run of a level. It is not safe for concurrent use.
type Simulation struct {
	ECS   *ecs.ECS
	Level *leveldata.Level
	ticks int
}

// New creates every entity of level, binds switches to their traps and
// returns a world ready for its first tick. stats are carried over from
// earlier runs.
func New(level *leveldata.Level, stats components.RunStats) (*Simulation, error) {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateTasks)
	e.AddSystem(systems.UpdateSwitches)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateArrows)
	e.AddSystem(systems.UpdateFalling)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateRestart)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawSigns)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	populate(e, level, stats)
	if err := Bind(e); err != nil {
		return nil, err
	}

	return &Simulation{ECS: e, Level: level}, nil
}

// populate is the create phase: singletons first, so bodies find the space.
func populate(e *ecs.ECS, level *leveldata.Level, stats components.RunStats) {
	factory.CreateScheduler(e)
	w, h := level.PixelSize()
	factory.CreateSpace(e, w, h, level.TileWidth, level.TileHeight)
	factory.CreateTileMap(e, level)
	factory.CreateLevel(e, level, stats)
	factory.CreateInput(e)

	player := factory.CreatePlayer(e, level.Player)
	pos := components.Position.Get(player)
	factory.CreateCamera(e, pos.X, pos.Y)

	for _, s := range level.Pits {
		factory.CreatePit(e, s)
	}
	for _, s := range level.ArrowSpawners {
		factory.CreateArrowSpawner(e, s)
	}
	for _, s := range level.Switches {
		factory.CreateSwitch(e, s)
	}
	for _, s := range level.Keys {
		factory.CreateKey(e, s)
	}
	for _, s := range level.Doors {
		factory.CreateDoor(e, s)
	}
	for _, s := range level.Signs {
		factory.CreateSign(e, s)
	}
	for _, s := range level.Enemies {
		factory.CreateEnemy(e, s)
	}
}

// Step advances the world by one tick using whatever input is currently held.
func (s *Simulation) Step() {
	s.ECS.Update()
	s.ticks++
}

// StepWith holds actions for one tick, then steps.
func (s *Simulation) StepWith(actions ...cfg.ActionID) {
	systems.SetInput(s.ECS, actions...)
	s.Step()
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// World returns the simulation's entity container.
func (s *Simulation) World() donburi.World {
	return s.ECS.World
}

// Stats returns the run statistics so far.
func (s *Simulation) Stats() components.RunStats {
	return systems.CurrentStats(s.ECS.World)
}

// RestartRequested reports whether the run is over and the level should be
// rebuilt with New.
func (s *Simulation) RestartRequested() bool {
	return systems.RestartRequested(s.ECS.World)
}
