package factory

import (
	"github.com/automoto/trapdoor/archetypes"
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the level being played and the stats carried into this run.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, stats components.RunStats) *donburi.Entry {
	e := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(e, components.LevelData{
		Level: level,
		Stats: stats,
	})
	return e
}
