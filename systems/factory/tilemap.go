package factory

import (
	"github.com/automoto/trapdoor/archetypes"
	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTileMap builds the static wall grid of a level. Walls never get
// resolv proxies; every mover tests the grid directly.
func CreateTileMap(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	e := archetypes.TileMap.Spawn(ecs)
	tm := collision.NewTileMap(
		level.Width, level.Height,
		float64(level.TileWidth), float64(level.TileHeight),
		level.Solid,
	)
	components.TileMap.Set(e, tm)
	return e
}
