package factory

import (
	"math"

	"github.com/automoto/trapdoor/archetypes"
	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePit spawns a closed pit: hidden, and with its collider disabled until
// a switch opens it.
func CreatePit(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	pit := archetypes.Pit.Spawn(ecs)

	x, y := spawn.Center()
	w, h := sized(spawn.W, spawn.H, float64(cfg.C.TileSize))
	setBody(ecs, pit,
		collision.Position{X: x, Y: y},
		collision.NewBox(w, h),
		false, false, tags.ResolvPit)

	components.Trap.SetValue(pit, components.TrapData{Name: spawn.Name, Kind: components.TrapPit})
	components.Sprite.SetValue(pit, components.SpriteData{Kind: components.SpritePit, Scale: 1})

	return pit
}

// CreateArrowSpawner spawns an idle arrow trap. Spawners have no body of their own.
func CreateArrowSpawner(ecs *ecs.ECS, spawn leveldata.SpawnerSpawn) *donburi.Entry {
	spawner := archetypes.ArrowSpawner.Spawn(ecs)

	x, y := spawn.Center()
	components.Position.SetValue(spawner, collision.Position{X: x, Y: y})

	period := spawn.Period
	if period <= 0 {
		period = cfg.Traps.SpawnerPeriod
	}
	components.Trap.SetValue(spawner, components.TrapData{Name: spawn.Name, Kind: components.TrapArrowSpawner})
	components.ArrowSpawner.SetValue(spawner, components.ArrowSpawnerData{
		Angle:         spawn.Angle * math.Pi / 180,
		Period:        period,
		ActiveOnStart: spawn.Active,
	})
	components.Sprite.SetValue(spawner, visible(components.SpriteSpawner))

	return spawner
}

// CreateSwitch spawns a pressure plate. The trap it drives is looked up by
// name once the whole level exists.
func CreateSwitch(ecs *ecs.ECS, spawn leveldata.SwitchSpawn) *donburi.Entry {
	sw := archetypes.Switch.Spawn(ecs)

	x, y := spawn.Center()
	size := cfg.Traps.SwitchSize
	setBody(ecs, sw,
		collision.Position{X: x, Y: y},
		collision.NewBox(size, size),
		true, true, tags.ResolvSwitch)

	components.Switch.SetValue(sw, components.SwitchData{TrapName: spawn.TrapName})
	components.Sprite.SetValue(sw, visible(components.SpriteSwitchUp))

	return sw
}

// CreateArrow spawns an arrow at (x, y) flying along angle radians.
func CreateArrow(ecs *ecs.ECS, x, y, angle float64) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(ecs)

	setBody(ecs, arrow,
		collision.Position{X: x, Y: y, Rotation: angle},
		collision.NewBox(cfg.Arrow.Width, cfg.Arrow.Height),
		true, true, tags.ResolvArrow)

	components.Arrow.Get(arrow).Velocity.X = math.Cos(angle) * cfg.Arrow.Speed
	components.Arrow.Get(arrow).Velocity.Y = math.Sin(angle) * cfg.Arrow.Speed
	components.Sprite.SetValue(arrow, visible(components.SpriteArrow))

	return arrow
}
