package archetypes

import (
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Pit = newArchetype(
		tags.Pit,
		components.Trap,
		components.Pit,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	ArrowSpawner = newArchetype(
		tags.ArrowSpawner,
		components.Trap,
		components.ArrowSpawner,
		components.Position,
		components.Sprite,
	)
	Switch = newArchetype(
		tags.Switch,
		components.Switch,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Key = newArchetype(
		tags.Key,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Door = newArchetype(
		tags.Door,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	Sign = newArchetype(
		tags.Sign,
		components.Sign,
		components.Position,
		components.Collider,
		components.Sprite,
	)
	TileMap = newArchetype(
		tags.TileMap,
		components.TileMap,
	)
	Space = newArchetype(
		components.Space,
	)
	Scheduler = newArchetype(
		components.Scheduler,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
