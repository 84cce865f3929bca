package factory

import (
	"github.com/automoto/trapdoor/archetypes"
	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateKey(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	key := archetypes.Key.Spawn(ecs)
	x, y := spawn.Center()
	setBody(ecs, key,
		collision.Position{X: x, Y: y},
		collision.NewBox(cfg.Objects.KeySize, cfg.Objects.KeySize),
		true, false, tags.ResolvKey)
	components.Sprite.SetValue(key, visible(components.SpriteKey))
	return key
}

// CreateDoor spawns a locked door. It blocks until the player walks into it
// carrying a key.
func CreateDoor(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	x, y := spawn.Center()
	w, h := sized(spawn.W, spawn.H, cfg.Objects.DoorSize)
	setBody(ecs, door,
		collision.Position{X: x, Y: y},
		collision.NewBox(w, h),
		true, false, tags.ResolvDoor)
	components.Sprite.SetValue(door, visible(components.SpriteDoor))
	return door
}

func CreateSign(ecs *ecs.ECS, spawn leveldata.SignSpawn) *donburi.Entry {
	sign := archetypes.Sign.Spawn(ecs)
	x, y := spawn.Center()
	setBody(ecs, sign,
		collision.Position{X: x, Y: y},
		collision.NewBox(cfg.Objects.SignSize, cfg.Objects.SignSize),
		true, false, tags.ResolvSign)
	components.Sign.SetValue(sign, components.SignData{Text: spawn.Text})
	components.Sprite.SetValue(sign, visible(components.SpriteSign))
	return sign
}
