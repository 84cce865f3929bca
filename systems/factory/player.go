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

// CreatePlayer spawns the player centred on the spawn point.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x, y := spawn.Center()
	setBody(ecs, player,
		collision.Position{X: x, Y: y},
		collision.NewBox(cfg.Player.Width, cfg.Player.Height),
		true, false, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.Speed,
	})
	components.Sprite.SetValue(player, visible(components.SpritePlayer))

	return player
}
