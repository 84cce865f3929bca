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
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a chaser. Its spawn point is also where it walks back to.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	x, y := spawn.Center()
	setBody(ecs, enemy,
		collision.Position{X: x, Y: y},
		collision.NewBox(cfg.Enemy.Width, cfg.Enemy.Height),
		true, false, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Home:  math.NewVec2(x, y),
		Speed: cfg.Enemy.Speed,
	})
	components.Sprite.SetValue(enemy, visible(components.SpriteEnemy))

	return enemy
}
