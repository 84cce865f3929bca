package systems

import (
	"math"

	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies chases the player while it is in sight and walks back home otherwise.
func UpdateEnemies(ecs *ecs.ECS) {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	player, _ := tags.Player.First(ecs.World)
	for _, e := range enemies {
		if !alive(e) {
			continue
		}
		updateEnemy(ecs, e, player)
	}
}

func updateEnemy(ecs *ecs.ECS, e, player *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	pos := components.Position.Get(e)

	target := enemy.Home
	enemy.Chasing = CanSee(ecs.World, e, player)
	if enemy.Chasing {
		target = components.Position.Get(player).Vec()
	}

	step := enemy.Speed * cfg.C.Tick().Seconds()
	vel, moving := stepTowards(pos.Vec(), target, step)
	if !moving {
		return
	}

	for _, c := range MoveAndSlide(ecs.World, e, vel) {
		if !alive(e) {
			return
		}
		handleEnemyContact(ecs, e, c)
	}
}

// stepTowards returns a displacement of at most step towards target. It lands
// exactly on target rather than overshooting it.
func stepTowards(from, to dmath.Vec2, step float64) (dmath.Vec2, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return dmath.Vec2{}, false
	}
	if dist <= cfg.Enemy.ArriveEpsilon || step >= dist {
		return dmath.NewVec2(dx, dy), true
	}
	return dmath.NewVec2(dx/dist*step, dy/dist*step), true
}

// CanSee reports whether the player is within half a screen of e and no wall
// tile lies on the straight line between them.
func CanSee(w donburi.World, e, player *donburi.Entry) bool {
	if player == nil || !player.Valid() {
		return false
	}
	from := *components.Position.Get(e)
	to := components.Position.Get(player)

	dx, dy := to.X-from.X, to.Y-from.Y
	if math.Abs(dx) > float64(cfg.C.Width)/2 || math.Abs(dy) > float64(cfg.C.Height)/2 {
		return false
	}

	tm, ok := components.TileMap.First(w)
	if !ok {
		return true
	}
	ray := collision.NewSegment(dmath.NewVec2(0, 0), dmath.NewVec2(dx, dy))
	_, blocked := components.TileMap.Get(tm).Test(ray, collision.Position{X: from.X, Y: from.Y})
	return !blocked
}

func handleEnemyContact(ecs *ecs.ECS, e *donburi.Entry, c CollisionInfo) {
	other := c.Object
	if !other.Valid() {
		return
	}

	switch {
	case other.HasComponent(tags.Pit):
		if c.Response.AInB {
			dropEnemy(ecs.World, e)
		}
	case other.HasComponent(tags.Arrow):
		Destroy(ecs.World, e)
	case other.HasComponent(tags.Player):
		KillPlayer(ecs.World, other, components.DeathCaught)
	}
}
