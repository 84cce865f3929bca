package systems

import (
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArrows flies every arrow in a straight line. An arrow kills whatever
// body it touches and breaks on the first solid contact.
func UpdateArrows(ecs *ecs.ECS) {
	var arrows []*donburi.Entry
	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		arrows = append(arrows, e)
	})

	dt := cfg.C.Tick().Seconds()
	for _, e := range arrows {
		if !e.Valid() {
			continue
		}
		arrow := components.Arrow.Get(e)
		contacts := MoveAndCollide(ecs.World, e, arrow.Velocity.MulScalar(dt))

		broken := false
		for _, c := range contacts {
			if !c.Object.Valid() {
				continue
			}
			switch {
			case c.Object.HasComponent(tags.Player):
				KillPlayer(ecs.World, c.Object, components.DeathShot)
			case c.Object.HasComponent(tags.Enemy):
				Destroy(ecs.World, c.Object)
			}
			if !c.IsTrigger {
				broken = true
			}
		}

		if broken || outOfBounds(ecs.World, e) {
			Destroy(ecs.World, e)
		}
	}
}

func outOfBounds(w donburi.World, e *donburi.Entry) bool {
	tm, ok := components.TileMap.First(w)
	if !ok {
		return false
	}
	width, height := components.TileMap.Get(tm).Bounds()
	pos := components.Position.Get(e)
	return pos.X < 0 || pos.Y < 0 || pos.X > width || pos.Y > height
}
