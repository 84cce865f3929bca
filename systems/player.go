package systems

import (
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	e, ok := tags.Player.First(ecs.World)
	if !ok || !alive(e) {
		return
	}
	player := components.Player.Get(e)

	var dir components.Vector
	if input, ok := components.Input.First(ecs.World); ok {
		in := components.Input.Get(input)
		if GetAction(in, cfg.ActionMoveRight).Pressed {
			dir.X = 1
		} else if GetAction(in, cfg.ActionMoveLeft).Pressed {
			dir.X = -1
		}
		if GetAction(in, cfg.ActionMoveDown).Pressed {
			dir.Y = 1
		} else if GetAction(in, cfg.ActionMoveUp).Pressed {
			dir.Y = -1
		}
	}

	step := player.Speed * cfg.C.Tick().Seconds()
	player.LastMove = components.Vector{X: dir.X * step, Y: dir.Y * step}

	contacts := MoveAndSlide(ecs.World, e, dmath.NewVec2(player.LastMove.X, player.LastMove.Y))
	for _, c := range contacts {
		if !alive(e) {
			return
		}
		handlePlayerContact(ecs, e, c)
	}
}

func handlePlayerContact(ecs *ecs.ECS, e *donburi.Entry, c CollisionInfo) {
	other := c.Object
	if !other.Valid() {
		return
	}
	switch {
	case other.HasComponent(tags.Key):
		collectKey(ecs.World, e, other)
	case other.HasComponent(tags.Door):
		openDoor(ecs.World, e, other)
	case other.HasComponent(tags.Sign):
		ShowSign(ecs.World, other)
	case other.HasComponent(tags.Pit):
		if c.Response.AInB {
			KillPlayer(ecs.World, e, components.DeathFell)
		}
	case other.HasComponent(tags.Enemy):
		KillPlayer(ecs.World, e, components.DeathCaught)
	case other.HasComponent(tags.Arrow):
		KillPlayer(ecs.World, e, components.DeathShot)
	}
}

func withStats(w donburi.World, fn func(*components.RunStats)) {
	if entry, ok := components.Level.First(w); ok {
		fn(&components.Level.Get(entry).Stats)
	}
}
