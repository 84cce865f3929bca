package systems

import (
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view towards the player once the player leaves a small
// dead zone around the view centre.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Position.Get(playerEntry)

	t := config.Camera.FollowRate * config.C.Tick().Seconds()
	camera.Position.X = follow(camera.Position.X, target.X, config.Camera.DeadZone, t)
	camera.Position.Y = follow(camera.Position.Y, target.Y, config.Camera.DeadZone, t)
}

// follow moves view towards target until target sits offset away from it.
func follow(view, target, offset, t float64) float64 {
	switch {
	case target-view > offset:
		return lerp(view, target-offset, t)
	case view-target > offset:
		return lerp(view, target+offset, t)
	}
	return view
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
