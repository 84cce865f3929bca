package systems

import (
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart lets the player give up on a run.
func UpdateRestart(ecs *ecs.ECS) {
	input, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(components.Input.Get(input), cfg.ActionRestart).JustPressed {
		RequestRestart(ecs.World)
	}
}

// RequestRestart flags the level for a rebuild.
func RequestRestart(w donburi.World) {
	if entry, ok := components.Level.First(w); ok {
		components.Level.Get(entry).RestartRequested = true
	}
}

// RestartRequested reports whether the world should be thrown away and rebuilt.
func RestartRequested(w donburi.World) bool {
	entry, ok := components.Level.First(w)
	return ok && components.Level.Get(entry).RestartRequested
}
