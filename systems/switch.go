package systems

import (
	"fmt"

	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSwitches presses and releases switches under the player. Transitions
// happen only on the frame the overlap starts or ends.
func UpdateSwitches(ecs *ecs.ECS) {
	tags.Switch.Each(ecs.World, func(e *donburi.Entry) {
		sw := components.Switch.Get(e)
		over := playerOnSwitch(sw.Player, e)

		switch {
		case over && !sw.Pressed:
			pressSwitch(ecs, e)
		case !over && sw.Pressed:
			releaseSwitch(ecs, e)
		}
	})
}

func playerOnSwitch(player, sw *donburi.Entry) bool {
	if player == nil || !player.Valid() {
		return false
	}
	pc := components.Collider.Get(player)
	sc := components.Collider.Get(sw)
	return collision.Overlaps(
		pc.Shape, *components.Position.Get(player),
		sc.Shape, *components.Position.Get(sw),
	)
}

func pressSwitch(ecs *ecs.ECS, e *donburi.Entry) {
	sw := components.Switch.Get(e)
	mustBeBound(sw)
	sw.Pressed = true
	components.Sprite.Get(e).Kind = components.SpriteSwitchDown

	ActivateTrap(ecs, sw.Trap)

	Scheduler(ecs.World).Cancel(sw.ReleaseTask)
	sw.ReleaseTask = 0
}

// releaseSwitch turns the trap off now but leaves the plate looking pressed for a
// moment, like a spring pushing it back up.
func releaseSwitch(ecs *ecs.ECS, e *donburi.Entry) {
	sw := components.Switch.Get(e)
	mustBeBound(sw)
	sw.Pressed = false

	sw.ReleaseTask = Scheduler(ecs.World).Run(
		tasks.Do(func() { DeactivateTrap(ecs, sw.Trap) }),
		tasks.Wait(cfg.Traps.SwitchReleaseDelay),
		tasks.Do(func() {
			if !e.Valid() {
				return
			}
			components.Sprite.Get(e).Kind = components.SpriteSwitchUp
			components.Switch.Get(e).ReleaseTask = 0
		}),
	)
}

// mustBeBound panics for a switch whose trap was never resolved. Bind rejects
// such levels, so reaching this means the world skipped Bind.
func mustBeBound(sw *components.SwitchData) {
	if sw.Trap == nil {
		panic(fmt.Sprintf("switch wired to %q has no trap bound", sw.TrapName))
	}
}
