package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/systems"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnboundTrap = errors.New("sim: switch names an unknown trap")

// Bind resolves every switch's trap name and player reference, then starts the
// spawners that are active from the beginning. It must run once, after every
// entity exists and before the first tick.
func Bind(e *ecs.ECS) error {
	traps := make(map[string]*donburi.Entry)
	components.Trap.Each(e.World, func(entry *donburi.Entry) {
		traps[components.Trap.Get(entry).Name] = entry
	})

	player, _ := tags.Player.First(e.World)

	var err error
	tags.Switch.Each(e.World, func(entry *donburi.Entry) {
		if err != nil {
			return
		}
		sw := components.Switch.Get(entry)
		trap, ok := traps[sw.TrapName]
		if !ok {
			err = fmt.Errorf("switch wired to %q: %w", sw.TrapName, ErrUnboundTrap)
			return
		}
		sw.Trap = trap
		sw.Player = player
	})
	if err != nil {
		return err
	}

	var active []*donburi.Entry
	tags.ArrowSpawner.Each(e.World, func(entry *donburi.Entry) {
		if components.ArrowSpawner.Get(entry).ActiveOnStart {
			active = append(active, entry)
		}
	})
	for _, entry := range active {
		systems.ActivateTrap(e, entry)
	}
	return nil
}
