package systems

import (
	"log"
	"time"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActivateTrap switches a trap on. It is the only way switches reach traps.
func ActivateTrap(ecs *ecs.ECS, trap *donburi.Entry) {
	if trap == nil || !trap.Valid() {
		return
	}
	data := components.Trap.Get(trap)
	debugTrap(data, "activate")

	switch data.Kind {
	case components.TrapPit:
		openPit(ecs.World, trap)
	case components.TrapArrowSpawner:
		startSpawner(ecs, trap)
	}
}

// DeactivateTrap switches a trap off.
func DeactivateTrap(ecs *ecs.ECS, trap *donburi.Entry) {
	if trap == nil || !trap.Valid() {
		return
	}
	data := components.Trap.Get(trap)
	debugTrap(data, "deactivate")

	switch data.Kind {
	case components.TrapPit:
		closePit(ecs.World, trap)
	case components.TrapArrowSpawner:
		stopSpawner(ecs.World, trap)
	}
}

// openPit shows the pit and makes it a trigger, so bodies walk in and fall.
func openPit(w donburi.World, e *donburi.Entry) {
	pit := components.Pit.Get(e)
	Scheduler(w).Cancel(pit.CloseTask)
	pit.CloseTask = 0

	col := components.Collider.Get(e)
	col.Trigger = true
	col.Enabled = true
	components.Sprite.Get(e).Visible = true
}

// closePit turns the pit solid straight away, then hides and disables it once
// the close delay has passed.
func closePit(w donburi.World, e *donburi.Entry) {
	components.Collider.Get(e).Trigger = false

	sched := Scheduler(w)
	pit := components.Pit.Get(e)
	sched.Cancel(pit.CloseTask)
	pit.CloseTask = sched.Run(
		tasks.Wait(cfg.Traps.PitCloseDelay),
		tasks.Do(func() {
			if !e.Valid() {
				return
			}
			components.Collider.Get(e).Enabled = false
			components.Sprite.Get(e).Visible = false
			components.Pit.Get(e).CloseTask = 0
		}),
	)
}

// startSpawner begins firing. An arrow never leaves sooner than Period after the
// previous one, even across a stop and restart. Starting a running spawner does nothing.
func startSpawner(ecs *ecs.ECS, e *donburi.Entry) {
	sched := Scheduler(ecs.World)
	sp := components.ArrowSpawner.Get(e)
	if sched.Pending(sp.Task) {
		return
	}

	var delay time.Duration
	if sp.HasFired {
		delay = sp.Period - (sched.Now() - sp.LastFire)
		if delay < 0 {
			delay = 0
		}
	}

	if delay == 0 {
		spawnerLoop(ecs, e)
		return
	}

	// spawnerLoop stores its own handle once the wait is over, so only keep
	// this one while it is still waiting.
	h := sched.Run(tasks.Wait(delay), tasks.Do(func() {
		spawnerLoop(ecs, e)
	}))
	if sched.Pending(h) {
		sp.Task = h
	}
}

// spawnerLoop fires one arrow and queues the next, replacing the spawner's task handle.
func spawnerLoop(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	fireArrow(ecs, e)

	sched := Scheduler(ecs.World)
	sp := components.ArrowSpawner.Get(e)
	sp.Task = sched.Run(tasks.Wait(sp.Period), tasks.Do(func() {
		spawnerLoop(ecs, e)
	}))
}

func stopSpawner(w donburi.World, e *donburi.Entry) {
	sp := components.ArrowSpawner.Get(e)
	Scheduler(w).Cancel(sp.Task)
	sp.Task = 0
}

func fireArrow(ecs *ecs.ECS, spawner *donburi.Entry) {
	sp := components.ArrowSpawner.Get(spawner)
	sp.LastFire = Scheduler(ecs.World).Now()
	sp.HasFired = true

	pos := components.Position.Get(spawner)
	factory.CreateArrow(ecs, pos.X, pos.Y, sp.Angle)

	withStats(ecs.World, func(s *components.RunStats) { s.ArrowsFired++ })
}

func debugTrap(data *components.TrapData, action string) {
	if !cfg.Debug.Traps {
		return
	}
	log.Printf("trap: %s %q %s", action, data.Name, data.Kind)
}
