package systems

import (
	"log"
	"math"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

// KillPlayer starts the player's death sequence and queues a level restart.
// Killing a dead player does nothing.
func KillPlayer(w donburi.World, e *donburi.Entry, cause components.DeathCause) {
	if !alive(e) {
		return
	}
	sched := Scheduler(w)
	e.AddComponent(components.Death)
	components.Death.SetValue(e, components.DeathData{Cause: cause, At: sched.Now()})

	if cause == components.DeathFell {
		StartFalling(e)
	} else {
		components.Sprite.Get(e).Rotation = -math.Pi / 2
	}

	withStats(w, func(s *components.RunStats) { s.Deaths++ })
	log.Printf("player %s at %.1fs", cause, sched.Now().Seconds())

	sched.Run(
		tasks.Wait(cfg.Player.RestartDelay),
		tasks.Do(func() { RequestRestart(w) }),
	)
}

// dropEnemy plays the falling animation and removes the enemy once it is over.
func dropEnemy(w donburi.World, e *donburi.Entry) {
	sched := Scheduler(w)
	e.AddComponent(components.Death)
	components.Death.SetValue(e, components.DeathData{Cause: components.DeathFell, At: sched.Now()})
	StartFalling(e)

	sched.Run(
		tasks.Wait(cfg.Enemy.RemoveDelay),
		tasks.Do(func() { Destroy(w, e) }),
	)
}

// PlayerDeath returns how the player died, if it has.
func PlayerDeath(w donburi.World) (components.DeathData, bool) {
	e, ok := tags.Player.First(w)
	if !ok || !e.HasComponent(components.Death) {
		return components.DeathData{}, false
	}
	return *components.Death.Get(e), true
}
