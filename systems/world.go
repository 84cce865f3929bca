package systems

import (
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/tasks"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Scheduler returns the world's task scheduler. Every world built by the
// factories has exactly one.
func Scheduler(w donburi.World) *tasks.Scheduler {
	entry, ok := components.Scheduler.First(w)
	if !ok {
		panic("systems: world has no scheduler")
	}
	return components.Scheduler.Get(entry)
}

func space(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}

// Destroy removes an entity and its broadphase proxy. Destroying an entity
// that is already gone is a no-op.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Collider) {
		col := components.Collider.Get(e)
		if sp := space(w); sp != nil && col.Proxy != nil {
			sp.Remove(col.Proxy)
		}
		col.Proxy = nil
	}
	w.Remove(e.Entity())
}

// alive reports whether e still exists and has not started dying.
func alive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !e.HasComponent(components.Death)
}
