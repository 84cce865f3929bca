package systems

import (
	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CollisionInfo is one contact seen by a resolver call. Object is the peer's
// entity, the tile map singleton for wall contacts.
type CollisionInfo struct {
	Object    *donburi.Entry
	Response  collision.Result
	IsTrigger bool
}

// MoveAndCollide translates e by d, then reverts to where it started if any
// solid peer overlaps the destination. Every contact is returned either way.
func MoveAndCollide(w donburi.World, e *donburi.Entry, d math.Vec2) []CollisionInfo {
	pos := components.Position.Get(e)
	col := components.Collider.Get(e)

	origin := *pos
	*pos = origin.Translate(d)
	SyncCollider(e)

	var contacts []CollisionInfo
	blocked := false
	for _, peer := range Peers(w, e) {
		r, ok := peer.Test(col.Shape, *pos)
		if !ok {
			continue
		}
		trigger := peer.IsTrigger()
		contacts = append(contacts, CollisionInfo{
			Object:    peer.Entry,
			Response:  r,
			IsTrigger: trigger,
		})
		if !trigger {
			blocked = true
		}
	}

	if blocked {
		debugBlocked(e, d, contacts)
		*pos = origin
		SyncCollider(e)
	}

	return contacts
}

// MoveAndSlide moves along x, then along y from wherever x left the body. A
// wall on one axis does not stop motion on the other. Peers touched on both
// axes are reported once, in the order first seen.
func MoveAndSlide(w donburi.World, e *donburi.Entry, d math.Vec2) []CollisionInfo {
	xs := MoveAndCollide(w, e, math.NewVec2(d.X, 0))
	ys := MoveAndCollide(w, e, math.NewVec2(0, d.Y))

	contacts := make([]CollisionInfo, 0, len(xs)+len(ys))
	seen := make(map[donburi.Entity]bool, len(xs)+len(ys))
	for _, c := range append(xs, ys...) {
		id := c.Object.Entity()
		if seen[id] {
			continue
		}
		seen[id] = true
		contacts = append(contacts, c)
	}
	return contacts
}

// SyncCollider fits e's broadphase proxy around its shape at its current position.
func SyncCollider(e *donburi.Entry) {
	components.Collider.Get(e).Fit(*components.Position.Get(e))
}
