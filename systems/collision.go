package systems

import (
	"log"

	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PeerKind is the closed set of things a mover can collide with.
type PeerKind int

const (
	PeerTiles PeerKind = iota
	PeerDynamic
)

// Peer is a collidable candidate for a moving body.
type Peer struct {
	Kind  PeerKind
	Entry *donburi.Entry
}

// Test runs the overlap test of shape at pos against the peer.
func (p Peer) Test(shape *collision.Shape, pos collision.Position) (collision.Result, bool) {
	switch p.Kind {
	case PeerTiles:
		return components.TileMap.Get(p.Entry).Test(shape, pos)
	case PeerDynamic:
		col := components.Collider.Get(p.Entry)
		return collision.Test(shape, pos, col.Shape, *components.Position.Get(p.Entry))
	}
	return collision.Result{}, false
}

// IsTrigger reports whether contacts with the peer let the mover through.
func (p Peer) IsTrigger() bool {
	if p.Kind == PeerTiles {
		return false
	}
	return components.Collider.Get(p.Entry).Trigger
}

// Peers lists everything e can collide with: the tile map first, then every other
// entity with an enabled collider near e. Without a resolv space all colliders
// are candidates.
func Peers(w donburi.World, e *donburi.Entry) []Peer {
	var peers []Peer
	if tm, ok := tags.TileMap.First(w); ok {
		peers = append(peers, Peer{Kind: PeerTiles, Entry: tm})
	}

	add := func(other *donburi.Entry) {
		if other == nil || !other.Valid() || other.Entity() == e.Entity() {
			return
		}
		if !other.HasComponent(components.Collider) || !components.Collider.Get(other).Enabled {
			return
		}
		peers = append(peers, Peer{Kind: PeerDynamic, Entry: other})
	}

	col := components.Collider.Get(e)
	if col.Proxy == nil || col.Proxy.Space == nil {
		components.Collider.Each(w, add)
		return peers
	}

	check := col.Proxy.Check(0, 0, tags.ResolvCollider)
	if check == nil {
		return peers
	}
	seen := make(map[donburi.Entity]bool, len(check.Objects))
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*donburi.Entry)
		if !ok || !other.Valid() || seen[other.Entity()] {
			continue
		}
		seen[other.Entity()] = true
		add(other)
	}
	return peers
}

func debugBlocked(e *donburi.Entry, d math.Vec2, contacts []CollisionInfo) {
	if !cfg.Debug.Collision {
		return
	}
	for _, c := range contacts {
		if c.IsTrigger {
			continue
		}
		log.Printf("collision: %v blocked by %v moving (%.2f, %.2f), overlap %.3f",
			e.Entity(), c.Object.Entity(), d.X, d.Y, c.Response.Overlap)
	}
}
