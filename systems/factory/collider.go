package factory

import (
	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// setBody places e at pos and gives it a collider. When the world has a
// resolv space the collider also gets a proxy there, linked back to e.
func setBody(ecs *ecs.ECS, e *donburi.Entry, pos collision.Position, shape *collision.Shape, enabled, trigger bool, resolvTag string) {
	components.Position.SetValue(e, pos)

	col := components.ColliderData{
		Shape:   shape,
		Enabled: enabled,
		Trigger: trigger,
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := resolv.NewObject(pos.X, pos.Y, 1, 1, tags.ResolvCollider, resolvTag)
		obj.Data = e // Link for O(1) lookup
		components.Space.Get(spaceEntry).Add(obj)
		col.Proxy = obj
	}

	components.Collider.SetValue(e, col)
	components.Collider.Get(e).Fit(pos)
}

// sized returns w and h, or fallback for a point object.
func sized(w, h, fallback float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return fallback, fallback
	}
	return w, h
}

func visible(kind components.SpriteKind) components.SpriteData {
	return components.SpriteData{Kind: kind, Visible: true, Scale: 1}
}
