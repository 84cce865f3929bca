package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FallingData shrinks an entity's sprite while it drops into a pit.
type FallingData struct {
	Tween *gween.Tween
}

var Falling = donburi.NewComponentType[FallingData]()
