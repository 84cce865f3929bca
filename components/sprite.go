package components

import (
	"github.com/yohamta/donburi"
)

// SpriteKind selects how an entity is drawn.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpritePit
	SpriteSwitchUp
	SpriteSwitchDown
	SpriteSpawner
	SpriteArrow
	SpriteKey
	SpriteDoor
	SpriteSign
)

type SpriteData struct {
	Kind     SpriteKind
	Visible  bool
	Scale    float64
	Rotation float64 // Extra rotation on top of the body's, e.g. a toppled player
}

var Sprite = donburi.NewComponentType[SpriteData]()
