package components

import (
	"github.com/automoto/trapdoor/collision"
	"github.com/yohamta/donburi"
)

// Position is the world-space centre and rotation of a body.
var Position = donburi.NewComponentType[collision.Position]()
