package components

import (
	"github.com/automoto/trapdoor/collision"
	"github.com/yohamta/donburi"
)

// TileMap holds the static wall broadphase. Its entity is the Object reported
// for every tile contact.
var TileMap = donburi.NewComponentType[collision.TileMap]()
