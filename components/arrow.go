package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ArrowData struct {
	Velocity math.Vec2 // Pixels per second
}

var Arrow = donburi.NewComponentType[ArrowData]()
