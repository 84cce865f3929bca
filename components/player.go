package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Keys     int     // Keys carried
	Speed    float64 // Pixels per second
	LastMove Vector  // Displacement requested on the last tick
}

var Player = donburi.NewComponentType[PlayerData]()

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}
