package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Home    math.Vec2 // Where the enemy returns when it loses sight of the player
	Speed   float64   // Pixels per second
	Chasing bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
