package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathCause records what killed an entity.
type DeathCause int

const (
	DeathFell DeathCause = iota
	DeathShot
	DeathCaught
)

func (c DeathCause) String() string {
	switch c {
	case DeathFell:
		return "fell"
	case DeathShot:
		return "shot"
	case DeathCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// DeathData marks an entity that has started its death sequence.
// Dead entities keep their collider shape but stop moving and reacting.
type DeathData struct {
	Cause DeathCause
	At    time.Duration // Scheduler time of death
}

var Death = donburi.NewComponentType[DeathData]()
