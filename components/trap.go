package components

import (
	"time"

	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

// TrapKind is the closed set of things a switch can drive.
type TrapKind int

const (
	TrapPit TrapKind = iota
	TrapArrowSpawner
)

func (k TrapKind) String() string {
	switch k {
	case TrapPit:
		return "pit"
	case TrapArrowSpawner:
		return "arrow spawner"
	default:
		return "unknown"
	}
}

// TrapData names a trap so switches can find it during bind.
type TrapData struct {
	Name string
	Kind TrapKind
}

var Trap = donburi.NewComponentType[TrapData]()

// PitData tracks the delayed close that follows a deactivate.
type PitData struct {
	CloseTask tasks.Handle
}

var Pit = donburi.NewComponentType[PitData]()

// ArrowSpawnerData is the firing state of an arrow trap.
type ArrowSpawnerData struct {
	Angle         float64       // Radians
	Period        time.Duration // Minimum time between two arrows
	LastFire      time.Duration // Scheduler time of the last arrow
	HasFired      bool
	Task          tasks.Handle // Pending fire loop, zero when idle
	ActiveOnStart bool
}

var ArrowSpawner = donburi.NewComponentType[ArrowSpawnerData]()
