package config

import (
	"image/color"
	"os"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64       // Pixels per second
	Width        float64       // Collision box, slightly smaller than a tile
	Height       float64
	RestartDelay time.Duration // Time between death and level restart
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Speed         float64 // Pixels per second
	Width         float64
	Height        float64
	RemoveDelay   time.Duration // Time an enemy keeps falling before it is removed
	ArriveEpsilon float64       // Distance at which an enemy counts as back home
}

// TrapConfig contains timings for pits, switches and arrow spawners
type TrapConfig struct {
	PitCloseDelay      time.Duration // Delay between pit deactivate and the pit vanishing
	SwitchReleaseDelay time.Duration // Delay before a released switch looks unpressed
	SpawnerPeriod      time.Duration // Default arrow spawner cadence
	SwitchSize         float64
}

// ArrowConfig contains arrow projectile configuration
type ArrowConfig struct {
	Speed  float64 // Pixels per second
	Width  float64
	Height float64
}

// ObjectConfig contains sizes of static pickups and props
type ObjectConfig struct {
	KeySize  float64
	DoorSize float64
	SignSize float64
}

// SignConfig contains sign text display configuration
type SignConfig struct {
	ShowDuration time.Duration
	WobblePeriod time.Duration
	WobbleDegree float64
	TextColor    color.RGBA
}

// FallConfig contains the falling animation used for pits
type FallConfig struct {
	Duration time.Duration
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DeadZone   float64 // Distance from view centre before the camera moves
	FollowRate float64 // Lerp factor per second
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	Scale    int
	TickRate int
	TileSize int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Traps TrapConfig
var Arrow ArrowConfig
var Objects ObjectConfig
var Sign SignConfig
var Fall FallConfig
var Camera CameraConfig
var Debug DebugConfig

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Collision bool // Log solid contacts (DEBUG_COLLISION)
	Traps     bool // Log trap and switch transitions (DEBUG_TRAPS)
	Overlay   bool // Draw collider outlines
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold       = color.RGBA{R: 230, G: 190, B: 40, A: 255}
	Brown      = color.RGBA{R: 120, G: 75, B: 30, A: 255}
	Stone      = color.RGBA{R: 70, G: 66, B: 80, A: 255}
	Floor      = color.RGBA{R: 28, G: 24, B: 34, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Translucid = color.RGBA{R: 255, G: 255, B: 255, A: 90}
)

// Tick returns the fixed simulation step.
func (c *Config) Tick() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func init() {
	C = &Config{
		Width:    320,
		Height:   180,
		Scale:    4,
		TickRate: 60,
		TileSize: 16,
	}

	Player = PlayerConfig{
		Speed:        40,
		Width:        15,
		Height:       15,
		RestartDelay: 2 * time.Second,
	}

	Enemy = EnemyConfig{
		Speed:         40,
		Width:         15,
		Height:        15,
		RemoveDelay:   time.Second,
		ArriveEpsilon: 0.01,
	}

	Traps = TrapConfig{
		PitCloseDelay:      time.Second,
		SwitchReleaseDelay: time.Second,
		SpawnerPeriod:      time.Second,
		SwitchSize:         16,
	}

	Arrow = ArrowConfig{
		Speed:  40,
		Width:  8,
		Height: 4,
	}

	Objects = ObjectConfig{
		KeySize:  16,
		DoorSize: 16,
		SignSize: 16,
	}

	Sign = SignConfig{
		ShowDuration: 1500 * time.Millisecond,
		WobblePeriod: time.Second,
		WobbleDegree: 15,
		TextColor:    White,
	}

	Fall = FallConfig{
		Duration: time.Second,
	}

	Camera = CameraConfig{
		DeadZone:   8,
		FollowRate: 6,
	}

	Debug = DebugConfig{
		Collision: os.Getenv("DEBUG_COLLISION") != "",
		Traps:     os.Getenv("DEBUG_TRAPS") != "",
		Overlay:   false,
	}
}
