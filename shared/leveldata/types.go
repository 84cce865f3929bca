// Package leveldata provides TMX level parsing for the dungeon engine.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import "time"

// Level holds everything parsed from a TMX level file.
type Level struct {
	Name       string
	Width      int // Cells
	Height     int
	TileWidth  int
	TileHeight int
	Solid      []bool // Row-major, one entry per cell of the Walls layer

	Player        Spawn
	Enemies       []Spawn
	Pits          []Spawn
	ArrowSpawners []SpawnerSpawn
	Switches      []SwitchSpawn
	Keys          []Spawn
	Doors         []Spawn
	Signs         []SignSpawn
}

// PixelSize returns the world size of the level.
func (l *Level) PixelSize() (int, int) {
	return l.Width * l.TileWidth, l.Height * l.TileHeight
}

// Spawn is a placed object. X and Y are the top-left corner as stored by Tiled.
type Spawn struct {
	Name string
	X, Y float64
	W, H float64
}

// Center returns the middle of the object's rectangle. Point objects are their own centre.
func (s Spawn) Center() (float64, float64) {
	return s.X + s.W/2, s.Y + s.H/2
}

// SpawnerSpawn is an arrow trap.
type SpawnerSpawn struct {
	Spawn
	Angle  float64       // Degrees, 0 points right
	Period time.Duration // Zero means use the configured default
	Active bool          // Start firing as soon as the level is bound
}

// SwitchSpawn is a pressure plate wired to a trap by name.
type SwitchSpawn struct {
	Spawn
	TrapName string
}

// SignSpawn is a readable sign.
type SignSpawn struct {
	Spawn
	Text string
}
