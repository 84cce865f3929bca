package config

import "github.com/yohamta/donburi/ecs"

// Render/update layers. Everything currently lives on the default layer.
const (
	Default ecs.LayerID = iota
)
