package config

import "github.com/yohamta/donburi/ecs"

// Render layers of a match world, drawn in order
const (
	Default ecs.LayerID = iota
	Overlay
)
