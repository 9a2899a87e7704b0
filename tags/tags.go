package tags

import "github.com/yohamta/donburi"

var (
	Ball    = donburi.NewTag().SetName("Ball")
	Paddle  = donburi.NewTag().SetName("Paddle")
	PowerUp = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for the match space
const (
	ResolvBall    = "ball"
	ResolvPaddle  = "paddle"
	ResolvPowerUp = "powerup"
)
