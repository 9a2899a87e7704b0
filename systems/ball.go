package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall integrates the ball over the tick delta
func UpdateBall(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok {
		return
	}
	s.ball.Update(s.match.Delta)
}

// UpdateBallBounds bounces the ball off the top and bottom of the field
func UpdateBallBounds(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok {
		return
	}
	s.ball.ClampToScreen(s.audio)
}
