package systems

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddleCollisions bounces the ball off the paddle it is travelling
// toward: Player 1 on the right, the other paddle on the left.
func UpdatePaddleCollisions(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok {
		return
	}

	var hit bool
	switch {
	case s.ball.Velocity.X > 0:
		hit = s.p1.Collide(s.ball)
	case s.ball.Velocity.X < 0:
		hit = s.left.Collide(s.ball)
	}
	if hit {
		s.audio.Notify(cfg.SoundPlink)
	}
}
