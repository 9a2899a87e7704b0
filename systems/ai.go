package systems

import (
	"github.com/automoto/xtremepaddle/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAI moves the CPU paddle toward the ball. Frozen paddles stay put.
func UpdateAI(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok || !s.match.Setup.HasAI() {
		return
	}
	if s.left.Role != components.RoleAI || s.left.Frozen {
		return
	}

	speed := components.AISpeed(s.match.Setup, s.ball.Streak)
	s.left.UpdateAI(s.match.Delta, s.ball, speed)
}
