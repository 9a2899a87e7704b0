package systems

import (
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddleInput moves the human paddles. Pointers on the right half of the
// field drive Player 1, on the left half Player 2 (two-player matches only).
// Keyboard and gamepad move paddles at a fixed speed.
func UpdatePaddleInput(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok {
		return
	}
	twoPlayer := s.match.Setup.Mode == cfg.ModeTwoPlayer

	movedP1, movedP2 := false, false
	for _, p := range s.input.Pointers {
		switch {
		case p.X >= cfg.Field.SplitX && !movedP1:
			movePaddleTo(s.p1, p.Y)
			movedP1 = true
		case p.X < cfg.Field.SplitX && twoPlayer && !movedP2:
			movePaddleTo(s.left, p.Y)
			movedP2 = true
		}
	}

	step := cfg.Paddle.KeyboardSpeed * s.match.Delta
	if !movedP1 {
		movePaddleBy(s.p1, actionAxis(s.input, cfg.ActionP1Up, cfg.ActionP1Down)*step)
	}
	if twoPlayer && !movedP2 {
		movePaddleBy(s.left, actionAxis(s.input, cfg.ActionP2Up, cfg.ActionP2Down)*step)
	}
}

func movePaddleTo(p *components.PaddleData, y float64) {
	if p.Frozen {
		return
	}
	p.FollowPointer(y)
}

func movePaddleBy(p *components.PaddleData, dy float64) {
	if p.Frozen || dy == 0 {
		return
	}
	p.MoveBy(dy)
}

func actionAxis(in *components.InputData, up, down cfg.ActionID) float64 {
	var axis float64
	if in.Action(up).Pressed {
		axis--
	}
	if in.Action(down).Pressed {
		axis++
	}
	return axis
}
