package systems

import (
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// matchState bundles the singletons every match system reads
type matchState struct {
	match *components.MatchData
	audio *components.AudioData
	input *components.InputData
	ball  *components.BallData
	// p1 is the right paddle, left is Player 2 or the CPU
	p1   *components.PaddleData
	left *components.PaddleData
}

func getMatchState(e *ecs.ECS) (matchState, bool) {
	var s matchState

	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return s, false
	}
	s.match = components.Match.Get(matchEntry)
	s.audio = components.Audio.Get(matchEntry)
	s.input = components.Input.Get(matchEntry)

	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return s, false
	}
	s.ball = components.Ball.Get(ballEntry)

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		if p.Role == components.RolePlayer1 {
			s.p1 = p
		} else {
			s.left = p
		}
	})
	return s, s.p1 != nil && s.left != nil
}

// WithMatchRunning wraps a system so it only runs until the match is decided
func WithMatchRunning(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsMatchOver(e) {
			return
		}
		system(e)
	}
}

// IsMatchOver reports whether a side has won or the survival run ended
func IsMatchOver(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).Over()
}

// GetMatch returns the match singleton, or nil if the world has none
func GetMatch(e *ecs.ECS) *components.MatchData {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(matchEntry)
}

// UpdateScoring awards a point once the ball leaves the field and serves again
func UpdateScoring(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok {
		return
	}

	side := s.ball.IsOffscreen()
	if side == 0 {
		return
	}

	s.match.AddPoint(side)
	s.audio.Notify(cfg.SoundScore)
	if s.match.Over() {
		return
	}

	s.ball.Reset()
	s.ball.Place(s.match.Rand)
	s.p1.Reset()
	s.left.Reset()
}
