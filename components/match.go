package components

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
)

// Outcome is how a match ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRightWon
	OutcomeLeftWon
	OutcomeSurvivalOver
)

// MatchData stores the state of the running match.
// This is a singleton component - one per match world.
type MatchData struct {
	Setup      cfg.MatchSetup
	ScoreRight int // Player 1
	ScoreLeft  int // Player 2 or the CPU
	Xtreme     bool
	Vibrate    bool
	// SpawnTimer counts down to the next power-up, in seconds
	SpawnTimer float64
	// Delta is the simulated time of the current tick, in seconds
	Delta   float64
	Outcome Outcome
	// VibrateRequested is raised for the host when a point is scored
	VibrateRequested bool
	SpawnZone        Rect
	Rand             Rand
}

var Match = donburi.NewComponentType[MatchData]()

// AddPoint scores for the side the ball did not leave through. side is the
// IsOffscreen result: 1 means the ball left on the right.
func (m *MatchData) AddPoint(side int) {
	switch {
	case side > 0:
		m.ScoreLeft++
	case side < 0:
		m.ScoreRight++
	}
	if m.Vibrate {
		m.VibrateRequested = true
	}
	m.Outcome = m.checkOutcome(side)
}

func (m *MatchData) checkOutcome(side int) Outcome {
	if m.Setup.Mode == cfg.ModeSurvival {
		if side > 0 {
			return OutcomeSurvivalOver
		}
		return OutcomeNone
	}
	switch {
	case m.ScoreRight >= cfg.Match.WinningScore:
		return OutcomeRightWon
	case m.ScoreLeft >= cfg.Match.WinningScore:
		return OutcomeLeftWon
	}
	return OutcomeNone
}

// Streak is the survival score: points the player took off the CPU
func (m *MatchData) Streak() int {
	return m.ScoreRight
}

// Over reports whether the match has been decided
func (m *MatchData) Over() bool {
	return m.Outcome != OutcomeNone
}
