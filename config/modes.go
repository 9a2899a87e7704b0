package config

import "fmt"

// GameMode selects who plays a match
type GameMode int

const (
	ModeVsAI GameMode = iota
	ModeTwoPlayer
	ModeSurvival
)

func (m GameMode) String() string {
	switch m {
	case ModeVsAI:
		return "1 Player"
	case ModeTwoPlayer:
		return "2 Players"
	case ModeSurvival:
		return "Survival"
	}
	return fmt.Sprintf("GameMode(%d)", int(m))
}

// SpeedRamp selects how serve speed evolves over a match
type SpeedRamp int

const (
	// RampFixed uses the difficulty tier as the speed component
	RampFixed SpeedRamp = iota
	// RampStreak increments the serve streak on every serve and scales with it
	RampStreak
	// RampAscending uses a fixed seed and grows velocity every tick
	RampAscending
)

// Difficulty tiers as shown in the setup menu
const (
	TierEasy      = 1
	TierMedium    = 2
	TierHard      = 3
	TierAscending = 4
)

// MatchSetup is the full description of a match to start
type MatchSetup struct {
	Mode GameMode  `json:"mode"`
	Ramp SpeedRamp `json:"ramp"`
	Tier int       `json:"tier"`
}

// SetupFromDifficulty maps the stored difficulty tag (0 survival, 1..3 tiers,
// 4 ascending) onto a setup for the given mode.
func SetupFromDifficulty(mode GameMode, difficulty int) MatchSetup {
	switch {
	case difficulty == 0 || mode == ModeSurvival:
		return MatchSetup{Mode: ModeSurvival, Ramp: RampStreak}
	case difficulty == TierAscending:
		return MatchSetup{Mode: mode, Ramp: RampAscending}
	}
	return MatchSetup{Mode: mode, Ramp: RampFixed, Tier: difficulty}
}

// Difficulty returns the difficulty tag for this setup
func (s MatchSetup) Difficulty() int {
	switch s.Ramp {
	case RampStreak:
		return 0
	case RampAscending:
		return TierAscending
	}
	return s.Tier
}

// Song returns the match song for this setup
func (s MatchSetup) Song() SongID {
	switch s.Mode {
	case ModeTwoPlayer:
		return SongTwoPlayer
	case ModeSurvival:
		return SongSurvival
	}
	switch s.Tier {
	case TierEasy:
		return SongEasy
	case TierHard:
		return SongHard
	}
	return SongMedium
}

// HasAI reports whether the left paddle is computer controlled
func (s MatchSetup) HasAI() bool {
	return s.Mode != ModeTwoPlayer
}

// Validate checks the setup is playable
func (s MatchSetup) Validate() error {
	if s.Mode < ModeVsAI || s.Mode > ModeSurvival {
		return fmt.Errorf("unknown game mode %d", s.Mode)
	}
	if s.Ramp == RampFixed && (s.Tier < TierEasy || s.Tier > TierHard) {
		return fmt.Errorf("fixed ramp needs a tier in 1..3, got %d", s.Tier)
	}
	if s.Ramp < RampFixed || s.Ramp > RampAscending {
		return fmt.Errorf("unknown speed ramp %d", s.Ramp)
	}
	return nil
}
