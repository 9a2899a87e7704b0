package scenes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/automoto/xtremepaddle/systems/factory"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type matchState struct {
	Setup   cfg.MatchSetup `json:"setup"`
	ScoreP1 int            `json:"scoreP1"`
	ScoreP2 int            `json:"scoreP2"`
	Streak  int            `json:"streak"`
}

// validate rejects a saved match that could never be decided normally
func (st matchState) validate() error {
	if err := st.Setup.Validate(); err != nil {
		return err
	}
	if st.ScoreP1 < 0 || st.ScoreP2 < 0 {
		return fmt.Errorf("negative score %d-%d", st.ScoreP1, st.ScoreP2)
	}
	if st.Setup.Mode == cfg.ModeSurvival {
		// the first CPU point ends a run; the player's streak is unbounded
		if st.ScoreP2 != 0 {
			return errors.New("survival run already over")
		}
	} else if st.ScoreP1 >= cfg.Match.WinningScore || st.ScoreP2 >= cfg.Match.WinningScore {
		return fmt.Errorf("match already decided at %d-%d", st.ScoreP1, st.ScoreP2)
	}
	if st.Streak < 0 {
		return fmt.Errorf("negative streak %d", st.Streak)
	}
	return nil
}

// MatchScreen runs one match in its own ECS world
type MatchScreen struct {
	Base
	saved    matchState
	ecs      *ecs.ECS
	finished bool
}

func NewMatchScreen(setup cfg.MatchSetup) *MatchScreen {
	return restoreMatchScreen(matchState{Setup: setup})
}

func restoreMatchScreen(st matchState) *MatchScreen {
	return &MatchScreen{
		Base:  newBase(cfg.Transition.Match, false, GestureNone),
		saved: st,
	}
}

func (s *MatchScreen) Setup() cfg.MatchSetup { return s.saved.Setup }

// World is the match ECS, nil until the screen has loaded
func (s *MatchScreen) World() *ecs.ECS { return s.ecs }

func (s *MatchScreen) LoadContent() {
	svc := s.Services()
	svc.Audio.StopSong()
	svc.Audio.PlaySong(s.saved.Setup.Song())

	s.ecs = s.buildWorld(svc)
	s.finished = false

	if svc.Host != nil {
		svc.Host.ResetElapsedTime()
	}
}

func (s *MatchScreen) UnloadContent() {
	s.saved = s.snapshot()
	s.ecs = nil
}

func (s *MatchScreen) buildWorld(svc *Services) *ecs.ECS {
	setup := s.saved.Setup
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(e)
	factory.CreateMatch(e, components.MatchData{
		Setup:      setup,
		ScoreRight: s.saved.ScoreP1,
		ScoreLeft:  s.saved.ScoreP2,
		Xtreme:     svc.Settings.Xtreme,
		Vibrate:    svc.Settings.Vibration,
		SpawnZone:  svc.SpawnZone(),
		Rand:       svc.Rand,
	})

	ball := components.Ball.Get(factory.CreateBall(e, setup, svc.Settings.BallRGBA()))
	ball.Streak = s.saved.Streak
	ball.Place(svc.Rand)

	left := components.RoleAI
	if !setup.HasAI() {
		left = components.RolePlayer2
	}
	factory.CreatePaddle(e, components.RolePlayer1, svc.Settings.PaddleColor(components.RolePlayer1), svc.P1Home())
	factory.CreatePaddle(e, left, svc.Settings.PaddleColor(left), svc.LeftHome())
	factory.CreatePowerUpPool(e)

	e.AddSystem(systems.WithMatchRunning(systems.UpdateBall))
	e.AddSystem(systems.WithMatchRunning(systems.UpdateAI))
	e.AddSystem(systems.WithMatchRunning(systems.UpdatePaddleInput))
	e.AddSystem(systems.WithMatchRunning(systems.UpdateBallBounds))
	e.AddSystem(systems.WithMatchRunning(systems.UpdatePaddleCollisions))
	e.AddSystem(systems.WithMatchRunning(systems.UpdateScoring))
	e.AddSystem(systems.WithMatchRunning(systems.UpdatePowerUps))
	e.AddSystem(systems.WithMatchRunning(systems.UpdateObjects))

	e.AddRenderer(cfg.Default, systems.NewCourtRenderer(svc.Theme()))
	e.AddRenderer(cfg.Default, systems.DrawPowerUps)
	e.AddRenderer(cfg.Default, systems.DrawPaddles)
	e.AddRenderer(cfg.Default, systems.DrawBall)
	e.AddRenderer(cfg.Overlay, systems.DrawMatchHUD)

	return e
}

func (s *MatchScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.Base.Update(dt, otherScreenHasFocus, coveredByOtherScreen)
	if s.ecs == nil || s.finished || !s.IsActive() {
		return
	}

	match := systems.GetMatch(s.ecs)
	match.Delta = dt
	s.ecs.Update()
	s.afterTick(match)
}

// afterTick hands the tick's side effects to the services
func (s *MatchScreen) afterTick(match *components.MatchData) {
	svc := s.Services()
	entry, _ := components.Match.First(s.ecs.World)

	for _, id := range components.Audio.Get(entry).Drain() {
		svc.Audio.PlaySFX(id)
	}
	components.Input.Get(entry).Advance()

	if match.VibrateRequested {
		match.VibrateRequested = false
		if svc.Host != nil {
			svc.Host.Vibrate(cfg.Match.VibrateDuration)
		}
	}

	if match.Over() {
		s.finish(match)
	}
}

// finish stops the music before the result jingle and shows the result
func (s *MatchScreen) finish(match *components.MatchData) {
	s.finished = true
	svc := s.Services()
	m := s.Manager()
	setup := match.Setup

	svc.Audio.StopSong()

	switch match.Outcome {
	case components.OutcomeSurvivalOver:
		svc.Audio.PlaySFX(cfg.SoundLose)
		streak := match.Streak()
		newBest := svc.Settings.RecordSurvival(streak)
		m.AddScreen(NewSurvivalEndPopup(streak, svc.Settings.SurvivalBest, newBest, setup))
	case components.OutcomeRightWon:
		svc.Audio.PlaySFX(cfg.SoundWin)
		msg := "You win!"
		if !setup.HasAI() {
			msg = "Player 1 wins!"
		}
		m.AddScreen(NewWinnerPopup(msg, setup))
	case components.OutcomeLeftWon:
		if setup.HasAI() {
			svc.Audio.PlaySFX(cfg.SoundLose)
			m.AddScreen(NewWinnerPopup("You lose!", setup))
		} else {
			svc.Audio.PlaySFX(cfg.SoundWin)
			m.AddScreen(NewWinnerPopup("Player 2 wins!", setup))
		}
	}
}

func (s *MatchScreen) HandleInput(in *components.InputData) {
	if s.ecs == nil || s.finished || in == nil {
		return
	}
	if in.Cancelled() {
		s.Services().Audio.PlaySFX(cfg.SoundPause)
		s.Manager().AddScreen(NewPausePopup())
		return
	}

	entry, ok := components.Match.First(s.ecs.World)
	if !ok {
		return
	}
	dst := components.Input.Get(entry)
	dst.Current = in.Current
	dst.Previous = in.Previous
	dst.Pointers = append(dst.Pointers[:0], in.Pointers...)
}

func (s *MatchScreen) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.Manager().FadeBackBufferToBlack(screen, s.TransitionPosition())
}

// snapshot is the state to save: the live score while loaded, a fresh match
// once this one is decided
func (s *MatchScreen) snapshot() matchState {
	st := matchState{Setup: s.saved.Setup}
	if s.ecs == nil {
		if !s.finished {
			st = s.saved
		}
		return st
	}
	if s.finished {
		return st
	}
	match := systems.GetMatch(s.ecs)
	st.ScoreP1 = match.ScoreRight
	st.ScoreP2 = match.ScoreLeft
	if entry, ok := tags.Ball.First(s.ecs.World); ok {
		st.Streak = components.Ball.Get(entry).Streak
	}
	return st
}

func (s *MatchScreen) Kind() string { return KindMatch }

func (s *MatchScreen) Serialize() ([]byte, error) {
	return json.Marshal(s.snapshot())
}
