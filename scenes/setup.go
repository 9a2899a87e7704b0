package scenes

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type setupState struct {
	Mode       cfg.GameMode `json:"mode"`
	Difficulty int          `json:"difficulty"`
}

// SetupScreen lets the player tune a match before starting it
type SetupScreen struct {
	Base
	mode       cfg.GameMode
	difficulty int
	panel      *ui.SetupUI
}

func NewSetupScreen(mode cfg.GameMode, difficulty int) *SetupScreen {
	return &SetupScreen{
		Base:       newBase(cfg.Transition.Menu, false, GestureTap),
		mode:       mode,
		difficulty: difficulty,
	}
}

func newSetupScreenFromState(st setupState) (*SetupScreen, error) {
	if st.Mode != cfg.ModeVsAI && st.Mode != cfg.ModeTwoPlayer {
		return nil, fmt.Errorf("setup for %v", st.Mode)
	}
	if err := cfg.SetupFromDifficulty(st.Mode, st.Difficulty).Validate(); err != nil {
		return nil, err
	}
	return NewSetupScreen(st.Mode, st.Difficulty), nil
}

func (s *SetupScreen) LoadContent() {
	svc := s.Services()
	model := ui.NewSetupModel(s.mode, s.difficulty, svc.Settings, svc.ThemeNames())
	s.panel = ui.NewSetupUI(model)
}

func (s *SetupScreen) UnloadContent() {
	if s.panel != nil {
		s.difficulty = s.panel.Model.Difficulty
	}
	s.panel = nil
}

func (s *SetupScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.Base.Update(dt, otherScreenHasFocus, coveredByOtherScreen)
	if s.panel != nil && s.IsActive() {
		s.panel.Update()
	}
}

func (s *SetupScreen) HandleInput(in *components.InputData) {
	if s.panel == nil || in == nil {
		return
	}
	audio := s.Services().Audio

	if in.Cancelled() {
		audio.PlaySFX(cfg.SoundMenuNavigate)
		s.ExitScreen()
		return
	}
	switch {
	case in.Action(cfg.ActionMenuUp).JustPressed:
		s.panel.Move(-1)
		audio.PlaySFX(cfg.SoundMenuNavigate)
	case in.Action(cfg.ActionMenuDown).JustPressed:
		s.panel.Move(1)
		audio.PlaySFX(cfg.SoundMenuNavigate)
	case in.Action(cfg.ActionMenuSelect).JustPressed:
		s.apply(s.panel.ActivateSelected())
		return
	}
	for _, tap := range in.Taps {
		if action := s.panel.Tap(tap.X, tap.Y); action != ui.SetupNone {
			s.apply(action)
			return
		}
	}
}

func (s *SetupScreen) apply(action ui.SetupAction) {
	if action == ui.SetupNone {
		return
	}
	s.Services().Audio.PlaySFX(cfg.SoundMenuSelect)

	switch action {
	case ui.SetupPlay:
		loadMatch(s.Manager(), s.panel.Model.Setup())
	case ui.SetupBack:
		s.ExitScreen()
	}
}

func (s *SetupScreen) Draw(screen *ebiten.Image) {
	if s.panel == nil {
		return
	}
	s.panel.Draw(screen)
	s.Manager().FadeBackBufferToBlack(screen, s.TransitionPosition())
}

func (s *SetupScreen) Kind() string { return KindSetup }

func (s *SetupScreen) Serialize() ([]byte, error) {
	st := setupState{Mode: s.mode, Difficulty: s.difficulty}
	if s.panel != nil {
		st.Difficulty = s.panel.Model.Difficulty
	}
	return json.Marshal(st)
}
