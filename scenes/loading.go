package scenes

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingScreen waits for every other screen to finish transitioning off,
// then replaces itself with the screens it was asked to load
type LoadingScreen struct {
	Base
	targets []Screen
	waited  float64
}

// Load exits every screen on the stack and loads targets, bottom first, once
// they are all gone
func Load(m *Manager, targets ...Screen) {
	for _, s := range m.Screens() {
		s.base().ExitScreen()
	}
	m.AddScreen(&LoadingScreen{
		Base:    newBase(cfg.Transition.Loading, false, GestureNone),
		targets: targets,
	})
}

// loadMatch fades out whatever is playing while the stack clears, then loads
// a match on its own
func loadMatch(m *Manager, setup cfg.MatchSetup) {
	m.Services().Audio.FadeOut()
	Load(m, NewMatchScreen(setup))
}

func (s *LoadingScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.Base.Update(dt, otherScreenHasFocus, coveredByOtherScreen)
	s.waited += dt

	m := s.Manager()
	if s.State() != Active || len(m.screens) != 1 || m.screens[0] != Screen(s) {
		return
	}

	m.RemoveScreen(s)
	for _, t := range s.targets {
		if t != nil {
			m.AddScreen(t)
		}
	}
	// the targets may have done a long load; do not simulate it
	if host := m.Services().Host; host != nil {
		host.ResetElapsedTime()
	}
}

// Slow reports whether the wait has gone on long enough to show a message
func (s *LoadingScreen) Slow() bool {
	return s.waited >= cfg.Transition.SlowLoad.Seconds()
}

func (s *LoadingScreen) Draw(screen *ebiten.Image) {
	if !s.Slow() {
		return
	}
	drawCentered(screen, "Loading...", fonts.Regular.Get(), cfg.Field.Width/2, cfg.Field.Height/2,
		fade(cfg.White, s.TransitionAlpha()))
}
