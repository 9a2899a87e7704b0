package scenes

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundScreen draws the themed court behind the menus
type BackgroundScreen struct {
	Base
}

func NewBackgroundScreen() *BackgroundScreen {
	return &BackgroundScreen{Base: newBase(cfg.Transition.Background, false, GestureNone)}
}

// Update never lets the background be covered: it stays drawn under every menu
func (s *BackgroundScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.Base.Update(dt, otherScreenHasFocus, false)
}

func (s *BackgroundScreen) Draw(screen *ebiten.Image) {
	systems.DrawCourt(screen, s.Services().Theme())
	s.Manager().FadeBackBufferToBlack(screen, s.TransitionPosition())
}

func (s *BackgroundScreen) Kind() string { return KindBackground }

func (s *BackgroundScreen) Serialize() ([]byte, error) {
	return []byte("{}"), nil
}
