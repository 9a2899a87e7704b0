package scenes

import (
	"fmt"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PopupRole selects the content of a PopupScreen
type PopupRole int

const (
	PopupMessage PopupRole = iota
	PopupPause
	PopupWinner
	PopupSurvivalEnd
)

const (
	popupWidth      = 440
	popupPadding    = 20
	popupLineHeight = 30
)

// PopupScreen is a small dialog drawn over a dimmed copy of the screens
// beneath it
type PopupScreen struct {
	Base
	role  PopupRole
	lines []string
	// setup is replayed by Play again
	setup cfg.MatchSetup
	list  menuList
	top   float64
}

func newPopup(role PopupRole, lines []string, setup cfg.MatchSetup, entries ...Command) *PopupScreen {
	s := &PopupScreen{
		Base:  newBase(cfg.Transition.Popup, true, GestureTap),
		role:  role,
		lines: lines,
		setup: setup,
		list:  menuList{entries: entries},
	}
	s.top = (cfg.Field.Height - s.boxHeight()) / 2
	s.list.startY = s.top + popupPadding + float64(len(lines))*popupLineHeight + popupPadding/2
	return s
}

func NewMessagePopup(message string) *PopupScreen {
	return newPopup(PopupMessage, []string{message}, cfg.MatchSetup{}, CommandOK)
}

func NewPausePopup() *PopupScreen {
	return newPopup(PopupPause, []string{"Paused"}, cfg.MatchSetup{},
		CommandResume,
		CommandToggleMusic,
		CommandToggleSound,
		CommandToggleVibration,
		CommandMainMenu,
	)
}

func NewWinnerPopup(message string, setup cfg.MatchSetup) *PopupScreen {
	return newPopup(PopupWinner, []string{message}, setup, CommandPlayAgain, CommandMainMenu)
}

func NewSurvivalEndPopup(streak, best int, newBest bool, setup cfg.MatchSetup) *PopupScreen {
	lines := []string{fmt.Sprintf("Streak: %d", streak)}
	if newBest {
		lines = append(lines, "New best!")
	} else {
		lines = append(lines, fmt.Sprintf("Best: %d", best))
	}
	return newPopup(PopupSurvivalEnd, lines, setup, CommandPlayAgain, CommandMainMenu)
}

func (s *PopupScreen) Role() PopupRole    { return s.role }
func (s *PopupScreen) Lines() []string    { return s.lines }
func (s *PopupScreen) Entries() []Command { return s.list.entries }

func (s *PopupScreen) boxHeight() float64 {
	return 2*popupPadding + float64(len(s.lines))*popupLineHeight + popupPadding/2 + s.list.height()
}

func (s *PopupScreen) HandleInput(in *components.InputData) {
	if in.Cancelled() {
		s.Services().Audio.PlaySFX(cfg.SoundMenuNavigate)
		s.cancel()
		return
	}
	s.execute(s.list.handleInput(in, s.Services().Audio))
}

func (s *PopupScreen) cancel() {
	switch s.role {
	case PopupWinner, PopupSurvivalEnd:
		quitToMenu(s.Manager())
	default:
		s.ExitScreen()
	}
}

func (s *PopupScreen) execute(c Command) {
	svc := s.Services()
	switch c {
	case CommandOK, CommandResume:
		s.ExitScreen()
	case CommandToggleMusic:
		svc.toggle(systems.KeyMusic)
	case CommandToggleSound:
		svc.toggle(systems.KeySound)
	case CommandToggleVibration:
		svc.toggle(systems.KeyVibration)
	case CommandPlayAgain:
		loadMatch(s.Manager(), s.setup)
	case CommandMainMenu:
		quitToMenu(s.Manager())
	}
}

func (s *PopupScreen) Draw(screen *ebiten.Image) {
	alpha := s.TransitionAlpha()
	s.Manager().FadeBackBufferToBlack(screen, alpha*cfg.Menu.PopupFadeAlpha)

	left := (cfg.Field.Width - popupWidth) / 2
	vector.FillRect(screen, float32(left), float32(s.top), popupWidth, float32(s.boxHeight()),
		fade(cfg.Menu.PopupBoxColor, alpha), false)

	face := fonts.Regular.Get()
	for i, line := range s.lines {
		y := s.top + popupPadding + float64(i+1)*popupLineHeight - 8
		drawCentered(screen, line, face, cfg.Field.Width/2, y, fade(cfg.White, alpha))
	}
	s.list.draw(screen, s.Services().Settings, alpha)
}
