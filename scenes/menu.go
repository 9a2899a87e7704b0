package scenes

import (
	"encoding/json"
	"log"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// MenuRole selects which menu a MenuScreen shows
type MenuRole int

const (
	MenuMain MenuRole = iota
	MenuAbout
)

type menuState struct {
	Role MenuRole `json:"role"`
}

var aboutLines = []string{
	"Xtreme Paddle",
	"Bounce the ball past your rival.",
	"First to 10 wins. Survival lasts",
	"until the CPU scores once.",
	"Xtreme mode drops power-ups on the court.",
}

// MenuScreen is the main menu or the about page
type MenuScreen struct {
	Base
	role MenuRole
	list menuList
}

func NewMenuScreen(role MenuRole) *MenuScreen {
	s := &MenuScreen{
		Base: newBase(cfg.Transition.Menu, false, GestureTap),
		role: role,
	}
	if role == MenuAbout {
		s.list = menuList{
			entries: []Command{CommandBack},
			startY:  cfg.Menu.MenuStartY + float64(len(aboutLines)+1)*cfg.Menu.MenuItemHeight,
		}
	} else {
		s.list = menuList{
			entries: []Command{
				CommandOnePlayer,
				CommandTwoPlayers,
				CommandSurvival,
				CommandToggleMusic,
				CommandToggleSound,
				CommandToggleVibration,
				CommandAbout,
			},
			startY: cfg.Menu.MenuStartY,
		}
	}
	return s
}

func (s *MenuScreen) Role() MenuRole { return s.role }

func (s *MenuScreen) Title() string {
	if s.role == MenuAbout {
		return "About"
	}
	return cfg.C.Title
}

func (s *MenuScreen) HandleInput(in *components.InputData) {
	if in.Cancelled() {
		s.Services().Audio.PlaySFX(cfg.SoundMenuNavigate)
		s.cancel()
		return
	}
	s.execute(s.list.handleInput(in, s.Services().Audio))
}

func (s *MenuScreen) cancel() {
	if s.role == MenuMain {
		exitGame(s.Manager())
		return
	}
	s.ExitScreen()
}

func (s *MenuScreen) execute(c Command) {
	m := s.Manager()
	svc := s.Services()

	switch c {
	case CommandOnePlayer:
		m.AddScreen(NewSetupScreen(cfg.ModeVsAI, cfg.TierMedium))
	case CommandTwoPlayers:
		m.AddScreen(NewSetupScreen(cfg.ModeTwoPlayer, cfg.TierMedium))
	case CommandSurvival:
		loadMatch(m, cfg.SetupFromDifficulty(cfg.ModeSurvival, 0))
	case CommandToggleMusic:
		svc.toggle(systems.KeyMusic)
	case CommandToggleSound:
		svc.toggle(systems.KeySound)
	case CommandToggleVibration:
		svc.toggle(systems.KeyVibration)
	case CommandAbout:
		m.AddScreen(NewMenuScreen(MenuAbout))
	case CommandBack:
		s.ExitScreen()
	}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	alpha := s.TransitionAlpha()
	cx := cfg.Field.Width / 2

	// the title slides up and away as the menu transitions off
	offset := float64(ease.InQuad(float32(s.TransitionPosition()), 0, float32(cfg.Menu.TitleSlide), 1))
	titleY := cfg.Menu.TitleY - offset
	title := fonts.Title.Get()
	drawCentered(screen, s.Title(), title, cx+3, titleY+2, fade(cfg.BlackOverlay, alpha))
	drawCentered(screen, s.Title(), title, cx, titleY, fade(cfg.Menu.TitleColor, alpha))

	if s.role == MenuAbout {
		face := fonts.Regular.Get()
		for i, line := range aboutLines {
			y := cfg.Menu.MenuStartY + float64(i+1)*cfg.Menu.MenuItemHeight
			drawCentered(screen, line, face, cx, y, fade(cfg.White, alpha))
		}
	}

	s.list.draw(screen, s.Services().Settings, alpha)
}

func (s *MenuScreen) Kind() string { return KindMenu }

func (s *MenuScreen) Serialize() ([]byte, error) {
	return json.Marshal(menuState{Role: s.role})
}

// exitGame saves the screen stack and asks the host to quit
func exitGame(m *Manager) {
	if err := m.Serialize(); err != nil {
		log.Printf("Warning: Could not save screens: %v", err)
	}
	m.Services().Host.Exit()
}

// quitToMenu tears the current screens down and returns to the main menu
func quitToMenu(m *Manager) {
	m.Services().Audio.PlaySong(cfg.SongMenu)
	Load(m, NewBackgroundScreen(), NewMenuScreen(MenuMain))
}
