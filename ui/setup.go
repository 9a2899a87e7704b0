package ui

import (
	"log"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/systems"
)

// SetupOption is one row of the match setup panel
type SetupOption int

const (
	OptionTheme SetupOption = iota
	OptionDifficulty
	OptionXtreme
	OptionP1Color
	OptionP2Color
	OptionBallColor
	OptionPlay
	OptionBack
)

// SetupAction tells the owning screen what a row activation asks for
type SetupAction int

const (
	SetupNone SetupAction = iota
	SetupChanged
	SetupPlay
	SetupBack
)

var difficultyNames = map[int]string{
	cfg.TierEasy:      "Easy",
	cfg.TierMedium:    "Medium",
	cfg.TierHard:      "Hard",
	cfg.TierAscending: "Ascending",
}

// SetupModel holds the choices of the setup panel. Everything except the
// difficulty is a persisted setting and is saved as soon as it changes.
type SetupModel struct {
	Mode       cfg.GameMode
	Difficulty int

	settings *systems.Settings
	themes   []string
}

func NewSetupModel(mode cfg.GameMode, difficulty int, settings *systems.Settings, themes []string) *SetupModel {
	m := &SetupModel{
		Mode:       mode,
		Difficulty: difficulty,
		settings:   settings,
		themes:     themes,
	}
	if _, ok := difficultyNames[m.Difficulty]; !ok || (m.Difficulty == cfg.TierAscending && mode != cfg.ModeTwoPlayer) {
		m.Difficulty = cfg.TierMedium
	}
	return m
}

// Options lists the rows in display order. Player 2 only picks a color in
// two player matches.
func (m *SetupModel) Options() []SetupOption {
	opts := []SetupOption{OptionTheme, OptionDifficulty, OptionXtreme, OptionP1Color}
	if m.Mode == cfg.ModeTwoPlayer {
		opts = append(opts, OptionP2Color)
	}
	return append(opts, OptionBallColor, OptionPlay, OptionBack)
}

func (m *SetupModel) Title() string {
	if m.Mode == cfg.ModeTwoPlayer {
		return "2 PLAYERS"
	}
	return "1 PLAYER"
}

// Label is the text shown on a row
func (m *SetupModel) Label(o SetupOption) string {
	switch o {
	case OptionTheme:
		return "Theme: " + m.themeName()
	case OptionDifficulty:
		return "Difficulty: " + difficultyNames[m.Difficulty]
	case OptionXtreme:
		return "Xtreme: " + onOff(m.settings.Xtreme)
	case OptionP1Color:
		return "Player 1: " + cfg.Palette[clampColor(m.settings.P1Color)].Name
	case OptionP2Color:
		return "Player 2: " + cfg.Palette[clampColor(m.settings.P2Color)].Name
	case OptionBallColor:
		return "Ball: " + cfg.Palette[clampColor(m.settings.BallColor)].Name
	case OptionPlay:
		return "Play"
	case OptionBack:
		return "Back"
	}
	return ""
}

// Activate applies a row: value rows cycle to their next value, Play and Back
// are passed to the caller
func (m *SetupModel) Activate(o SetupOption) SetupAction {
	var err error
	switch o {
	case OptionTheme:
		err = m.settings.Save(systems.KeyTheme, (m.settings.Theme+1)%max(len(m.themes), 1))
	case OptionDifficulty:
		m.Difficulty = m.nextDifficulty()
		return SetupChanged
	case OptionXtreme:
		err = m.settings.Toggle(systems.KeyXtreme)
	case OptionP1Color:
		err = m.settings.Save(systems.KeyP1Color, nextColor(m.settings.P1Color))
	case OptionP2Color:
		err = m.settings.Save(systems.KeyP2Color, nextColor(m.settings.P2Color))
	case OptionBallColor:
		err = m.settings.Save(systems.KeyBallColor, nextColor(m.settings.BallColor))
	case OptionPlay:
		return SetupPlay
	case OptionBack:
		return SetupBack
	default:
		return SetupNone
	}
	if err != nil {
		log.Printf("Warning: Could not save setting: %v", err)
	}
	return SetupChanged
}

// Setup is the match the current choices describe
func (m *SetupModel) Setup() cfg.MatchSetup {
	return cfg.SetupFromDifficulty(m.Mode, m.Difficulty)
}

func (m *SetupModel) nextDifficulty() int {
	last := cfg.TierHard
	if m.Mode == cfg.ModeTwoPlayer {
		last = cfg.TierAscending
	}
	if m.Difficulty >= last {
		return cfg.TierEasy
	}
	return m.Difficulty + 1
}

func (m *SetupModel) themeName() string {
	if len(m.themes) == 0 {
		return "-"
	}
	i := m.settings.Theme
	if i < 0 || i >= len(m.themes) {
		i = 0
	}
	return m.themes[i]
}

func nextColor(i int) int {
	return (clampColor(i) + 1) % len(cfg.Palette)
}

func clampColor(i int) int {
	if i < 0 || i >= len(cfg.Palette) {
		return 0
	}
	return i
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
