package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// Command is what a menu entry asks its screen to do when chosen
type Command int

const (
	CommandNone Command = iota
	CommandOnePlayer
	CommandTwoPlayers
	CommandSurvival
	CommandToggleMusic
	CommandToggleSound
	CommandToggleVibration
	CommandAbout
	CommandBack
	CommandOK
	CommandResume
	CommandPlayAgain
	CommandMainMenu
)

func (c Command) Label(settings *systems.Settings) string {
	switch c {
	case CommandOnePlayer:
		return cfg.ModeVsAI.String()
	case CommandTwoPlayers:
		return cfg.ModeTwoPlayer.String()
	case CommandSurvival:
		return cfg.ModeSurvival.String()
	case CommandToggleMusic:
		return "Music: " + onOff(settings.Music)
	case CommandToggleSound:
		return "Sound: " + onOff(settings.Sound)
	case CommandToggleVibration:
		return "Vibration: " + onOff(settings.Vibration)
	case CommandAbout:
		return "About"
	case CommandBack:
		return "Back"
	case CommandOK:
		return "OK"
	case CommandResume:
		return "Resume"
	case CommandPlayAgain:
		return "Play again"
	case CommandMainMenu:
		return "Main menu"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// menuList is a vertical list of centered entries, chosen by tap or by the
// menu actions
type menuList struct {
	entries  []Command
	selected int
	startY   float64
}

func (l *menuList) entryRect(i int) components.Rect {
	return components.Rect{
		X: (cfg.Field.Width - cfg.Menu.EntryWidth) / 2,
		Y: l.startY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap),
		W: cfg.Menu.EntryWidth,
		H: cfg.Menu.MenuItemHeight,
	}
}

func (l *menuList) height() float64 {
	n := float64(len(l.entries))
	return n*cfg.Menu.MenuItemHeight + max(n-1, 0)*cfg.Menu.MenuItemGap
}

func (l *menuList) move(delta int) {
	n := len(l.entries)
	l.selected = ((l.selected+delta)%n + n) % n
}

// handleInput returns the entry chosen this tick, if any
func (l *menuList) handleInput(in *components.InputData, audio *systems.AudioService) Command {
	if in == nil || len(l.entries) == 0 {
		return CommandNone
	}

	switch {
	case in.Action(cfg.ActionMenuUp).JustPressed:
		l.move(-1)
		audio.PlaySFX(cfg.SoundMenuNavigate)
	case in.Action(cfg.ActionMenuDown).JustPressed:
		l.move(1)
		audio.PlaySFX(cfg.SoundMenuNavigate)
	case in.Action(cfg.ActionMenuSelect).JustPressed:
		audio.PlaySFX(cfg.SoundMenuSelect)
		return l.entries[l.selected]
	}

	for _, tap := range in.Taps {
		for i := range l.entries {
			if l.entryRect(i).Contains(tap.X, tap.Y) {
				l.selected = i
				audio.PlaySFX(cfg.SoundMenuSelect)
				return l.entries[i]
			}
		}
	}
	return CommandNone
}

func (l *menuList) draw(screen *ebiten.Image, settings *systems.Settings, alpha float64) {
	face := fonts.Regular.Get()
	for i, c := range l.entries {
		r := l.entryRect(i)
		clr := cfg.Menu.TextColorNormal
		if i == l.selected {
			clr = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, c.Label(settings), face, r.CenterX(), r.Bottom()-7, fade(clr, alpha))
	}
}

// drawCentered draws s with its baseline at y, centered on x
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(x)-w/2, int(y), clr)
}

// fade scales a color by alpha for premultiplied drawing
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
