package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/automoto/xtremepaddle/assets"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/systems"
	dmath "github.com/yohamta/donburi/features/math"
)

// Host is what screens may ask of the running game
type Host interface {
	// ResetElapsedTime makes the next tick run with no elapsed time
	ResetElapsedTime()
	Exit()
	// IsActive reports whether the game window has focus
	IsActive() bool
	Vibrate(d time.Duration)
}

// Services are the single-instance collaborators shared by every screen
type Services struct {
	Settings *systems.Settings
	Audio    *systems.AudioService
	Store    systems.ItemStore
	Host     Host
	Rand     components.Rand
	Court    assets.Court
	Themes   []assets.Theme
}

// Theme returns the selected theme, or a plain black court when none loaded
func (s *Services) Theme() assets.Theme {
	if len(s.Themes) == 0 {
		return assets.Theme{Name: "Classic", Background: color.RGBA{A: 255}, Line: cfg.White, Accent: cfg.White}
	}
	i := s.Settings.Theme
	if i < 0 || i >= len(s.Themes) {
		i = 0
	}
	return s.Themes[i]
}

func (s *Services) ThemeNames() []string {
	names := make([]string, len(s.Themes))
	for i, t := range s.Themes {
		names[i] = t.Name
	}
	return names
}

// P1Home is where Player 1's paddle is centered between points
func (s *Services) P1Home() dmath.Vec2 {
	if s.Court.P1Home == (dmath.Vec2{}) {
		return dmath.Vec2{X: cfg.Paddle.P1Center.X, Y: cfg.Paddle.P1Center.Y}
	}
	return s.Court.P1Home
}

// LeftHome is where the left paddle is centered between points
func (s *Services) LeftHome() dmath.Vec2 {
	if s.Court.LeftHome == (dmath.Vec2{}) {
		return dmath.Vec2{X: cfg.Paddle.P2Center.X, Y: cfg.Paddle.P2Center.Y}
	}
	return s.Court.LeftHome
}

// SpawnZone is the band power-ups are centered in
func (s *Services) SpawnZone() components.Rect {
	z := s.Court.PowerUpZone
	if z.Width <= 0 || z.Height <= 0 {
		return components.DefaultSpawnZone()
	}
	return components.Rect{X: z.X, Y: z.Y, W: z.Width, H: z.Height}
}

func (s *Services) toggle(key systems.SettingKey) {
	if err := s.Settings.Toggle(key); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
	if key == systems.KeyMusic {
		s.Audio.Refresh()
	}
}
