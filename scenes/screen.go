package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenState is where a screen is in its show/hide cycle
type ScreenState int

const (
	TransitionOn ScreenState = iota
	Active
	TransitionOff
	Hidden
)

func (s ScreenState) String() string {
	switch s {
	case TransitionOn:
		return "TransitionOn"
	case Active:
		return "Active"
	case TransitionOff:
		return "TransitionOff"
	case Hidden:
		return "Hidden"
	}
	return fmt.Sprintf("ScreenState(%d)", int(s))
}

// Gesture is a set of pointer gestures a screen wants delivered
type Gesture uint8

const (
	GestureNone Gesture = 0
	GestureTap  Gesture = 1
)

// Screen is one layer of the screen stack. The set of screens is closed:
// every implementation embeds Base.
type Screen interface {
	base() *Base

	LoadContent()
	UnloadContent()
	// Update runs every tick, whether or not the screen has focus
	Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool)
	// HandleInput runs only for the topmost screen that is coming on or active
	HandleInput(in *components.InputData)
	Draw(screen *ebiten.Image)
}

// Base carries the transition state every screen shares. Position runs from
// 1 (fully off) to 0 (fully on).
type Base struct {
	manager *Manager
	self    Screen

	state         ScreenState
	position      float64
	onTime        time.Duration
	offTime       time.Duration
	popup         bool
	exiting       bool
	otherHasFocus bool
	gestures      Gesture
}

func newBase(times cfg.TransitionTimes, popup bool, gestures Gesture) Base {
	return Base{
		state:    TransitionOn,
		position: 1,
		onTime:   times.On,
		offTime:  times.Off,
		popup:    popup,
		gestures: gestures,
	}
}

func (b *Base) base() *Base { return b }

func (b *Base) LoadContent()                         {}
func (b *Base) UnloadContent()                       {}
func (b *Base) HandleInput(in *components.InputData) {}
func (b *Base) Draw(screen *ebiten.Image)            {}

// Update advances the transition. Screens that override Update must call it.
func (b *Base) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	b.otherHasFocus = otherScreenHasFocus

	switch {
	case b.exiting:
		b.state = TransitionOff
		if !b.updateTransition(dt, b.offTime, 1) {
			b.manager.RemoveScreen(b.self)
		}
	case coveredByOtherScreen:
		if b.updateTransition(dt, b.offTime, 1) {
			b.state = TransitionOff
		} else {
			b.state = Hidden
		}
	default:
		if b.updateTransition(dt, b.onTime, -1) {
			b.state = TransitionOn
		} else {
			b.state = Active
		}
	}
}

// updateTransition moves the position toward its end and reports whether
// the transition is still running
func (b *Base) updateTransition(dt float64, d time.Duration, direction float64) bool {
	delta := 1.0
	if d > 0 {
		delta = dt / d.Seconds()
	}
	b.position += delta * direction

	if (direction < 0 && b.position <= 0) || (direction > 0 && b.position >= 1) {
		b.position = min(max(b.position, 0), 1)
		return false
	}
	return true
}

// ExitScreen asks the screen to go away. A zero off time removes it at once,
// otherwise it animates off and removes itself.
func (b *Base) ExitScreen() {
	if b.manager == nil {
		panic("scenes: ExitScreen on a screen that was never added")
	}
	if b.offTime == 0 {
		b.manager.RemoveScreen(b.self)
		return
	}
	b.exiting = true
}

func (b *Base) State() ScreenState          { return b.state }
func (b *Base) TransitionPosition() float64 { return b.position }

// TransitionAlpha is 1 when fully on and 0 when fully off
func (b *Base) TransitionAlpha() float64 { return 1 - b.position }

func (b *Base) IsPopup() bool   { return b.popup }
func (b *Base) IsExiting() bool { return b.exiting }

// IsActive reports whether the screen is showing and nothing above took focus
func (b *Base) IsActive() bool {
	return !b.otherHasFocus && (b.state == TransitionOn || b.state == Active)
}

func (b *Base) Manager() *Manager { return b.manager }

// Services is a shortcut to the manager's shared services
func (b *Base) Services() *Services {
	return b.manager.Services()
}
