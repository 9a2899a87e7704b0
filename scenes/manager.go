package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"slices"

	"github.com/automoto/xtremepaddle/components"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var ErrUnknownScreen = errors.New("unknown screen kind")

// Manager owns the screen stack. It updates every screen each tick, routes
// input to the topmost active one and draws them bottom to top.
type Manager struct {
	services *Services

	screens     []Screen
	updating    []Screen
	initialized bool
	gestures    Gesture
}

func NewManager(services *Services) *Manager {
	return &Manager{services: services}
}

func (m *Manager) Services() *Services { return m.services }

// Initialize loads the content of every screen already on the stack. Screens
// added afterwards load as they are added.
func (m *Manager) Initialize() {
	if m.initialized {
		return
	}
	m.initialized = true
	for _, s := range m.screens {
		s.LoadContent()
	}
}

// AddScreen pushes screen on top of the stack
func (m *Manager) AddScreen(screen Screen) {
	if slices.Contains(m.screens, screen) {
		panic("scenes: screen added twice")
	}
	b := screen.base()
	b.manager = m
	b.self = screen
	b.exiting = false

	if m.initialized {
		screen.LoadContent()
	}
	m.screens = append(m.screens, screen)
	m.gestures = b.gestures
}

// RemoveScreen takes screen off the stack immediately. Screens normally call
// ExitScreen instead so they can animate off.
func (m *Manager) RemoveScreen(screen Screen) {
	i := slices.Index(m.screens, screen)
	if i < 0 {
		panic("scenes: removing a screen that is not on the stack")
	}
	if m.initialized {
		screen.UnloadContent()
	}
	m.screens = slices.Delete(m.screens, i, i+1)
	if j := slices.Index(m.updating, screen); j >= 0 {
		m.updating = slices.Delete(m.updating, j, j+1)
	}

	if len(m.screens) > 0 {
		m.gestures = m.screens[len(m.screens)-1].base().gestures
	}
}

// Screens returns a copy of the stack, bottom first
func (m *Manager) Screens() []Screen {
	return slices.Clone(m.screens)
}

// EnabledGestures is the gesture set of the topmost screen
func (m *Manager) EnabledGestures() Gesture {
	return m.gestures
}

// Update runs one tick over a snapshot of the stack, top screen first
func (m *Manager) Update(dt float64, in *components.InputData) {
	m.updating = append(m.updating[:0], m.screens...)

	otherScreenHasFocus := m.services.Host != nil && !m.services.Host.IsActive()
	coveredByOtherScreen := false

	for len(m.updating) > 0 {
		screen := m.updating[len(m.updating)-1]
		m.updating = m.updating[:len(m.updating)-1]

		screen.Update(dt, otherScreenHasFocus, coveredByOtherScreen)

		b := screen.base()
		if b.state != TransitionOn && b.state != Active {
			continue
		}
		if !otherScreenHasFocus {
			screen.HandleInput(in)
			otherScreenHasFocus = true
		}
		if !b.popup {
			coveredByOtherScreen = true
		}
	}
}

// Draw renders the stack bottom to top, skipping hidden screens
func (m *Manager) Draw(screen *ebiten.Image) {
	for _, s := range m.screens {
		if s.base().state == Hidden {
			continue
		}
		s.Draw(screen)
	}
}

// FadeBackBufferToBlack darkens everything drawn so far. alpha 1 is opaque.
func (m *Manager) FadeBackBufferToBlack(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(min(alpha, 1) * 255)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: a}, false)
}

// Serialize saves every serializable screen on the stack, bottom first
func (m *Manager) Serialize() error {
	var saved []systems.SavedScreen
	for _, s := range m.screens {
		ser, ok := s.(serializable)
		if !ok || s.base().exiting {
			continue
		}
		data, err := ser.Serialize()
		if err != nil {
			return fmt.Errorf("serialize %s screen: %w", ser.Kind(), err)
		}
		saved = append(saved, systems.SavedScreen{Kind: ser.Kind(), Data: data})
	}
	return systems.SaveScreenStack(m.services.Store, saved)
}

// Deserialize rebuilds the saved stack. Screens are pushed only when every
// one of them could be restored; on any failure the saved state is wiped
// and false is returned so the caller can push its default screens.
func (m *Manager) Deserialize() bool {
	saved, err := systems.LoadScreenStack(m.services.Store)
	if err != nil {
		if !errors.Is(err, systems.ErrNoSavedState) {
			log.Printf("Warning: Could not restore screens: %v", err)
		}
		m.discardSavedState()
		return false
	}

	restored := make([]Screen, 0, len(saved))
	for i, ss := range saved {
		s, err := restoreScreen(ss)
		if err != nil {
			log.Printf("Warning: Could not restore screen %d: %v", i, err)
			m.discardSavedState()
			return false
		}
		restored = append(restored, s)
	}

	for _, s := range restored {
		m.AddScreen(s)
	}
	return true
}

func (m *Manager) discardSavedState() {
	if err := systems.ClearScreenStack(m.services.Store); err != nil {
		log.Printf("Warning: Could not clear saved screens: %v", err)
	}
}
