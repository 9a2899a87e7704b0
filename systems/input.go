package systems

import (
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerTrack follows one press so its release can be classified as a tap
type pointerTrack struct {
	pos    components.Point
	frames int
}

// InputPoller samples keyboard, gamepads, touches and the mouse once per frame
type InputPoller struct {
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
	touches    map[ebiten.TouchID]*pointerTrack
	mouse      *pointerTrack
}

func NewInputPoller() *InputPoller {
	return &InputPoller{
		touches: make(map[ebiten.TouchID]*pointerTrack),
	}
}

// Poll starts a new frame on in and fills it from the devices
func (p *InputPoller) Poll(in *components.InputData) {
	in.Advance()

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	p.pollTouches(in)
	p.pollMouse(in)
}

func (p *InputPoller) pollTouches(in *components.InputData) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos := components.Point{X: float64(x), Y: float64(y)}
		in.Pointers = append(in.Pointers, pos)

		t, ok := p.touches[id]
		if !ok {
			t = &pointerTrack{}
			p.touches[id] = t
		}
		t.pos = pos
		t.frames++
	}

	for id, t := range p.touches {
		if !inpututil.IsTouchJustReleased(id) && touchDown(p.touchIDs, id) {
			continue
		}
		if t.frames <= cfg.Input.MaxTapFrames {
			in.Taps = append(in.Taps, t.pos)
		}
		delete(p.touches, id)
	}
}

func (p *InputPoller) pollMouse(in *components.InputData) {
	x, y := ebiten.CursorPosition()
	pos := components.Point{X: float64(x), Y: float64(y)}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Pointers = append(in.Pointers, pos)
		if p.mouse == nil {
			p.mouse = &pointerTrack{}
		}
		p.mouse.pos = pos
		p.mouse.frames++
		return
	}

	if p.mouse != nil {
		if p.mouse.frames <= cfg.Input.MaxTapFrames {
			in.Taps = append(in.Taps, p.mouse.pos)
		}
		p.mouse = nil
	}
}

func touchDown(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, down := range ids {
		if down == id {
			return true
		}
	}
	return false
}
