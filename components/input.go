package components

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
)

// Point is a screen-space position
type Point struct {
	X, Y float64
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the input sample of one frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	// Pointers holds every touch or mouse button currently down
	Pointers []Point
	// Taps holds pointers released this frame after a short press
	Taps []Point
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of an action
func (in *InputData) Action(id cfg.ActionID) ActionState {
	if in == nil {
		return ActionState{}
	}
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

// Cancelled reports the back/cancel gesture for this frame
func (in *InputData) Cancelled() bool {
	return in.Action(cfg.ActionBack).JustPressed
}

// Advance starts a new frame: current state becomes previous and the
// per-frame samples are cleared.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Pointers = in.Pointers[:0]
	in.Taps = in.Taps[:0]
}
