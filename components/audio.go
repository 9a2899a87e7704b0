package components

import (
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
)

// Notifier receives fire-and-forget sound cues raised by match entities
type Notifier interface {
	Notify(sound cfg.SoundID)
}

// AudioData queues the sound cues raised during a tick (singleton component).
// The owning screen drains PendingSFX into the audio service after the tick.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

func (a *AudioData) Notify(sound cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, sound)
}

// Drain returns the queued cues and empties the queue
func (a *AudioData) Drain() []cfg.SoundID {
	out := append([]cfg.SoundID(nil), a.PendingSFX...)
	a.PendingSFX = a.PendingSFX[:0]
	return out
}

func notify(n Notifier, sound cfg.SoundID) {
	if n != nil {
		n.Notify(sound)
	}
}

// Rand is the subset of *rand.Rand the match draws from
type Rand interface {
	Intn(n int) int
}
