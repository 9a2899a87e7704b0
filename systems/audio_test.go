package systems

import (
	"errors"
	"fmt"
	"math"
	"testing"

	cfg "github.com/automoto/xtremepaddle/config"
)

// fakeBackend records what the service asks of the platform
type fakeBackend struct {
	calls    []string
	playing  cfg.SongID
	volume   float64
	control  bool
	failSong bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{control: true, volume: cfg.Audio.DefaultMusicVol}
}

func (f *fakeBackend) PlaySFX(id cfg.SoundID) error {
	f.calls = append(f.calls, fmt.Sprintf("sfx %d", id))
	return nil
}

func (f *fakeBackend) PlaySong(id cfg.SongID) error {
	if f.failSong {
		return errors.New("channel busy")
	}
	f.calls = append(f.calls, fmt.Sprintf("song %d", id))
	f.playing = id
	return nil
}

func (f *fakeBackend) StopSong() {
	f.calls = append(f.calls, "stop")
	f.playing = cfg.SongNone
}

func (f *fakeBackend) SetSongVolume(v float64) { f.volume = v }
func (f *fakeBackend) SongPlaying() bool       { return f.playing != cfg.SongNone }
func (f *fakeBackend) HasControl() bool        { return f.control }

func newTestAudio() (*AudioService, *fakeBackend, *Settings) {
	backend := newFakeBackend()
	settings := NewSettings(NewMemoryStore())
	return NewAudioService(backend, settings), backend, settings
}

func TestPlaySFXFollowsSoundSetting(t *testing.T) {
	a, backend, settings := newTestAudio()

	a.PlaySFX(cfg.SoundPlink)
	a.Notify(cfg.SoundScore)
	settings.Sound = false
	a.PlaySFX(cfg.SoundWin)

	if len(backend.calls) != 2 {
		t.Errorf("calls = %v, want plink and score only", backend.calls)
	}
}

func TestPlaySong(t *testing.T) {
	a, backend, _ := newTestAudio()

	a.PlaySong(cfg.SongMenu)
	a.PlaySong(cfg.SongMenu)
	if backend.playing != cfg.SongMenu || len(backend.calls) != 1 {
		t.Errorf("calls = %v, want the menu song started once", backend.calls)
	}

	a.StopSong()
	if backend.playing != cfg.SongNone || a.CurrentSong() != cfg.SongNone {
		t.Error("StopSong left music playing")
	}
}

func TestPlaySongWithMusicOff(t *testing.T) {
	a, backend, settings := newTestAudio()
	settings.Music = false

	a.PlaySong(cfg.SongEasy)
	if backend.SongPlaying() {
		t.Fatal("song started with music disabled")
	}
	if a.CurrentSong() != cfg.SongEasy {
		t.Errorf("CurrentSong() = %v, want the song remembered", a.CurrentSong())
	}

	settings.Music = true
	a.Update(cfg.Audio.ControlPollSecs)
	if backend.playing != cfg.SongEasy {
		t.Errorf("playing = %v after music was enabled, want %v", backend.playing, cfg.SongEasy)
	}

	settings.Music = false
	a.Update(cfg.Audio.ControlPollSecs)
	if backend.SongPlaying() {
		t.Error("song kept playing after music was disabled")
	}
}

func TestPlaySongWithoutControl(t *testing.T) {
	a, backend, _ := newTestAudio()
	backend.control = false

	a.PlaySong(cfg.SongHard)
	events := a.Events()
	if len(events) != 1 || events[0] != MusicAskControl {
		t.Fatalf("events = %v, want [MusicAskControl]", events)
	}
	if backend.SongPlaying() {
		t.Fatal("song started without control")
	}
	if len(a.Events()) != 0 {
		t.Error("Events() should drain")
	}

	a.Update(cfg.Audio.ControlPollSecs / 2)
	backend.control = true
	a.Update(cfg.Audio.ControlPollSecs / 2)
	if backend.playing != cfg.SongHard {
		t.Errorf("playing = %v once control returned, want %v", backend.playing, cfg.SongHard)
	}
}

func TestPlaySongFailure(t *testing.T) {
	a, backend, _ := newTestAudio()
	backend.failSong = true

	a.PlaySong(cfg.SongMedium)

	events := a.Events()
	if len(events) != 1 || events[0] != MusicPlaybackFailed {
		t.Fatalf("events = %v, want [MusicPlaybackFailed]", events)
	}
	if a.CurrentSong() != cfg.SongNone {
		t.Error("a failed song should be forgotten")
	}

	backend.failSong = false
	a.Update(cfg.Audio.ControlPollSecs)
	if backend.SongPlaying() {
		t.Error("forgotten song was retried")
	}
}

func TestFadeOut(t *testing.T) {
	a, backend, _ := newTestAudio()
	a.PlaySong(cfg.SongMenu)

	a.FadeOut()
	if !a.Fading() {
		t.Fatal("Fading() = false after FadeOut")
	}

	a.Update(float64(cfg.Audio.MusicFadeSecs) / 2)
	if want := cfg.Audio.DefaultMusicVol / 2; math.Abs(backend.volume-want) > 1e-3 {
		t.Errorf("volume halfway = %v, want %v", backend.volume, want)
	}
	if !backend.SongPlaying() {
		t.Fatal("song stopped before the fade finished")
	}

	a.Update(float64(cfg.Audio.MusicFadeSecs))
	if backend.SongPlaying() || a.Fading() {
		t.Error("song still playing after the fade")
	}
	if backend.volume != cfg.Audio.DefaultMusicVol {
		t.Errorf("volume = %v, want restored to %v", backend.volume, cfg.Audio.DefaultMusicVol)
	}
}

func TestPlaySongCancelsFade(t *testing.T) {
	a, backend, _ := newTestAudio()
	a.PlaySong(cfg.SongMenu)
	a.FadeOut()

	a.PlaySong(cfg.SongTwoPlayer)
	if a.Fading() {
		t.Error("starting a song should cancel the fade")
	}
	if backend.playing != cfg.SongTwoPlayer {
		t.Errorf("playing = %v, want two player song", backend.playing)
	}
}
