package systems

import (
	"log"

	"github.com/automoto/xtremepaddle/assets"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MusicEvent reports a music channel problem to the host
type MusicEvent int

const (
	// MusicAskControl means another application owns the music channel and
	// the player should be asked whether the game may take it over
	MusicAskControl MusicEvent = iota + 1
	// MusicPlaybackFailed means the backend refused to play the current song
	MusicPlaybackFailed
)

func (e MusicEvent) String() string {
	switch e {
	case MusicAskControl:
		return "MusicAskControl"
	case MusicPlaybackFailed:
		return "MusicPlaybackFailed"
	}
	return "MusicEvent(?)"
}

// AudioBackend plays sounds and songs on the platform
type AudioBackend interface {
	PlaySFX(id cfg.SoundID) error
	PlaySong(id cfg.SongID) error
	StopSong()
	SetSongVolume(volume float64)
	SongPlaying() bool
	// HasControl reports whether the game owns the music channel
	HasControl() bool
}

// AudioService is the music manager and sound sink shared by every screen.
// Failures never reach gameplay: they become MusicEvents.
type AudioService struct {
	backend  AudioBackend
	settings *Settings

	song      cfg.SongID // the song that should be playing
	fade      *gween.Tween
	pollTimer float64
	events    []MusicEvent
}

func NewAudioService(backend AudioBackend, settings *Settings) *AudioService {
	return &AudioService{
		backend:  backend,
		settings: settings,
	}
}

// PlaySFX plays a sound effect when sound is enabled
func (a *AudioService) PlaySFX(id cfg.SoundID) {
	if id == cfg.SoundNone || !a.settings.Sound {
		return
	}
	if err := a.backend.PlaySFX(id); err != nil {
		log.Printf("Warning: Could not play sound %d: %v", id, err)
	}
}

// Notify lets the service act as the sound sink of match entities
func (a *AudioService) Notify(id cfg.SoundID) {
	a.PlaySFX(id)
}

// PlaySong makes id the current song. It starts right away unless music is
// disabled or the game does not own the music channel.
func (a *AudioService) PlaySong(id cfg.SongID) {
	if a.fade != nil {
		a.fade = nil
		a.backend.SetSongVolume(cfg.Audio.DefaultMusicVol)
	}
	if a.song == id && a.backend.SongPlaying() {
		return
	}
	a.song = id
	if !a.settings.Music {
		a.backend.StopSong()
		return
	}
	if !a.backend.HasControl() {
		a.events = append(a.events, MusicAskControl)
		return
	}
	a.playSafe()
}

// StopSong forgets the current song and silences the music channel
func (a *AudioService) StopSong() {
	a.song = cfg.SongNone
	a.backend.StopSong()
	if a.fade != nil {
		a.fade = nil
		a.backend.SetSongVolume(cfg.Audio.DefaultMusicVol)
	}
}

// FadeOut lowers the music to silence over the configured fade time and then
// stops it
func (a *AudioService) FadeOut() {
	if a.song == cfg.SongNone || !a.backend.SongPlaying() {
		return
	}
	a.fade = gween.New(float32(cfg.Audio.DefaultMusicVol), 0, cfg.Audio.MusicFadeSecs, ease.Linear)
}

// Fading reports whether a fade out is running
func (a *AudioService) Fading() bool {
	return a.fade != nil
}

// CurrentSong returns the song the service wants playing
func (a *AudioService) CurrentSong() cfg.SongID {
	return a.song
}

// Update advances the fade and periodically re-checks the music channel so a
// remembered song starts once the game gets control back or music is turned
// on again.
func (a *AudioService) Update(dt float64) {
	if a.fade != nil {
		volume, done := a.fade.Update(float32(dt))
		a.backend.SetSongVolume(float64(volume))
		if done {
			a.StopSong()
		}
	}

	a.pollTimer += dt
	if a.pollTimer < cfg.Audio.ControlPollSecs {
		return
	}
	a.pollTimer = 0
	a.Refresh()
}

// Refresh reconciles the backend with the current song and settings
func (a *AudioService) Refresh() {
	if !a.backend.HasControl() {
		return
	}
	switch {
	case a.song == cfg.SongNone || !a.settings.Music:
		if a.backend.SongPlaying() {
			a.backend.StopSong()
		}
	case !a.backend.SongPlaying():
		a.playSafe()
	}
}

// Events drains the pending music events
func (a *AudioService) Events() []MusicEvent {
	out := a.events
	a.events = nil
	return out
}

func (a *AudioService) playSafe() {
	if a.song == cfg.SongNone {
		return
	}
	if err := a.backend.PlaySong(a.song); err != nil {
		log.Printf("Warning: Could not play song %d: %v", a.song, err)
		a.song = cfg.SongNone
		a.events = append(a.events, MusicPlaybackFailed)
	}
}

// EbitenAudio is the AudioBackend built on an ebiten audio context
type EbitenAudio struct {
	context     *audio.Context
	loader      *assets.AudioLoader
	musicPlayer *audio.Player
	musicVolume float64
	sfxVolume   float64
}

// NewEbitenAudio creates the audio context. Only one may exist per process.
func NewEbitenAudio() *EbitenAudio {
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	return &EbitenAudio{
		context:     ctx,
		loader:      assets.NewAudioLoader(ctx),
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play
func (b *EbitenAudio) PreloadAllSFX() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := b.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func (b *EbitenAudio) PlaySFX(id cfg.SoundID) error {
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return nil
	}

	player, err := b.loader.LoadSFX(path)
	if err != nil {
		return err
	}

	volume := b.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
	return nil
}

func (b *EbitenAudio) PlaySong(id cfg.SongID) error {
	b.StopSong()

	path, ok := cfg.Sound.SongPaths[id]
	if !ok {
		return nil
	}
	player, err := b.loader.LoadMusic(path)
	if err != nil {
		return err
	}
	player.SetVolume(b.musicVolume)
	player.Play()
	b.musicPlayer = player
	return nil
}

func (b *EbitenAudio) StopSong() {
	if b.musicPlayer != nil {
		_ = b.musicPlayer.Close()
		b.musicPlayer = nil
	}
}

func (b *EbitenAudio) SetSongVolume(volume float64) {
	b.musicVolume = volume
	if b.musicPlayer != nil {
		b.musicPlayer.SetVolume(volume)
	}
}

func (b *EbitenAudio) SongPlaying() bool {
	return b.musicPlayer != nil && b.musicPlayer.IsPlaying()
}

// HasControl is always true: an ebiten game mixes its own output and never
// shares a music channel with another application.
func (b *EbitenAudio) HasControl() bool {
	return true
}
