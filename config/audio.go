package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Match sounds
	SoundPlink
	SoundScore
	SoundWin
	SoundLose
	SoundPause
	// Power-up sounds
	SoundPowerUp
	SoundFreeze
	SoundInvisible
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// SongID represents a logical music track
type SongID int

const (
	SongNone SongID = iota
	SongMenu
	SongSurvival
	SongEasy
	SongMedium
	SongHard
	SongTwoPlayer
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFadeSecs   float32
	ControlPollSecs float64 // how often the music channel owner is re-checked
}

// SoundConfig maps sound and song IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	SongPaths         map[SongID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		MusicFadeSecs:   1,
		ControlPollSecs: 1,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPlink:        "audio/sfx/plink.wav",
			SoundScore:        "audio/sfx/score.wav",
			SoundWin:          "audio/sfx/win.wav",
			SoundLose:         "audio/sfx/lose.wav",
			SoundPause:        "audio/sfx/pause.wav",
			SoundPowerUp:      "audio/sfx/powerup.wav",
			SoundFreeze:       "audio/sfx/freeze.wav",
			SoundInvisible:    "audio/sfx/visible.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		SongPaths: map[SongID]string{
			SongMenu:      "audio/music/menu.wav",
			SongSurvival:  "audio/music/j1_0.wav",
			SongEasy:      "audio/music/j1_1.wav",
			SongMedium:    "audio/music/j1_2.wav",
			SongHard:      "audio/music/j1_3.wav",
			SongTwoPlayer: "audio/music/j2.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPlink: 0.6,
		},
	}
}
