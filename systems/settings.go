package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrSettingType    = errors.New("wrong setting type")
)

const settingsItem = "settings"

// SettingKey names one persisted user preference
type SettingKey string

const (
	KeyTheme        SettingKey = "theme"
	KeySurvivalBest SettingKey = "survival_best"
	KeyXtreme       SettingKey = "xtreme"
	KeyMusic        SettingKey = "music"
	KeyVibration    SettingKey = "vibration"
	KeySound        SettingKey = "sound"
	KeyP1Color      SettingKey = "p1_color"
	KeyP2Color      SettingKey = "p2_color"
	KeyBallColor    SettingKey = "ball_color"
)

// Settings holds the user preferences and writes every change through to
// the item store
type Settings struct {
	Theme        int  `json:"theme"`
	SurvivalBest int  `json:"survival_best"`
	Xtreme       bool `json:"xtreme"`
	Music        bool `json:"music"`
	Vibration    bool `json:"vibration"`
	Sound        bool `json:"sound"`
	P1Color      int  `json:"p1_color"`
	P2Color      int  `json:"p2_color"`
	BallColor    int  `json:"ball_color"`

	store ItemStore
}

// NewSettings returns the default preferences backed by store
func NewSettings(store ItemStore) *Settings {
	s := &Settings{store: store}
	s.reset()
	return s
}

func (s *Settings) reset() {
	store := s.store
	*s = Settings{
		Xtreme:    true,
		Music:     true,
		Vibration: true,
		Sound:     true,
		store:     store,
	}
}

// LoadAll reads every setting from the store. A missing item leaves the
// defaults in place.
func (s *Settings) LoadAll() error {
	s.reset()
	if s.store == nil {
		return nil
	}

	data, err := s.store.LoadItem(settingsItem)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	loaded := *s
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	*s = loaded
	return nil
}

// Save sets key to value and persists the whole set. Integer settings take an
// int, toggles a bool.
func (s *Settings) Save(key SettingKey, value any) error {
	switch key {
	case KeyTheme, KeySurvivalBest, KeyP1Color, KeyP2Color, KeyBallColor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s: %w: %T", key, ErrSettingType, value)
		}
		*s.intField(key) = v
	case KeyXtreme, KeyMusic, KeyVibration, KeySound:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: %w: %T", key, ErrSettingType, value)
		}
		*s.boolField(key) = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return s.persist()
}

// Toggle flips a boolean setting and persists it
func (s *Settings) Toggle(key SettingKey) error {
	field := s.boolField(key)
	if field == nil {
		return fmt.Errorf("%s: %w", key, ErrSettingType)
	}
	return s.Save(key, !*field)
}

// Bool returns a boolean setting, false for keys that are not toggles
func (s *Settings) Bool(key SettingKey) bool {
	if field := s.boolField(key); field != nil {
		return *field
	}
	return false
}

// Int returns an integer setting, 0 for keys that are not integers
func (s *Settings) Int(key SettingKey) int {
	if field := s.intField(key); field != nil {
		return *field
	}
	return 0
}

// RecordSurvival saves streak if it beats the best run and reports whether it did
func (s *Settings) RecordSurvival(streak int) bool {
	if streak <= s.SurvivalBest {
		return false
	}
	if err := s.Save(KeySurvivalBest, streak); err != nil {
		log.Printf("Warning: Could not save survival best: %v", err)
	}
	return true
}

// PaddleColor is the chosen color of a human paddle. The CPU always plays white.
func (s *Settings) PaddleColor(role components.Role) color.RGBA {
	switch role {
	case components.RolePlayer1:
		return cfg.PaletteColor(s.P1Color)
	case components.RolePlayer2:
		return cfg.PaletteColor(s.P2Color)
	}
	return cfg.White
}

func (s *Settings) BallRGBA() color.RGBA {
	return cfg.PaletteColor(s.BallColor)
}

func (s *Settings) intField(key SettingKey) *int {
	switch key {
	case KeyTheme:
		return &s.Theme
	case KeySurvivalBest:
		return &s.SurvivalBest
	case KeyP1Color:
		return &s.P1Color
	case KeyP2Color:
		return &s.P2Color
	case KeyBallColor:
		return &s.BallColor
	}
	return nil
}

func (s *Settings) boolField(key SettingKey) *bool {
	switch key {
	case KeyXtreme:
		return &s.Xtreme
	case KeyMusic:
		return &s.Music
	case KeyVibration:
		return &s.Vibration
	case KeySound:
		return &s.Sound
	}
	return nil
}

func (s *Settings) persist() error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.store.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
