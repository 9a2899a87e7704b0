package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// FieldConfig describes the play field the match runs on
type FieldConfig struct {
	Width  float64
	Height float64
	// Pointer samples at or right of SplitX control Player 1
	SplitX float64
	Center Vec
}

// Vec is a plain 2D point used by config tables
type Vec struct {
	X, Y float64
}

// BoxConfig is a local collision rectangle relative to a sprite's top-left
type BoxConfig struct {
	X, Y, W, H float64
}

// BallConfig contains ball tuning values
type BallConfig struct {
	BaseSpeed     float64
	RampSeed      float64 // speed component used by the ascending ramp
	GrowthPerTick float64 // velocity multiplier applied per tick in ascending mode
	MaxLaunchDeg  int
	SpriteSize    float64 // texture width/height, also the left exit threshold
	Collision     BoxConfig
}

// PaddleConfig contains paddle tuning values
type PaddleConfig struct {
	SpriteWidth   float64
	SpriteHeight  float64
	Collision     BoxConfig
	TierSpeeds    map[int]float64
	KeyboardSpeed float64
	MaxBounceDeg  float64
	ScaleStep     float64
	P1Center      Vec
	P2Center      Vec
}

// PowerUpConfig contains power-up tuning values
type PowerUpConfig struct {
	SpriteSize       float64
	Collision        BoxConfig
	RotationPerTick  float64 // degrees
	FirstSpawnDelay  time.Duration
	RespawnMinSecs   int
	RespawnMaxSecs   int // exclusive
	SpawnMinX        float64
	SpawnMaxX        float64 // exclusive
	SpawnMarginY     float64
	OffFieldPosition Vec
	BallScaleStep    float64
	FastFactor       float64
	SlowFactor       float64
}

// MatchConfig contains match rules
type MatchConfig struct {
	WinningScore     int
	VibrateDuration  time.Duration
	ScoreMarginTop   float64
	ScoreGapToCenter float64
}

// TransitionTimes is an on/off pair for a screen's fades
type TransitionTimes struct {
	On  time.Duration
	Off time.Duration
}

// TransitionConfig contains the fade timings of every screen kind
type TransitionConfig struct {
	Background TransitionTimes
	Menu       TransitionTimes
	Match      TransitionTimes
	Popup      TransitionTimes
	Loading    TransitionTimes
	// Loading text is shown once the wait for other screens exceeds this
	SlowLoad time.Duration
}

// MenuConfig contains menu layout and colors
type MenuConfig struct {
	TitleY            float64
	TitleSlide        float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	EntryWidth        float64
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleColor        color.RGBA
	PopupFadeAlpha    float64
	PopupBoxColor     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipPersistence bool // Start without restoring the saved screen stack
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Ball BallConfig
var Paddle PaddleConfig
var PowerUp PowerUpConfig
var Match MatchConfig
var Transition TransitionConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 230, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 235, G: 40, B: 40, A: 255}
	Green        = color.RGBA{R: 40, G: 210, B: 70, A: 255}
	Blue         = color.RGBA{R: 40, G: 110, B: 255, A: 255}
	Transparent  = color.RGBA{}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	FreezeTint   = color.RGBA{R: 170, G: 230, B: 255, A: 200}
)

// Palette is the selectable paddle and ball colors, indexed by the stored setting
var Palette = []NamedColor{
	{Name: "White", RGBA: White},
	{Name: "Red", RGBA: Red},
	{Name: "Yellow", RGBA: Yellow},
	{Name: "Blue", RGBA: Blue},
	{Name: "Green", RGBA: Green},
}

// NamedColor pairs a palette color with its menu label
type NamedColor struct {
	Name string
	RGBA color.RGBA
}

// PaletteColor returns the palette entry for index, falling back to white
func PaletteColor(index int) color.RGBA {
	if index < 0 || index >= len(Palette) {
		return White
	}
	return Palette[index].RGBA
}

func init() {
	C = &Config{
		Width:  800,
		Height: 480,
		TPS:    30,
		Title:  "Xtreme Paddle",
	}

	Field = FieldConfig{
		Width:  800,
		Height: 480,
		SplitX: 400,
		Center: Vec{X: 400, Y: 240},
	}

	Ball = BallConfig{
		BaseSpeed:     150,
		RampSeed:      2,
		GrowthPerTick: 1.001,
		MaxLaunchDeg:  45,
		SpriteSize:    48,
		Collision:     BoxConfig{X: 8, Y: 8, W: 32, H: 32},
	}

	Paddle = PaddleConfig{
		SpriteWidth:  48,
		SpriteHeight: 97,
		Collision:    BoxConfig{X: 17, Y: 11, W: 13, H: 75},
		TierSpeeds: map[int]float64{
			1: 250,
			2: 375,
			3: 475,
		},
		KeyboardSpeed: 420,
		MaxBounceDeg:  30,
		ScaleStep:     0.25,
		P1Center:      Vec{X: 665, Y: 240},
		P2Center:      Vec{X: 100, Y: 240},
	}

	PowerUp = PowerUpConfig{
		SpriteSize:       64,
		Collision:        BoxConfig{X: 6, Y: 6, W: 52, H: 52},
		RotationPerTick:  1,
		FirstSpawnDelay:  10 * time.Second,
		RespawnMinSecs:   10,
		RespawnMaxSecs:   15,
		SpawnMinX:        200,
		SpawnMaxX:        600,
		SpawnMarginY:     20,
		OffFieldPosition: Vec{X: -500, Y: -500},
		BallScaleStep:    0.25,
		FastFactor:       1.5,
		SlowFactor:       0.75,
	}

	Match = MatchConfig{
		WinningScore:     10,
		VibrateDuration:  time.Second,
		ScoreMarginTop:   40,
		ScoreGapToCenter: 20,
	}

	Transition = TransitionConfig{
		Background: TransitionTimes{On: 500 * time.Millisecond, Off: 500 * time.Millisecond},
		Menu:       TransitionTimes{On: 500 * time.Millisecond, Off: 500 * time.Millisecond},
		Match:      TransitionTimes{On: 1500 * time.Millisecond, Off: 500 * time.Millisecond},
		Popup:      TransitionTimes{On: 200 * time.Millisecond, Off: 200 * time.Millisecond},
		Loading:    TransitionTimes{On: 500 * time.Millisecond, Off: 0},
		SlowLoad:   time.Second,
	}

	Menu = MenuConfig{
		TitleY:            90,
		TitleSlide:        100,
		MenuStartY:        150,
		MenuItemHeight:    28,
		MenuItemGap:       10,
		EntryWidth:        320,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleColor:        White,
		PopupFadeAlpha:    2.0 / 3.0,
		PopupBoxColor:     color.RGBA{R: 20, G: 20, B: 30, A: 230},
	}

	Debug = DebugConfig{}
}
