package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/xtremepaddle/assets"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/automoto/xtremepaddle/scenes"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "xtremepaddle"

// Game is the ebiten host of the screen stack
type Game struct {
	manager *scenes.Manager
	audio   *systems.AudioService
	poller  *systems.InputPoller
	input   components.InputData

	resetElapsed bool
	exiting      bool
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	themes, err := assets.LoadThemes()
	if err != nil {
		log.Printf("Warning: Could not load themes: %v", err)
	}
	court, err := assets.LoadCourt()
	if err != nil {
		log.Printf("Warning: Could not load court layout: %v", err)
	}

	store := systems.OpenStore(appName)
	settings := systems.NewSettings(store)
	if err := settings.LoadAll(); err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}

	backend := systems.NewEbitenAudio()
	backend.PreloadAllSFX()

	g := &Game{
		poller: systems.NewInputPoller(),
		audio:  systems.NewAudioService(backend, settings),
	}
	g.manager = scenes.NewManager(&scenes.Services{
		Settings: settings,
		Audio:    g.audio,
		Store:    store,
		Host:     g,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Court:    court,
		Themes:   themes,
	})

	if cfg.Debug.SkipPersistence || !g.manager.Deserialize() {
		g.manager.AddScreen(scenes.NewBackgroundScreen())
		g.manager.AddScreen(scenes.NewMenuScreen(scenes.MenuMain))
	}
	if _, inMatch := g.topScreen().(*scenes.MatchScreen); !inMatch {
		g.audio.PlaySong(cfg.SongMenu)
	}
	g.manager.Initialize()

	return g
}

func (g *Game) topScreen() scenes.Screen {
	screens := g.manager.Screens()
	if len(screens) == 0 {
		return nil
	}
	return screens[len(screens)-1]
}

func (g *Game) ResetElapsedTime() { g.resetElapsed = true }
func (g *Game) Exit()             { g.exiting = true }
func (g *Game) IsActive() bool    { return ebiten.IsFocused() }

func (g *Game) Vibrate(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: 1,
	})
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if err := g.manager.Serialize(); err != nil {
			log.Printf("Warning: Could not save screens: %v", err)
		}
		return ebiten.Termination
	}
	if g.exiting {
		return ebiten.Termination
	}

	dt := 1.0 / float64(cfg.C.TPS)
	if g.resetElapsed {
		dt = 0
		g.resetElapsed = false
	}

	g.poller.Poll(&g.input)
	if g.manager.EnabledGestures()&scenes.GestureTap == 0 {
		g.input.Taps = g.input.Taps[:0]
	}

	g.audio.Update(dt)
	for _, ev := range g.audio.Events() {
		switch ev {
		case systems.MusicAskControl:
			g.manager.AddScreen(scenes.NewMessagePopup("Another app is playing music"))
		case systems.MusicPlaybackFailed:
			log.Printf("Warning: %v", ev)
		}
	}

	g.manager.Update(dt, &g.input)

	if g.exiting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.BoolVar(&cfg.Debug.SkipPersistence, "nosave", false, "Start fresh and do not touch saved data")
	flag.Parse()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil && err != ebiten.Termination {
		log.Fatal(fmt.Errorf("run game: %w", err))
	}
}
