package scenes

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/systems"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func settle(m *Manager, ticks int) {
	for i := 0; i < ticks; i++ {
		m.Update(tick, nil)
	}
}

func topScreen(m *Manager) Screen {
	screens := m.Screens()
	if len(screens) == 0 {
		return nil
	}
	return screens[len(screens)-1]
}

func sfxCall(id cfg.SoundID) string {
	return fmt.Sprintf("sfx %d", id)
}

func cancelInput() *components.InputData {
	in := &components.InputData{}
	in.Current[cfg.ActionBack] = true
	return in
}

func TestLoadWaitsForOtherScreensToLeave(t *testing.T) {
	env := newTestEnv()
	env.m.AddScreen(NewBackgroundScreen())
	env.m.AddScreen(NewMenuScreen(MenuMain))
	settle(env.m, 20)

	target := newTestScreen(0, 0, false)
	Load(env.m, target)
	loading, ok := topScreen(env.m).(*LoadingScreen)
	if !ok {
		t.Fatalf("top screen = %T, want *LoadingScreen", topScreen(env.m))
	}

	ticks := 0
	for ; ticks < 120 && !onStack(env.m, target); ticks++ {
		env.m.Update(tick, nil)
	}

	if !onStack(env.m, target) {
		t.Fatal("target never loaded")
	}
	if ticks < 10 {
		t.Errorf("target loaded after %d ticks, before the old screens could animate off", ticks)
	}
	if got := len(env.m.Screens()); got != 1 {
		t.Errorf("stack has %d screens, want only the target", got)
	}
	if env.host.resets != 1 {
		t.Errorf("elapsed time resets = %d, want 1", env.host.resets)
	}
	if loading.Slow() {
		t.Error("a half second wait is not a slow load")
	}
}

func TestLoadPushesTargetsInOrder(t *testing.T) {
	env := newTestEnv()
	bg := NewBackgroundScreen()
	menu := NewMenuScreen(MenuMain)

	Load(env.m, bg, menu)
	settle(env.m, 30)

	screens := env.m.Screens()
	if len(screens) != 2 || screens[0] != Screen(bg) || screens[1] != Screen(menu) {
		t.Errorf("stack = %v, want background then menu", screens)
	}
}

func newLoadedMatch(t *testing.T, env *testEnv, st matchState) *MatchScreen {
	t.Helper()
	env.m.Initialize()
	match := restoreMatchScreen(st)
	env.m.AddScreen(match)
	if match.World() == nil {
		t.Fatal("match world not built on add")
	}
	return match
}

func matchBall(t *testing.T, s *MatchScreen) *components.BallData {
	t.Helper()
	entry, ok := tags.Ball.First(s.World().World)
	if !ok {
		t.Fatal("no ball")
	}
	return components.Ball.Get(entry)
}

func TestMatchLoadStartsItsSong(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierHard)
	newLoadedMatch(t, env, matchState{Setup: setup})

	want := []string{"stop", fmt.Sprintf("song %d", cfg.SongHard)}
	if !slices.Equal(env.backend.calls, want) {
		t.Errorf("audio calls = %v, want %v", env.backend.calls, want)
	}
	if env.host.resets != 1 {
		t.Errorf("elapsed time resets = %d, want 1", env.host.resets)
	}
}

func TestMatchWinStopsMusicBeforeJingle(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierMedium)
	match := newLoadedMatch(t, env, matchState{Setup: setup, ScoreP1: cfg.Match.WinningScore - 1})
	env.backend.calls = nil

	ball := matchBall(t, match)
	ball.Position = dmath.Vec2{X: -200, Y: 200}
	ball.Velocity = dmath.Vec2{X: -600, Y: 0}

	env.m.Update(tick, &components.InputData{})

	stop := slices.Index(env.backend.calls, "stop")
	win := slices.Index(env.backend.calls, sfxCall(cfg.SoundWin))
	if stop < 0 || win < 0 || stop > win {
		t.Fatalf("audio calls = %v, want stop before the win jingle", env.backend.calls)
	}
	if score := slices.Index(env.backend.calls, sfxCall(cfg.SoundScore)); score < 0 || score > stop {
		t.Errorf("audio calls = %v, want the score sound before the music stops", env.backend.calls)
	}
	if env.backend.SongPlaying() {
		t.Error("music still playing")
	}

	popup, ok := topScreen(env.m).(*PopupScreen)
	if !ok || popup.Role() != PopupWinner {
		t.Fatalf("top screen = %T, want winner popup", topScreen(env.m))
	}
	if got := popup.Lines()[0]; got != "You win!" {
		t.Errorf("winner text = %q", got)
	}
	if len(env.host.vibrations) != 1 || env.host.vibrations[0] != cfg.Match.VibrateDuration {
		t.Errorf("vibrations = %v", env.host.vibrations)
	}

	// the decided match stops simulating
	x := ball.Position.X
	env.m.Update(tick, nil)
	if ball.Position.X != x {
		t.Error("ball moved after the match ended")
	}
}

func TestMatchCPUWinPlaysLose(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierEasy)
	match := newLoadedMatch(t, env, matchState{Setup: setup, ScoreP2: cfg.Match.WinningScore - 1})
	env.backend.calls = nil

	ball := matchBall(t, match)
	ball.Position = dmath.Vec2{X: cfg.Field.Width + 20, Y: 200}
	ball.Velocity = dmath.Vec2{X: 600, Y: 0}

	env.m.Update(tick, nil)

	if !slices.Contains(env.backend.calls, sfxCall(cfg.SoundLose)) {
		t.Errorf("audio calls = %v, want the lose sound", env.backend.calls)
	}
	popup, ok := topScreen(env.m).(*PopupScreen)
	if !ok || popup.Lines()[0] != "You lose!" {
		t.Errorf("top screen = %#v, want a lose popup", topScreen(env.m))
	}
}

func TestSurvivalEndRecordsBest(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeSurvival, 0)
	match := newLoadedMatch(t, env, matchState{Setup: setup, ScoreP1: 3})

	ball := matchBall(t, match)
	ball.Position = dmath.Vec2{X: cfg.Field.Width + 20, Y: 200}
	ball.Velocity = dmath.Vec2{X: 600, Y: 0}

	env.m.Update(tick, nil)

	popup, ok := topScreen(env.m).(*PopupScreen)
	if !ok || popup.Role() != PopupSurvivalEnd {
		t.Fatalf("top screen = %T, want survival end popup", topScreen(env.m))
	}
	if want := []string{"Streak: 3", "New best!"}; !slices.Equal(popup.Lines(), want) {
		t.Errorf("lines = %v, want %v", popup.Lines(), want)
	}
	if env.m.Services().Settings.SurvivalBest != 3 {
		t.Errorf("best = %d, want 3", env.m.Services().Settings.SurvivalBest)
	}
	if !slices.Contains(env.backend.calls, sfxCall(cfg.SoundLose)) {
		t.Error("expected the lose sound")
	}
}

func TestMatchCancelPauses(t *testing.T) {
	env := newTestEnv()
	match := newLoadedMatch(t, env, matchState{Setup: cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierMedium)})

	env.m.Update(tick, cancelInput())

	popup, ok := topScreen(env.m).(*PopupScreen)
	if !ok || popup.Role() != PopupPause {
		t.Fatalf("top screen = %T, want pause popup", topScreen(env.m))
	}
	if !slices.Contains(env.backend.calls, sfxCall(cfg.SoundPause)) {
		t.Error("expected the pause sound")
	}

	ball := matchBall(t, match)
	x := ball.Position.X
	env.m.Update(tick, nil)
	if ball.Position.X != x {
		t.Error("paused match kept running")
	}
	if match.State() == Hidden {
		t.Error("a popup must not hide the match")
	}
}

func TestMatchHandsInputToPaddles(t *testing.T) {
	env := newTestEnv()
	match := newLoadedMatch(t, env, matchState{Setup: cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierMedium)})

	in := &components.InputData{Pointers: []components.Point{{X: 700, Y: 100}}}
	env.m.Update(tick, in)
	env.m.Update(tick, nil)

	var p1 *components.PaddleData
	tags.Paddle.Each(match.World().World, func(entry *donburi.Entry) {
		if p := components.Paddle.Get(entry); p.Role == components.RolePlayer1 {
			p1 = p
		}
	})
	if got, want := p1.Position.Y, 100-p1.Bounds().H/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("paddle y = %v, want %v", got, want)
	}
}

func TestMatchSerializesLiveScore(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeTwoPlayer, cfg.TierAscending)
	match := newLoadedMatch(t, env, matchState{Setup: setup})
	systems.GetMatch(match.World()).ScoreRight = 4
	systems.GetMatch(match.World()).ScoreLeft = 6

	data, err := match.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	var st matchState
	if err := json.Unmarshal(data, &st); err != nil {
		t.Fatal(err)
	}
	if st.Setup != setup || st.ScoreP1 != 4 || st.ScoreP2 != 6 {
		t.Errorf("saved %+v", st)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierHard)
	env.m.AddScreen(NewBackgroundScreen())
	env.m.AddScreen(NewMenuScreen(MenuMain))
	env.m.AddScreen(NewMenuScreen(MenuAbout))
	env.m.AddScreen(NewSetupScreen(cfg.ModeTwoPlayer, cfg.TierAscending))
	env.m.AddScreen(restoreMatchScreen(matchState{Setup: setup, ScoreP1: 3, ScoreP2: 5, Streak: 1}))
	env.m.AddScreen(NewPausePopup())

	if err := env.m.Serialize(); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored := NewManager(env.m.Services())
	if !restored.Deserialize() {
		t.Fatal("Deserialize failed")
	}

	screens := restored.Screens()
	if len(screens) != 5 {
		t.Fatalf("restored %d screens, want 5", len(screens))
	}
	if _, ok := screens[0].(*BackgroundScreen); !ok {
		t.Errorf("screen 0 = %T", screens[0])
	}
	if menu, ok := screens[1].(*MenuScreen); !ok || menu.Role() != MenuMain {
		t.Errorf("screen 1 = %#v", screens[1])
	}
	if menu, ok := screens[2].(*MenuScreen); !ok || menu.Role() != MenuAbout {
		t.Errorf("screen 2 = %#v", screens[2])
	}
	if s, ok := screens[3].(*SetupScreen); !ok || s.mode != cfg.ModeTwoPlayer || s.difficulty != cfg.TierAscending {
		t.Errorf("screen 3 = %#v", screens[3])
	}
	match, ok := screens[4].(*MatchScreen)
	if !ok {
		t.Fatalf("screen 4 = %T", screens[4])
	}
	if want := (matchState{Setup: setup, ScoreP1: 3, ScoreP2: 5, Streak: 1}); match.saved != want {
		t.Errorf("match state = %+v, want %+v", match.saved, want)
	}
}

func TestSerializeShrinksSavedStack(t *testing.T) {
	env := newTestEnv()
	env.m.AddScreen(NewBackgroundScreen())
	env.m.AddScreen(NewMenuScreen(MenuMain))
	env.m.AddScreen(NewMenuScreen(MenuAbout))
	if err := env.m.Serialize(); err != nil {
		t.Fatal(err)
	}

	short := NewManager(env.m.Services())
	short.AddScreen(NewBackgroundScreen())
	if err := short.Serialize(); err != nil {
		t.Fatal(err)
	}

	restored := NewManager(env.m.Services())
	if !restored.Deserialize() || len(restored.Screens()) != 1 {
		t.Errorf("restored %d screens, want 1", len(restored.Screens()))
	}
}

func matchBlob(t *testing.T, st matchState) []byte {
	t.Helper()
	data, err := json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDeserializeFailureRestoresNothing(t *testing.T) {
	vsAI := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierMedium)
	tests := []struct {
		name  string
		saved []systems.SavedScreen
	}{
		{"unknown kind", []systems.SavedScreen{
			{Kind: KindBackground, Data: []byte("{}")},
			{Kind: "credits", Data: []byte("{}")},
		}},
		{"corrupt match", []systems.SavedScreen{
			{Kind: KindBackground, Data: []byte("{}")},
			{Kind: KindMatch, Data: []byte("{not json")},
		}},
		{"invalid setup", []systems.SavedScreen{
			{Kind: KindMatch, Data: []byte(`{"setup":{"mode":9}}`)},
		}},
		{"bad menu role", []systems.SavedScreen{
			{Kind: KindMenu, Data: []byte(`{"role":7}`)},
		}},
		{"survival setup screen", []systems.SavedScreen{
			{Kind: KindSetup, Data: []byte(`{"mode":2,"difficulty":0}`)},
		}},
		{"match already won", []systems.SavedScreen{
			{Kind: KindMatch, Data: matchBlob(t, matchState{Setup: vsAI, ScoreP1: cfg.Match.WinningScore})},
		}},
		{"negative score", []systems.SavedScreen{
			{Kind: KindMatch, Data: matchBlob(t, matchState{Setup: vsAI, ScoreP2: -1})},
		}},
		{"survival run already lost", []systems.SavedScreen{
			{Kind: KindMatch, Data: matchBlob(t, matchState{Setup: cfg.SetupFromDifficulty(cfg.ModeSurvival, 0), ScoreP1: 4, ScoreP2: 1})},
		}},
		{"negative streak", []systems.SavedScreen{
			{Kind: KindMatch, Data: matchBlob(t, matchState{Setup: vsAI, Streak: -3})},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			if err := systems.SaveScreenStack(env.store, tt.saved); err != nil {
				t.Fatal(err)
			}

			if env.m.Deserialize() {
				t.Fatal("Deserialize succeeded")
			}
			if n := len(env.m.Screens()); n != 0 {
				t.Errorf("%d screens pushed, want none", n)
			}
			if _, err := systems.LoadScreenStack(env.store); !errors.Is(err, systems.ErrNoSavedState) {
				t.Errorf("saved state not cleared: %v", err)
			}
		})
	}
}

func TestRestoreLongSurvivalRun(t *testing.T) {
	st := matchState{Setup: cfg.SetupFromDifficulty(cfg.ModeSurvival, 0), ScoreP1: cfg.Match.WinningScore + 5, Streak: 15}
	s, err := restoreScreen(systems.SavedScreen{Kind: KindMatch, Data: matchBlob(t, st)})
	if err != nil {
		t.Fatalf("restoreScreen: %v", err)
	}
	if match, ok := s.(*MatchScreen); !ok || match.saved != st {
		t.Errorf("restored %#v, want a match with %+v", s, st)
	}
}

func TestRestoreUnknownKind(t *testing.T) {
	_, err := restoreScreen(systems.SavedScreen{Kind: "credits", Data: []byte("{}")})
	if !errors.Is(err, ErrUnknownScreen) {
		t.Errorf("err = %v, want ErrUnknownScreen", err)
	}
}

func TestDeserializeWithNothingSaved(t *testing.T) {
	env := newTestEnv()
	if env.m.Deserialize() {
		t.Error("Deserialize succeeded on an empty store")
	}
}

func TestMainMenuCommands(t *testing.T) {
	env := newTestEnv()
	menu := NewMenuScreen(MenuMain)
	env.m.AddScreen(NewBackgroundScreen())
	env.m.AddScreen(menu)

	menu.execute(CommandTwoPlayers)
	setup, ok := topScreen(env.m).(*SetupScreen)
	if !ok || setup.mode != cfg.ModeTwoPlayer {
		t.Fatalf("top screen = %#v, want two player setup", topScreen(env.m))
	}
	env.m.RemoveScreen(setup)

	menu.execute(CommandAbout)
	if about, ok := topScreen(env.m).(*MenuScreen); !ok || about.Role() != MenuAbout {
		t.Fatalf("top screen = %#v, want about", topScreen(env.m))
	}
	env.m.RemoveScreen(topScreen(env.m))

	settings := env.m.Services().Settings
	menu.execute(CommandToggleSound)
	menu.execute(CommandToggleVibration)
	if settings.Sound || settings.Vibration {
		t.Error("toggles did not flip")
	}
	if got := CommandToggleSound.Label(settings); got != "Sound: Off" {
		t.Errorf("label = %q", got)
	}

	menu.execute(CommandSurvival)
	if _, ok := topScreen(env.m).(*LoadingScreen); !ok {
		t.Errorf("top screen = %T, want the loading screen", topScreen(env.m))
	}
}

func TestMenuTapSelectsEntry(t *testing.T) {
	env := newTestEnv()
	menu := NewMenuScreen(MenuMain)
	env.m.AddScreen(menu)

	r := menu.list.entryRect(0)
	menu.HandleInput(&components.InputData{Taps: []components.Point{{X: r.CenterX(), Y: r.CenterY()}}})

	if setup, ok := topScreen(env.m).(*SetupScreen); !ok || setup.mode != cfg.ModeVsAI {
		t.Errorf("top screen = %#v, want one player setup", topScreen(env.m))
	}
}

func TestMenuKeyboardNavigation(t *testing.T) {
	env := newTestEnv()
	menu := NewMenuScreen(MenuMain)
	env.m.AddScreen(menu)

	up := &components.InputData{}
	up.Current[cfg.ActionMenuUp] = true
	menu.HandleInput(up)
	if got := menu.list.entries[menu.list.selected]; got != CommandAbout {
		t.Errorf("selection wrapped to %v, want About", got)
	}
	if !slices.Contains(env.backend.calls, sfxCall(cfg.SoundMenuNavigate)) {
		t.Error("expected a navigation sound")
	}
}

func TestMainMenuCancelSavesAndExits(t *testing.T) {
	env := newTestEnv()
	menu := NewMenuScreen(MenuMain)
	env.m.AddScreen(NewBackgroundScreen())
	env.m.AddScreen(menu)

	menu.HandleInput(cancelInput())

	if !env.host.exited {
		t.Error("host not asked to exit")
	}
	saved, err := systems.LoadScreenStack(env.store)
	if err != nil || len(saved) != 2 {
		t.Errorf("saved %d screens (%v), want 2", len(saved), err)
	}
}

func TestAboutCancelExits(t *testing.T) {
	env := newTestEnv()
	about := NewMenuScreen(MenuAbout)
	env.m.AddScreen(about)

	about.HandleInput(cancelInput())

	if !about.IsExiting() || env.host.exited {
		t.Error("about should close itself, not the game")
	}
}

func TestPopupCommands(t *testing.T) {
	env := newTestEnv()
	pause := NewPausePopup()
	env.m.AddScreen(pause)
	pause.execute(CommandResume)
	if !pause.IsExiting() {
		t.Error("resume should close the pause popup")
	}

	setup := cfg.SetupFromDifficulty(cfg.ModeVsAI, cfg.TierEasy)
	winner := NewWinnerPopup("You win!", setup)
	env.m.AddScreen(winner)
	winner.execute(CommandMainMenu)
	if _, ok := topScreen(env.m).(*LoadingScreen); !ok {
		t.Fatalf("top screen = %T, want loading", topScreen(env.m))
	}
	if env.backend.playing != cfg.SongMenu {
		t.Errorf("song = %v, want menu music", env.backend.playing)
	}
}

func TestPlayAgainLoadsSameSetup(t *testing.T) {
	env := newTestEnv()
	setup := cfg.SetupFromDifficulty(cfg.ModeTwoPlayer, cfg.TierHard)
	popup := NewSurvivalEndPopup(2, 7, false, setup)
	env.m.AddScreen(popup)
	if want := []string{"Streak: 2", "Best: 7"}; !slices.Equal(popup.Lines(), want) {
		t.Errorf("lines = %v, want %v", popup.Lines(), want)
	}

	popup.execute(CommandPlayAgain)
	settle(env.m, 30)

	match, ok := topScreen(env.m).(*MatchScreen)
	if !ok || match.Setup() != setup {
		t.Errorf("top screen = %#v, want a match with the same setup", topScreen(env.m))
	}
}

func TestMessagePopupOK(t *testing.T) {
	env := newTestEnv()
	msg := NewMessagePopup("Play your music?")
	env.m.AddScreen(msg)

	r := msg.list.entryRect(0)
	msg.HandleInput(&components.InputData{Taps: []components.Point{{X: r.CenterX(), Y: r.CenterY()}}})

	if !msg.IsExiting() {
		t.Error("OK should close the message")
	}
}

func TestSlowLoad(t *testing.T) {
	s := &LoadingScreen{}
	s.waited = cfg.Transition.SlowLoad.Seconds() - 0.01
	if s.Slow() {
		t.Error("slow too early")
	}
	s.waited += 0.02
	if !s.Slow() {
		t.Error("not slow after the threshold")
	}
}

func TestStartingMatchFadesMenuMusic(t *testing.T) {
	env := newTestEnv()
	env.m.Services().Audio.PlaySong(cfg.SongMenu)
	menu := NewMenuScreen(MenuMain)
	env.m.AddScreen(menu)

	menu.execute(CommandSurvival)

	if !env.m.Services().Audio.Fading() {
		t.Error("menu music should fade while the match loads")
	}
	if _, ok := topScreen(env.m).(*LoadingScreen); !ok {
		t.Errorf("top screen = %T, want *LoadingScreen", topScreen(env.m))
	}
}
