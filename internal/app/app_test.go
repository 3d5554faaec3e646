package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/ui"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 26)

	cfg := config.Default()
	a, err := NewApp(&cfg, ui.NewScreen(sim), nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a, sim
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestNewApp_InvalidBindings(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	cfg.Keys.PlayerTwoUp = "w"

	if _, err := NewApp(&cfg, ui.NewScreen(sim), nil, slog.New(slog.DiscardHandler)); err == nil {
		t.Error("expected error for duplicate bindings")
	}
}

func TestHandleEvent_Menu(t *testing.T) {
	a, sim := newTestApp(t)
	defer sim.Fini()

	// Cursor starts on 2 PLAYER, moving up selects the unavailable mode
	a.handleEvent(key(tcell.KeyUp, 0))
	if a.Game().MenuIndex() != int(game.ModeOnePlayer) {
		t.Fatalf("expected cursor on 1 PLAYER, got %d", a.Game().MenuIndex())
	}

	a.handleEvent(key(tcell.KeyEnter, 0))
	if a.Game().Phase() != game.PhaseMenu {
		t.Errorf("expected to stay in menu, got %v", a.Game().Phase())
	}

	a.handleEvent(key(tcell.KeyRune, 's'))
	a.handleEvent(key(tcell.KeyEnter, 0))
	if a.Game().Phase() != game.PhasePlay {
		t.Errorf("expected play phase, got %v", a.Game().Phase())
	}
	if a.Game().MatchID() == "" {
		t.Error("expected match id once playing")
	}
}

func TestHandleEvent_PaddleKeys(t *testing.T) {
	a, sim := newTestApp(t)
	defer sim.Fini()

	// Movement keys are ignored in the menu
	a.handleEvent(key(tcell.KeyRune, 'w'))
	if a.Game().Controls.IsDown(game.PlayerOneUp) {
		t.Error("movement keys should not press controls in the menu")
	}

	a.handleEvent(key(tcell.KeyEnter, 0))
	a.handleEvent(key(tcell.KeyRune, 'W'))
	a.handleEvent(key(tcell.KeyDown, 0))

	if !a.Game().Controls.IsDown(game.PlayerOneUp) {
		t.Error("expected player one up to be held")
	}
	if !a.Game().Controls.IsDown(game.PlayerTwoDown) {
		t.Error("expected player two down to be held")
	}
	if a.Game().Controls.IsDown(game.PlayerOneDown) {
		t.Error("player one down should not be held")
	}
}

func TestHandleEvent_Quit(t *testing.T) {
	a, sim := newTestApp(t)
	defer sim.Fini()

	if a.handleEvent(key(tcell.KeyRune, 'x')) {
		t.Error("'x' should not quit")
	}
	if !a.handleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("'q' should quit")
	}
	if !a.handleEvent(key(tcell.KeyEscape, 0)) {
		t.Error("Escape should quit")
	}
}

func TestHandleEvent_Resize(t *testing.T) {
	a, sim := newTestApp(t)
	defer sim.Fini()

	sim.SetSize(40, 20)
	if a.handleEvent(tcell.NewEventResize(40, 20)) {
		t.Error("resize should not quit")
	}
}

func TestStart_QuitKey(t *testing.T) {
	a, sim := newTestApp(t)

	done := make(chan error, 1)
	go func() {
		done <- a.Start(context.Background())
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after quit key")
	}
}

func TestStart_ContextCancel(t *testing.T) {
	a, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
