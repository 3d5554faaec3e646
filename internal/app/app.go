package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/duopong/internal/audio"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/logging"
	"github.com/diegok/duopong/internal/ui"
)

// App owns the terminal, the simulation and the frame loop.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	bindings *ui.Bindings
}

// NewApp wires a game to an already initialized screen.
func NewApp(cfg *config.Config, screen *ui.Screen, sound game.Audio, logger *slog.Logger) (*App, error) {
	keys := cfg.Keys
	bindings, err := ui.NewBindings(string(keys.PlayerOneUp), string(keys.PlayerOneDown),
		string(keys.PlayerTwoUp), string(keys.PlayerTwoDown))
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	return &App{
		cfg:      cfg,
		log:      logger,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		game:     game.NewGame(cfg.GameSettings(), sound, logger, nil),
		bindings: bindings,
	}, nil
}

// Run opens the log, the speaker and the terminal, then plays until the
// user quits or the process is signalled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logCloser.Close()

	// Play silently if the speaker is unavailable
	player, err := audio.New(cfg.Mute)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		player, _ = audio.New(true)
	}
	defer player.Close()

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	a, err := NewApp(cfg, screen, player, logger)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "fps", cfg.FPS, "points_to_win", cfg.PointsToWin, "audio", player.Enabled())
	err = a.Start(ctx)
	logger.Info("stopped", "ticks", a.game.Tick)
	return err
}

// Start runs the event pump and the frame loop until the user quits or
// ctx is done. The screen is finalized before Start returns.
func (a *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		defer cancel()
		return a.loop(ctx, events)
	})
	g.Go(func() error {
		return a.pump(ctx, events)
	})
	g.Go(func() error {
		// Fini unblocks PollEvent so the pump can exit
		<-done
		a.screen.Fini()
		return nil
	})

	return g.Wait()
}

// pump forwards terminal events until the screen is finalized
func (a *App) pump(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop advances the game once per frame and redraws it
func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	last := time.Now()
	a.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.game.Step(now.Sub(last))
			last = now
			a.render()
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		switch a.game.Phase() {
		case game.PhaseMenu:
			a.handleMenuKey(ev)
		case game.PhasePlay, game.PhaseScore:
			if ctl, ok := a.bindings.Lookup(ev.Key(), ev.Rune()); ok {
				a.game.Controls.Press(ctl)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}

	return false
}

func (a *App) handleMenuKey(ev *tcell.EventKey) {
	if ui.IsStartKey(ev.Key()) {
		if err := a.game.MenuSelect(); err != nil {
			a.log.Warn("cannot start", "mode", game.MenuModes[a.game.MenuIndex()], "error", err)
		}
		return
	}

	switch ui.MenuMove(a.bindings, ev.Key(), ev.Rune()) {
	case -1:
		a.game.MenuPrev()
	case 1:
		a.game.MenuNext()
	}
}

func (a *App) render() {
	a.renderer.Render(a.game.Snapshot())
}

// Game exposes the running simulation
func (a *App) Game() *game.Game {
	return a.game
}
