package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vape/audio"
	"github.com/lixenwraith/vape/config"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/game"
	"github.com/lixenwraith/vape/input"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/network"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/render"
)

// errQuit ends the goroutine group when the player quits
var errQuit = errors.New("quit")

// App wires the terminal, the fixed-step loop and the spectator server together
type App struct {
	cfg     *config.Config
	logger  *log.Logger
	screen  tcell.Screen
	canvas  render.Canvas
	tracker *input.Tracker
	state   *game.State
	hub     *network.Hub
	audio   *audio.Player

	scheduler *engine.ClockScheduler
	quit      atomic.Bool
}

func newApp(
	cfg *config.Config,
	logger *log.Logger,
	screen tcell.Screen,
	canvas render.Canvas,
	tracker *input.Tracker,
	state *game.State,
	hub *network.Hub,
	player *audio.Player,
	clock engine.Clock,
) *App {
	a := &App{
		cfg:     cfg,
		logger:  logger,
		screen:  screen,
		canvas:  canvas,
		tracker: tracker,
		state:   state,
		hub:     hub,
		audio:   player,
	}
	a.scheduler = engine.NewClockScheduler(clock, parameter.TickInterval, a.step)
	return a
}

// step runs on the loop goroutine once per fixed tick
func (a *App) step(dt time.Duration) {
	if a.quit.Load() {
		return
	}
	if !a.state.Tick(dt, a.tracker.Next()) {
		a.quit.Store(true)
	}
}

// Run starts the first level and blocks until quit, signal or failure
func (a *App) Run(ctx context.Context) error {
	if err := a.state.Start(); err != nil {
		return err
	}
	a.resize()

	var srv *network.Server
	if a.cfg.Network().Enabled() {
		var err error
		if srv, err = network.Listen(a.cfg.Network(), a.hub); err != nil {
			return err
		}
		a.logger.Info("spectator server", log.String("addr", srv.Addr()))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(core.Guarded(func() error { return a.pump(ctx) }))
	g.Go(core.Guarded(func() error { return a.loop(ctx) }))
	g.Go(core.Guarded(func() error {
		// PollEvent only returns once the screen is finalized
		<-ctx.Done()
		a.screen.Fini()
		return nil
	}))
	if srv != nil {
		g.Go(core.Guarded(func() error { return srv.Serve(ctx) }))
	}

	err := g.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	a.logger.Info("shutdown",
		log.Uint64("ticks", a.scheduler.TickCount()),
		log.Uint64("dropped_ticks", a.scheduler.Dropped()),
		log.Err(err),
	)
	return err
}

// loop pumps the scheduler and draws after every batch of steps
func (a *App) loop(ctx context.Context) error {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()
	a.scheduler.Reset()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if a.scheduler.Pump() == 0 {
			continue
		}
		if a.quit.Load() {
			return errQuit
		}
		if err := a.state.Draw(a.canvas); err != nil {
			return errors.Wrap(err, "draw")
		}
	}
}

// pump forwards terminal events to the input tracker until the screen closes
func (a *App) pump(ctx context.Context) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			a.screen.Sync()
			a.resize()
			continue
		}
		a.tracker.HandleEvent(ev)

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.tracker.SetView(cols, rows, float64(a.cfg.Screen.Width), float64(a.cfg.Screen.Height))
}
