package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockdrop/debugui"
	debugui_ebiten "github.com/plus3/blockdrop/debugui/ebiten"
	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/internal/config"
	"github.com/plus3/blockdrop/tick"
	"github.com/spf13/cobra"
)

const (
	// updateRate is the Ebiten TPS. Game ticks are derived from it with an
	// accumulator so the overlay stays responsive at low tick rates.
	updateRate = 60

	windowTitle  = "blockdrop"
	debugWidth   = 1280
	debugHeight  = 800
	debugBoardX  = 580
	debugBoardY  = 20
	frameHistory = 120
)

// frontend implements ebiten.Game and game.Sink.
type frontend struct {
	game     *game.Game
	board    board
	snap     game.Snapshot
	interval time.Duration
	acc      time.Duration
	debug    *debugOverlay
}

// debugOverlay runs the ImGui panels on a scheduler of its own, once per
// Ebiten update.
type debugOverlay struct {
	backend   *debugui_ebiten.ImguiBackend
	scheduler *tick.Scheduler
	input     *debugui.InputState
	perf      *debugui.PerformancePanel
	controls  *debugui.Controls
	timer     *debugui.FrameTimer
}

func newDebugOverlay(g *game.Game) *debugOverlay {
	d := &debugOverlay{
		backend:   debugui_ebiten.NewImguiBackend(windowTitle, debugWidth, debugHeight),
		scheduler: tick.NewScheduler(),
		input:     &debugui.InputState{},
		perf:      debugui.NewPerformancePanel(g.Scheduler(), frameHistory),
		controls:  &debugui.Controls{},
		timer:     debugui.NewFrameTimer(),
	}

	overlay := debugui.NewOverlay()
	overlay.Add("performance", d.perf.Render)
	overlay.Add("well", debugui.NewWellInspector(g.Session()).Render)
	overlay.Add("controls", d.controls.Render)

	tick.Provide(d.scheduler, overlay)
	tick.Provide(d.scheduler, d.input)
	d.scheduler.Register(&debugui.System{})
	return d
}

func newFrontend(cfg config.Config, logger *slog.Logger) *frontend {
	f := &frontend{
		board:    board{cell: float32(cfg.CellSize)},
		interval: tick.Interval(cfg.TickRate),
	}

	seed := resolveSeed(cfg.Seed)
	f.game = game.New(game.Options{
		Width:  cfg.WellWidth,
		Height: cfg.WellHeight,
		Source: newSource(cfg.Randomizer, seed),
		Logger: logger,
	}, f)
	f.snap = f.game.Session().Snapshot()
	logger.Info("playing", "seed", seed, "randomizer", cfg.Randomizer, "tick_rate", cfg.TickRate)

	if cfg.DebugUI {
		f.debug = newDebugOverlay(f.game)
		f.board.ox, f.board.oy = debugBoardX, debugBoardY
	} else {
		ebiten.SetWindowTitle(windowTitle)
		ebiten.SetWindowSize(f.board.pixelSize(cfg.WellWidth, cfg.WellHeight))
	}
	return f
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play (the default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cfg, logger)
	},
}

func runPlay(cfg config.Config, logger *slog.Logger) error {
	f := newFrontend(cfg, logger)

	ebiten.SetTPS(updateRate)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(f)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (f *frontend) Present(snap game.Snapshot) {
	f.snap = snap
}

func (f *frontend) Update() error {
	if f.debug == nil {
		return f.update(true)
	}

	var err error
	f.debug.backend.Frame(func() {
		f.debug.perf.Record(f.debug.timer.Delta())
		f.debug.scheduler.Once(1.0 / updateRate)
		err = f.update(f.debug.controls.Advance())
	})
	return err
}

// update feeds input to the game and runs as many ticks as are due. A paused
// game only accumulates input.
func (f *frontend) update(advance bool) error {
	input := f.game.Input()

	if quitRequested() {
		input.Push(game.Quit)
		f.game.Step(f.interval.Seconds())
		return ebiten.Termination
	}

	if f.debug == nil || !f.debug.input.WantCaptureKeyboard {
		pollKeys(input)
	}

	if !advance {
		return nil
	}
	if f.debug != nil && f.debug.controls.Paused {
		f.acc = f.interval
	} else {
		f.acc += time.Second / updateRate
	}

	for f.acc >= f.interval {
		f.acc -= f.interval
		if !f.game.Step(f.interval.Seconds()) {
			return ebiten.Termination
		}
	}
	return nil
}

func (f *frontend) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	f.board.draw(screen, f.snap)

	if f.debug != nil {
		f.debug.backend.Draw(screen)
	}
}

func (f *frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if f.debug != nil {
		f.debug.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return f.board.pixelSize(f.snap.Width, f.snap.Height)
}
