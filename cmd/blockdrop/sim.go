package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/internal/config"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/well"
	"github.com/spf13/cobra"
)

type simOptions struct {
	duration       time.Duration
	ticks          int
	kinds          string
	input          string
	report         bool
	gcPauseMetrics bool
}

var simOpts simOptions

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with an autopilot",
	Long: `sim runs the game without a window, as fast as it can tick, feeding it
random moves (or the moves given with --input) until the duration or tick
limit is reached.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runSim(cmd.Context(), simOpts, cfg, logger, cmd.OutOrStdout())
		return err
	},
}

func init() {
	simCmd.Flags().DurationVar(&simOpts.duration, "duration", 10*time.Second, "wall time to run for (0 = no limit)")
	simCmd.Flags().IntVar(&simOpts.ticks, "ticks", 0, "number of ticks to run (0 = no limit)")
	simCmd.Flags().StringVar(&simOpts.kinds, "script", "", "spawn these kinds in a loop, e.g. IOTSZJL")
	simCmd.Flags().StringVar(&simOpts.input, "input", "", "comma separated events to feed in a loop, one per tick")
	simCmd.Flags().BoolVar(&simOpts.report, "report", false, "print a report when the run ends")
	simCmd.Flags().BoolVar(&simOpts.gcPauseMetrics, "gc-pause-metrics", false, "include GC pause metrics in the report")
}

// autopilot picks at most one event per tick.
type autopilot struct {
	rng    *rand.Rand
	script []game.Event
	pos    int
}

// idleWeight is how many of every autopilotMoves+idleWeight random draws
// produce no event.
const idleWeight = 4

var autopilotMoves = []game.Event{
	game.MoveLeft,
	game.MoveRight,
	game.RotateLeft,
	game.RotateRight,
	game.SoftDrop,
	game.HardDrop,
}

func newAutopilot(rng *rand.Rand, script string) (*autopilot, error) {
	a := &autopilot{rng: rng}
	if script == "" {
		return a, nil
	}
	for name := range strings.SplitSeq(script, ",") {
		ev, err := game.ParseEvent(name)
		if err != nil {
			return nil, fmt.Errorf("parse input: %w", err)
		}
		a.script = append(a.script, ev)
	}
	return a, nil
}

func (a *autopilot) next() (game.Event, bool) {
	if len(a.script) > 0 {
		ev := a.script[a.pos]
		a.pos = (a.pos + 1) % len(a.script)
		return ev, true
	}
	n := a.rng.IntN(len(autopilotMoves) + idleWeight)
	if n >= len(autopilotMoves) {
		return 0, false
	}
	return autopilotMoves[n], true
}

func runSim(ctx context.Context, opts simOptions, cfg config.Config, logger *slog.Logger, w io.Writer) (*Report, error) {
	if opts.duration < 0 || opts.ticks < 0 {
		return nil, errors.New("sim: duration and ticks must not be negative")
	}
	if opts.duration == 0 && opts.ticks == 0 {
		return nil, errors.New("sim: set a duration or a tick limit")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	seed := resolveSeed(cfg.Seed)
	var source well.KindSource
	if opts.kinds != "" {
		seq, err := well.ParseSequence(opts.kinds)
		if err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
		source = seq
	} else {
		source = newSource(cfg.Randomizer, seed)
	}

	pilot, err := newAutopilot(newRand(seed+1), opts.input)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Seed:           seed,
		Randomizer:     cfg.Randomizer,
		Script:         opts.kinds,
		Input:          opts.input,
		Width:          cfg.WellWidth,
		Height:         cfg.WellHeight,
		TickRate:       cfg.TickRate,
		Duration:       opts.duration,
		TickLimit:      opts.ticks,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	g := game.New(game.Options{
		Width:  cfg.WellWidth,
		Height: cfg.WellHeight,
		Source: source,
		Logger: logger,
		Listener: game.ListenerFuncs{
			Land: func(_ shape.Shape, rows int) {
				report.BestClear = max(report.BestClear, rows)
			},
		},
	}, nil)

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	logger.Info("sim started", "seed", seed, "duration", opts.duration, "ticks", opts.ticks)
	runtime.ReadMemStats(&report.MemStatsStart)

	dt := 1.0 / float64(cfg.TickRate)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		if opts.ticks > 0 && len(report.TickTime.Samples) >= opts.ticks {
			break
		}

		if ev, ok := pilot.next(); ok {
			g.Input().Push(ev)
		}

		tickStart := time.Now()
		running := g.Step(dt)
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		if !running {
			report.Quit = true
			break
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(g)

	logger.Info("sim finished",
		"ticks", report.TotalTicks,
		"locked", report.Counters.Locked,
		"rows", report.Counters.Rows,
		"soft_resets", report.Counters.SoftResets,
	)

	if opts.report {
		if err := report.Generate(w); err != nil {
			return nil, fmt.Errorf("generate report: %w", err)
		}
	}
	return report, nil
}
