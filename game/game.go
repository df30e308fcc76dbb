package game

import (
	"context"

	"github.com/plus3/blockdrop/tick"
)

// Game wires a Session and its input queue to a scheduler running the input,
// gravity and render systems in that order.
type Game struct {
	session   *Session
	input     *Input
	scheduler *tick.Scheduler
}

// New creates a game. sink may be nil for headless use.
func New(opts Options, sink Sink) *Game {
	g := &Game{
		session:   NewSession(opts),
		input:     NewInput(),
		scheduler: tick.NewScheduler(),
	}

	tick.Provide(g.scheduler, g.session)
	tick.Provide(g.scheduler, g.input)

	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&RenderSystem{Sink: sink})
	return g
}

func (g *Game) Session() *Session { return g.session }
func (g *Game) Input() *Input { return g.input }
func (g *Game) Scheduler() *tick.Scheduler { return g.scheduler }
func (g *Game) Register(system tick.System) { g.scheduler.Register(system) }

// Step runs one tick. It returns false once the game has quit.
func (g *Game) Step(dt float64) bool {
	if g.session.quit {
		return false
	}
	g.scheduler.Once(dt)
	return !g.session.quit
}

// Run ticks at rate hertz until a quit event arrives or ctx is cancelled.
func (g *Game) Run(ctx context.Context, rate int) error {
	return g.scheduler.Run(ctx, tick.Interval(rate))
}
