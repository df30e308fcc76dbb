package game_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/well"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 15

type recorder struct {
	snaps []game.Snapshot
	log   []string
}

func (r *recorder) Present(snap game.Snapshot) {
	r.snaps = append(r.snaps, snap)
	r.log = append(r.log, "render")
}

func (r *recorder) listener() game.Listener {
	return game.ListenerFuncs{
		Land:      func(shape.Shape, int) { r.log = append(r.log, "land") },
		SoftReset: func() { r.log = append(r.log, "reset") },
		Spawn:     func(shape.Shape) { r.log = append(r.log, "spawn") },
	}
}

func (r *recorder) last() game.Snapshot {
	return r.snaps[len(r.snaps)-1]
}

func newGame(r *recorder, kinds ...shape.Kind) *game.Game {
	return game.New(game.Options{
		Source:   well.NewSequence(kinds...),
		Listener: r.listener(),
	}, r)
}

func TestStep(t *testing.T) {
	r := &recorder{}
	g := newGame(r, shape.O)

	g.Input().Push(game.MoveLeft)
	require.True(t, g.Step(dt))

	assert.Equal(t, shape.New(shape.O, 3, 1), g.Session().Active(), "input then gravity")
	require.Len(t, r.snaps, 1)

	snap := r.last()
	assert.Equal(t, g.Session().ID(), snap.Session)
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 22, snap.Height)
	assert.Empty(t, snap.Well)
	assert.ElementsMatch(t, []shape.Cell{
		{X: 3, Y: 1, Color: 4}, {X: 4, Y: 1, Color: 4},
		{X: 3, Y: 2, Color: 4}, {X: 4, Y: 2, Color: 4},
	}, snap.Active)
	require.Len(t, snap.Ghost, 4)
	assert.Equal(t, 20, snap.Ghost[0].Y)
	assert.Equal(t, shape.O, snap.Next)
}

func TestQuit(t *testing.T) {
	r := &recorder{}
	g := newGame(r, shape.O)

	g.Input().Push(game.MoveLeft, game.Quit, game.MoveRight, game.MoveRight)
	assert.False(t, g.Step(dt))

	assert.True(t, g.Session().Quit())
	assert.Equal(t, shape.New(shape.O, 3, 0), g.Session().Active(), "moves after quit and gravity are skipped")
	assert.Empty(t, r.snaps, "no render in the quit tick")
	assert.Zero(t, g.Input().Len())

	g.Input().Push(game.MoveLeft)
	assert.False(t, g.Step(dt))
	assert.Equal(t, 3, g.Session().Active().X)
	assert.Equal(t, uint64(1), g.Scheduler().Ticks())
}

func TestListenerRunsAfterRender(t *testing.T) {
	r := &recorder{}
	g := newGame(r, shape.I, shape.T)

	g.Input().Push(game.HardDrop)
	require.True(t, g.Step(dt))

	assert.Equal(t, []string{"render", "land", "spawn"}, r.log)
	assert.Len(t, r.last().Well, 4, "the render already shows the locked shape")
	assert.Equal(t, shape.T, g.Session().Active().Kind)
}

func TestSoftResetClearsBeforeRender(t *testing.T) {
	r := &recorder{}
	g := newGame(r, shape.O)

	for range 10 {
		g.Input().Push(game.HardDrop)
		require.True(t, g.Step(dt))
	}
	require.Len(t, r.last().Well, 40)
	r.log = nil

	g.Input().Push(game.HardDrop)
	require.True(t, g.Step(dt))

	snap := r.last()
	assert.Empty(t, snap.Well, "well is empty in the same tick's render")
	assert.Equal(t, 1, snap.Counters.SoftResets)
	assert.Equal(t, []string{"render", "land", "reset", "spawn"}, r.log)
}

func TestRun(t *testing.T) {
	t.Run("quit ends run", func(t *testing.T) {
		g := game.New(game.Options{Source: well.NewSequence(shape.L)}, nil)
		g.Input().Push(game.Quit)

		err := g.Run(context.Background(), 1000)
		require.NoError(t, err)
		assert.True(t, g.Session().Quit())
	})

	t.Run("context deadline", func(t *testing.T) {
		g := game.New(game.Options{Source: well.NewSequence(shape.L)}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err := g.Run(ctx, 200)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.NotZero(t, g.Session().Counters().Ticks)
	})
}

func TestParseEvent(t *testing.T) {
	for _, ev := range []game.Event{game.Quit, game.MoveLeft, game.MoveRight, game.RotateLeft, game.RotateRight, game.SoftDrop, game.HardDrop} {
		parsed, err := game.ParseEvent(ev.String())
		require.NoError(t, err)
		assert.Equal(t, ev, parsed)
	}

	ev, err := game.ParseEvent(" Rotate-Left ")
	require.NoError(t, err)
	assert.Equal(t, game.RotateLeft, ev)

	_, err = game.ParseEvent("jump")
	assert.Error(t, err)
	assert.Equal(t, "Event(42)", game.Event(42).String())
}

func TestInput(t *testing.T) {
	in := game.NewInput()
	in.Push(game.MoveLeft, game.RotateRight)
	in.Push(game.SoftDrop)

	assert.Equal(t, 3, in.Len())
	assert.Equal(t, []game.Event{game.MoveLeft, game.RotateRight, game.SoftDrop}, in.Drain())
	assert.Zero(t, in.Len())
	assert.Empty(t, in.Drain())
}

func TestCountersClone(t *testing.T) {
	s := newSession(shape.S, shape.Z)
	c := s.Counters().Clone()

	s.HardDrop()
	_, landed := s.Fall()
	require.True(t, landed)

	assert.Equal(t, 1, c.Spawned(shape.S))
	assert.Equal(t, 0, c.Spawned(shape.Z), "clone is detached")
	assert.Equal(t, 1, s.Counters().Spawned(shape.Z))
	assert.Equal(t, 2, s.Counters().Spawns())
	assert.Equal(t, 0, game.Counters{}.Spawned(shape.S))
}

func ExampleGame() {
	g := game.New(game.Options{Source: well.NewSequence(shape.O)}, nil)

	g.Input().Push(game.MoveLeft, game.MoveLeft)
	g.Step(dt)
	fmt.Println(g.Session().Active().X, g.Session().Active().Y)

	g.Input().Push(game.Quit)
	fmt.Println(g.Step(dt))
	// Output:
	// 2 1
	// false
}
