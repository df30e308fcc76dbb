package game_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/well"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(kinds ...shape.Kind) *game.Session {
	return game.NewSession(game.Options{Source: well.NewSequence(kinds...)})
}

func TestNewSession(t *testing.T) {
	s := newSession(shape.O, shape.T)

	assert.Equal(t, 10, s.Well().Width())
	assert.Equal(t, 22, s.Well().Height())
	assert.Equal(t, shape.New(shape.O, 4, 0), s.Active())
	assert.Equal(t, shape.T, s.Next())
	assert.Equal(t, 1, s.Counters().Spawned(shape.O))
	assert.NotEqual(t, s.ID(), newSession(shape.O).ID())
}

func TestShift(t *testing.T) {
	s := newSession(shape.I)
	require.Equal(t, 5, s.Active().X)

	for range 4 {
		assert.True(t, s.Shift(1))
	}
	assert.Equal(t, 9, s.Active().X)
	assert.False(t, s.Shift(1), "right wall")
	assert.Equal(t, 9, s.Active().X)

	for range 9 {
		assert.True(t, s.Shift(-1))
	}
	assert.False(t, s.Shift(-1), "left wall")
	assert.Equal(t, 0, s.Active().X)
}

func TestShiftBlockedByCells(t *testing.T) {
	s := newSession(shape.O)
	s.Well().Consume(shape.New(shape.I, 3, 0))

	assert.False(t, s.Shift(-1))
	assert.Equal(t, 4, s.Active().X)
	assert.True(t, s.Shift(1))
}

func TestRotate(t *testing.T) {
	t.Run("clamped against the right wall", func(t *testing.T) {
		s := newSession(shape.I)
		for range 4 {
			s.Shift(1)
		}
		require.Equal(t, 9, s.Active().X)

		assert.True(t, s.Rotate(1))
		assert.Equal(t, 6, s.Active().X, "four wide box shifted left to fit")
		assert.Equal(t, shape.Three, s.Active().Orientation())
	})

	t.Run("rotate left wraps to nine", func(t *testing.T) {
		s := newSession(shape.T)
		s.Descend()
		assert.True(t, s.Rotate(-1))
		assert.Equal(t, shape.Nine, s.Active().Orientation())
		assert.True(t, s.Rotate(1))
		assert.Equal(t, shape.Twelve, s.Active().Orientation())
	})

	t.Run("rejected below the floor", func(t *testing.T) {
		s := newSession(shape.I)
		require.True(t, s.Rotate(1))
		for s.Descend() {
		}
		require.Equal(t, 21, s.Active().Y)

		before := s.Active()
		assert.False(t, s.Rotate(1), "vertical I would reach past the floor")
		assert.Equal(t, before, s.Active())
	})

	t.Run("rejected by occupied cells", func(t *testing.T) {
		s := newSession(shape.I)
		s.Well().Consume(shape.Shape{Kind: shape.I, X: 6, Y: 0, Rotation: 1})

		before := s.Active()
		assert.False(t, s.Rotate(1))
		assert.Equal(t, before, s.Active())
	})
}

func TestFall(t *testing.T) {
	s := newSession(shape.O, shape.T)

	falls := 0
	var landing game.Landing
	for {
		l, landed := s.Fall()
		if landed {
			landing = l
			break
		}
		falls++
	}

	assert.Equal(t, 20, falls, "O descends from row 0 to row 20")
	assert.Equal(t, shape.New(shape.O, 4, 20), landing.Shape)
	assert.Equal(t, 0, landing.Rows)
	assert.False(t, landing.SoftReset)
	assert.Equal(t, shape.T, landing.Spawned.Kind)
	assert.Equal(t, landing.Spawned, s.Active())
	assert.Equal(t, 4, s.Well().Occupied())
	assert.Equal(t, 1, s.Counters().Locked)
}

func TestFallEliminatesRows(t *testing.T) {
	s := newSession(shape.I)

	// Bottom row full except column 9; column 8 stands four high.
	s.Well().Consume(shape.Shape{Kind: shape.I, X: 0, Y: 21, Rotation: 1})
	s.Well().Consume(shape.Shape{Kind: shape.I, X: 4, Y: 21, Rotation: 1})
	s.Well().Consume(shape.New(shape.I, 8, 18))
	require.Equal(t, 12, s.Well().Occupied())

	for s.Shift(1) {
	}
	require.Equal(t, 9, s.Active().X)

	s.HardDrop()
	require.Equal(t, 18, s.Active().Y)
	landing, landed := s.Fall()
	require.True(t, landed)

	assert.Equal(t, 1, landing.Rows)
	assert.Equal(t, 6, s.Well().Occupied(), "sixteen cells less one full row")
	assert.Equal(t, 1, s.Counters().Rows)
	for y := 19; y < 22; y++ {
		assert.NotZero(t, s.Well().At(8, y))
		assert.NotZero(t, s.Well().At(9, y))
	}
}

func TestSoftReset(t *testing.T) {
	var resets int
	s := game.NewSession(game.Options{
		Source:   well.NewSequence(shape.O),
		Listener: game.ListenerFuncs{SoftReset: func() { resets++ }},
	})

	var last game.Landing
	for range 11 {
		s.HardDrop()
		l, landed := s.Fall()
		require.True(t, landed)
		last = l
	}

	assert.True(t, last.SoftReset, "the twelfth O has no room")
	assert.Equal(t, 0, s.Well().Occupied(), "well cleared")
	assert.Equal(t, shape.New(shape.O, 4, 0), s.Active())
	assert.Equal(t, 1, s.Counters().SoftResets)
	assert.Equal(t, 13, s.Counters().Spawned(shape.O), "first, ten regular, blocked and replacement")
	assert.Equal(t, 0, resets, "listeners are notified by the systems, not the session")
}

func TestGhost(t *testing.T) {
	s := newSession(shape.O)
	ghost := s.Ghost()
	assert.Equal(t, 20, ghost.Y)
	assert.Equal(t, s.Active().X, ghost.X)
	assert.Equal(t, 0, s.Active().Y, "ghost does not move the shape")
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := game.NewSession(game.Options{Source: well.NewSequence(shape.O), Logger: logger})
	s.Shift(-10)

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "session="+s.ID().String())
	assert.Contains(t, out, "shift rejected")
}
