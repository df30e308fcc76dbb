// Package game is the tick orchestrator. A Session owns the well and the
// active shape; the systems in this package drain input, apply validated
// moves, advance gravity and publish a render snapshot once per tick.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/well"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 22
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Width  int
	Height int
	// Source picks the kind of every spawn. Defaults to a uniform source
	// seeded from the clock.
	Source well.KindSource
	// Logger defaults to the package logger.
	Logger   *slog.Logger
	Listener Listener
}

// Landing describes a shape locking into the well.
type Landing struct {
	Shape     shape.Shape
	Rows      int
	SoftReset bool
	Spawned   shape.Shape
}

// Session is one game on one well. It survives soft resets and lasts until
// quit. It is not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	well     *well.Well
	preview  *well.Preview
	active   shape.Shape
	counters Counters
	quit     bool
	logger   *slog.Logger
	listener Listener
}

// NewSession creates a session and spawns its first shape.
func NewSession(opts Options) *Session {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Source == nil {
		opts.Source = well.NewUniformSeed(uint64(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = Logger()
	}
	if opts.Listener == nil {
		opts.Listener = ListenerFuncs{}
	}

	id := uuid.New()
	s := &Session{
		id:       id,
		well:     well.New(opts.Width, opts.Height),
		preview:  well.NewPreview(opts.Source),
		counters: newCounters(),
		logger:   opts.Logger.With("session", id.String()),
		listener: opts.Listener,
	}
	s.active, _ = s.spawn()

	s.logger.Info("session started", "width", opts.Width, "height", opts.Height, "first", s.active.Kind)
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Well() *well.Well { return s.well }
func (s *Session) Active() shape.Shape { return s.active }
func (s *Session) Next() shape.Kind { return s.preview.Peek() }
func (s *Session) Counters() Counters { return s.counters }
func (s *Session) Quit() bool { return s.quit }
func (s *Session) Logger() *slog.Logger { return s.logger }

// Rotate tries to turn the active shape by dir quarter turns. A rotation that
// pushes the right edge past the wall is shifted back left before it is
// validated. It reports whether the rotation was committed.
func (s *Session) Rotate(dir int) bool {
	candidate := s.active.Rotated(dir)
	w := candidate.Width()
	if candidate.X+w > s.well.Width() {
		candidate.X = s.well.Width() - w
	}
	if candidate.X < 0 {
		candidate.X = 0
	}

	if candidate.Y < 0 || candidate.Y+candidate.Height() > s.well.Height() || s.well.Collides(candidate) {
		s.logger.Debug("rotation rejected", "kind", candidate.Kind, "orientation", candidate.Orientation(), "x", candidate.X, "y", candidate.Y)
		return false
	}
	s.active = candidate
	return true
}

// Shift tries to move the active shape dx columns sideways.
func (s *Session) Shift(dx int) bool {
	candidate := s.active.Translated(dx, 0)
	if !s.well.InBounds(candidate) || s.well.Collides(candidate) {
		s.logger.Debug("shift rejected", "kind", candidate.Kind, "x", candidate.X, "y", candidate.Y)
		return false
	}
	s.active = candidate
	return true
}

// Descend moves the active shape one row down if it can. It never lands the
// shape; Fall does that.
func (s *Session) Descend() bool {
	candidate := s.active.Translated(0, 1)
	if !s.well.InBounds(candidate) || s.well.Collides(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// HardDrop moves the active shape as far down as it can go. The next Fall
// lands it.
func (s *Session) HardDrop() {
	s.active = s.well.Drop(s.active)
}

// Ghost is where the active shape would come to rest if dropped.
func (s *Session) Ghost() shape.Shape {
	return s.well.Drop(s.active)
}

// Fall applies one gravity step. When the shape cannot move down it is locked
// into the well, full rows are eliminated and the next shape is spawned; the
// returned Landing describes that, and ok is true.
func (s *Session) Fall() (landing Landing, ok bool) {
	if s.Descend() {
		return Landing{}, false
	}
	return s.land(), true
}

func (s *Session) land() Landing {
	landed := s.active
	s.well.Consume(landed)
	rows := s.well.EliminateAll()

	s.counters.Locked++
	s.counters.Rows += rows

	next, reset := s.spawn()
	s.active = next

	if rows > 0 {
		s.logger.Info("rows eliminated", "kind", landed.Kind, "rows", rows, "occupied", s.well.Occupied())
	} else {
		s.logger.Debug("shape landed", "kind", landed.Kind, "x", landed.X, "y", landed.Y)
	}

	return Landing{Shape: landed, Rows: rows, SoftReset: reset, Spawned: next}
}

// spawn takes the pre-rolled kind. If the new shape has no legal position the
// well is cleared and a second shape is spawned.
func (s *Session) spawn() (shape.Shape, bool) {
	next := s.well.Spawn(s.preview)
	s.counters.spawned(next.Kind)
	if !s.well.Collides(next) {
		return next, false
	}

	s.logger.Info("soft reset", "blocked", next.Kind, "occupied", s.well.Occupied())
	s.well.Clear()
	s.counters.SoftResets++

	next = s.well.Spawn(s.preview)
	s.counters.spawned(next.Kind)
	if s.well.Collides(next) {
		panic(fmt.Sprintf("game: %s does not fit an empty %dx%d well", next.Kind, s.well.Width(), s.well.Height()))
	}
	return next, true
}

func (s *Session) notify(l Landing) {
	s.listener.OnLand(l.Shape, l.Rows)
	if l.SoftReset {
		s.listener.OnSoftReset()
	}
	s.listener.OnSpawn(l.Spawned)
}
