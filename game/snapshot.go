package game

import (
	"github.com/google/uuid"
	"github.com/plus3/blockdrop/shape"
)

// Snapshot is what a renderer needs for one tick. Cell slices are owned by the
// snapshot and safe to keep.
type Snapshot struct {
	Session  uuid.UUID
	Tick     uint64
	Width    int
	Height   int
	Well     []shape.Cell
	Active   []shape.Cell
	Ghost    []shape.Cell
	Next     shape.Kind
	Counters Counters
}

// Snapshot captures the current well and active shape.
func (s *Session) Snapshot() Snapshot {
	cells := make([]shape.Cell, 0, s.well.Occupied())
	for c := range s.well.Cells() {
		cells = append(cells, c)
	}

	return Snapshot{
		Session:  s.id,
		Tick:     s.counters.Ticks,
		Width:    s.well.Width(),
		Height:   s.well.Height(),
		Well:     cells,
		Active:   s.active.Footprint(),
		Ghost:    s.Ghost().Footprint(),
		Next:     s.preview.Peek(),
		Counters: s.counters.Clone(),
	}
}

// Sink receives a snapshot once per tick.
type Sink interface {
	Present(snap Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(snap Snapshot)

func (f SinkFunc) Present(snap Snapshot) { f(snap) }
