// Package well implements the playfield: cell occupancy, collision testing,
// locking a landed shape, row elimination and spawning.
package well

import (
	"fmt"
	"iter"

	"github.com/plus3/blockdrop/shape"
)

// Well is a width x height grid of color ids stored row-major. Zero is empty.
// It is not safe for concurrent use.
type Well struct {
	width  int
	height int
	grid   []uint8
}

// New creates an empty well. Non-positive dimensions panic.
func New(width, height int) *Well {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("well: invalid size %dx%d", width, height))
	}
	return &Well{
		width:  width,
		height: height,
		grid:   make([]uint8, width*height),
	}
}

func (w *Well) Width() int  { return w.width }
func (w *Well) Height() int { return w.height }

func (w *Well) contains(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// At returns the color id at column x, row y. Coordinates outside the well
// panic.
func (w *Well) At(x, y int) uint8 {
	if !w.contains(x, y) {
		panic(fmt.Sprintf("well: cell (%d,%d) outside %dx%d", x, y, w.width, w.height))
	}
	return w.grid[y*w.width+x]
}

// Row returns a copy of row y.
func (w *Well) Row(y int) []uint8 {
	if y < 0 || y >= w.height {
		panic(fmt.Sprintf("well: row %d outside height %d", y, w.height))
	}
	return append([]uint8(nil), w.grid[y*w.width:(y+1)*w.width]...)
}

// Occupied returns the number of nonzero cells.
func (w *Well) Occupied() int {
	n := 0
	for _, v := range w.grid {
		if v != 0 {
			n++
		}
	}
	return n
}

// Cells yields every occupied cell, top row first.
func (w *Well) Cells() iter.Seq[shape.Cell] {
	return func(yield func(shape.Cell) bool) {
		for i, v := range w.grid {
			if v == 0 {
				continue
			}
			if !yield(shape.Cell{X: i % w.width, Y: i / w.width, Color: v}) {
				return
			}
		}
	}
}

// Collides reports whether any occupied cell of s lies outside the well or on
// a nonzero cell. It is the single authority on whether a position is legal.
func (w *Well) Collides(s shape.Shape) bool {
	for c := range s.Cells() {
		if !w.contains(c.X, c.Y) {
			return true
		}
		if w.grid[c.Y*w.width+c.X] != 0 {
			return true
		}
	}
	return false
}

// InBounds reports whether the bounding box of s lies inside the well.
func (w *Well) InBounds(s shape.Shape) bool {
	return s.X >= 0 && s.Y >= 0 && s.X+s.Width() <= w.width && s.Y+s.Height() <= w.height
}

// Consume locks s into the grid, writing its color into every cell it
// occupies. The caller must have checked Collides for this exact position;
// only out of range cells are caught, and they panic.
func (w *Well) Consume(s shape.Shape) {
	for c := range s.Cells() {
		if !w.contains(c.X, c.Y) {
			panic(fmt.Sprintf("well: consume %s at (%d,%d) writes outside %dx%d", s.Kind, s.X, s.Y, w.width, w.height))
		}
		w.grid[c.Y*w.width+c.X] = c.Color
	}
}

func (w *Well) full(y int) bool {
	for _, v := range w.grid[y*w.width : (y+1)*w.width] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Eliminate removes the lowest full row, shifting every row above it down by
// one and inserting an empty row at the top. It reports whether a row was
// removed. Call it until it returns false, or use EliminateAll.
func (w *Well) Eliminate() bool {
	for y := w.height - 1; y >= 0; y-- {
		if !w.full(y) {
			continue
		}
		copy(w.grid[w.width:(y+1)*w.width], w.grid[:y*w.width])
		clear(w.grid[:w.width])
		return true
	}
	return false
}

// EliminateAll removes every full row and returns how many were removed.
func (w *Well) EliminateAll() int {
	n := 0
	for w.Eliminate() {
		n++
	}
	return n
}

// Clear empties the whole grid.
func (w *Well) Clear() {
	clear(w.grid)
}

// Drop returns s moved straight down as far as it can go without colliding.
// A shape that already collides is returned unchanged.
func (w *Well) Drop(s shape.Shape) shape.Shape {
	if w.Collides(s) {
		return s
	}
	for {
		next := s.Translated(0, 1)
		if w.Collides(next) {
			return s
		}
		s = next
	}
}

// Spawn returns a new shape of the kind src supplies, horizontally centered in
// the top row at rotation zero. It does not check for collisions.
func (w *Well) Spawn(src KindSource) shape.Shape {
	if src == nil {
		panic("well: spawn with nil kind source")
	}
	s := shape.New(src.NextKind(), 0, 0)
	s.X = w.width/2 - s.Width()/2
	return s
}

// FromRows builds a well from text rows of equal length. '.' is empty and the
// digits 1-7 are color ids. Malformed input panics; it is meant for fixtures.
func FromRows(rows ...string) *Well {
	if len(rows) == 0 {
		panic("well: no rows")
	}
	w := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != w.width {
			panic(fmt.Sprintf("well: row %d has %d cells, want %d", y, len(row), w.width))
		}
		for x := range len(row) {
			switch c := row[x]; {
			case c == '.':
			case c >= '1' && c <= '7':
				w.grid[y*w.width+x] = c - '0'
			default:
				panic(fmt.Sprintf("well: bad cell %q at (%d,%d)", c, x, y))
			}
		}
	}
	return w
}

// String renders the grid in the FromRows format, one line per row.
func (w *Well) String() string {
	b := make([]byte, 0, (w.width+1)*w.height)
	for y := range w.height {
		for _, v := range w.grid[y*w.width : (y+1)*w.width] {
			if v == 0 {
				b = append(b, '.')
			} else {
				b = append(b, '0'+v)
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
