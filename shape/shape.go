package shape

import "iter"

// Cell is an occupied cell in well coordinates: X is the column, Y the row.
type Cell struct {
	X, Y  int
	Color uint8
}

// Shape is the active piece. X and Y locate the top-left corner of its bounding
// box in the well; Rotation is an unbounded counter interpreted modulo 4.
type Shape struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// New returns a shape of kind k at x, y in the Twelve orientation.
func New(k Kind, x, y int) Shape {
	return Shape{Kind: k, X: x, Y: y}
}

func (s Shape) Layout() Layout {
	return LayoutOf(s.Kind, s.Rotation)
}

func (s Shape) Orientation() Orientation {
	return OrientationOf(s.Rotation)
}

func (s Shape) Width() int  { return s.Layout().Width() }
func (s Shape) Height() int { return s.Layout().Height() }

// Translated returns a candidate moved by dx columns and dy rows.
func (s Shape) Translated(dx, dy int) Shape {
	s.X += dx
	s.Y += dy
	return s
}

// Rotated returns a candidate turned by dr quarter turns. Positive is clockwise.
func (s Shape) Rotated(dr int) Shape {
	s.Rotation += dr
	return s
}

// Cells yields every occupied cell of the shape in well coordinates, row by row.
func (s Shape) Cells() iter.Seq[Cell] {
	l := s.Layout()
	return func(yield func(Cell) bool) {
		for r := 0; r < l.height; r++ {
			for c := 0; c < l.width; c++ {
				v := l.cells[r*l.width+c]
				if v == 0 {
					continue
				}
				if !yield(Cell{X: s.X + c, Y: s.Y + r, Color: v}) {
					return
				}
			}
		}
	}
}

// Footprint collects Cells into a slice.
func (s Shape) Footprint() []Cell {
	cells := make([]Cell, 0, 4)
	for c := range s.Cells() {
		cells = append(cells, c)
	}
	return cells
}
