// Package shape holds the piece catalog and the Shape value type.
//
// The catalog is a constant table keyed by kind and orientation. A Shape is a
// plain value: every transform returns a new candidate and leaves the receiver
// untouched, so validation always happens before a move is committed.
package shape

import "fmt"

// Kind identifies one of the seven pieces. Its numeric value doubles as the
// color id written into the well when the piece locks.
type Kind uint8

const (
	I Kind = iota + 1
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every valid kind in catalog order.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

var kindNames = [...]string{"?", "I", "J", "L", "O", "S", "T", "Z"}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind maps a single letter (I, J, L, O, S, T, Z, either case) to a Kind.
func ParseKind(s string) (Kind, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		for _, k := range Kinds {
			if kindNames[k][0] == c {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("shape: unknown kind %q", s)
}

// Orientation is one of the four rotation states, named after clock positions.
type Orientation uint8

const (
	Twelve Orientation = iota
	Three
	Six
	Nine
)

func (o Orientation) String() string {
	switch o {
	case Twelve:
		return "12"
	case Three:
		return "3"
	case Six:
		return "6"
	case Nine:
		return "9"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// OrientationOf normalizes an unbounded rotation counter. Negative values wrap,
// so -1 is Nine and incrementing/decrementing stay symmetric.
func OrientationOf(r int) Orientation {
	return Orientation(((r % 4) + 4) % 4)
}

// Layout is an immutable rectangular grid of cell values. Zero is empty; any
// other value is the color id of the kind that owns the layout.
type Layout struct {
	width  int
	height int
	cells  []uint8
}

func newLayout(rows ...[]uint8) Layout {
	l := Layout{height: len(rows), width: len(rows[0])}
	l.cells = make([]uint8, 0, l.width*l.height)
	for _, row := range rows {
		if len(row) != l.width {
			panic("shape: ragged layout row")
		}
		l.cells = append(l.cells, row...)
	}
	return l
}

func (l Layout) Width() int  { return l.width }
func (l Layout) Height() int { return l.height }

// At returns the value at row, col. Out of range coordinates panic.
func (l Layout) At(row, col int) uint8 {
	if row < 0 || row >= l.height || col < 0 || col >= l.width {
		panic(fmt.Sprintf("shape: layout index (%d,%d) outside %dx%d", row, col, l.width, l.height))
	}
	return l.cells[row*l.width+col]
}

// Rows returns a copy of the grid as row slices.
func (l Layout) Rows() [][]uint8 {
	rows := make([][]uint8, l.height)
	for r := range rows {
		rows[r] = append([]uint8(nil), l.cells[r*l.width:(r+1)*l.width]...)
	}
	return rows
}

// Count returns the number of occupied cells.
func (l Layout) Count() int {
	n := 0
	for _, v := range l.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Layout returns the geometry of k at rotation r. Invalid kinds panic.
func (k Kind) Layout(r int) Layout {
	return LayoutOf(k, r)
}

// LayoutOf returns the geometry of kind k at rotation r, normalized with
// OrientationOf. The mapping is total over valid kinds; anything else panics.
func LayoutOf(k Kind, r int) Layout {
	if !k.Valid() {
		panic(fmt.Sprintf("shape: layout of invalid kind %d", uint8(k)))
	}
	return catalog[k-1][OrientationOf(r)]
}

var catalog = [len(Kinds)][4]Layout{
	{ // I
		newLayout(
			[]uint8{1},
			[]uint8{1},
			[]uint8{1},
			[]uint8{1},
		),
		newLayout(
			[]uint8{1, 1, 1, 1},
		),
		newLayout(
			[]uint8{1},
			[]uint8{1},
			[]uint8{1},
			[]uint8{1},
		),
		newLayout(
			[]uint8{1, 1, 1, 1},
		),
	},
	{ // J
		newLayout(
			[]uint8{0, 2},
			[]uint8{0, 2},
			[]uint8{2, 2},
		),
		newLayout(
			[]uint8{2, 0, 0},
			[]uint8{2, 2, 2},
		),
		newLayout(
			[]uint8{2, 2},
			[]uint8{2, 0},
			[]uint8{2, 0},
		),
		newLayout(
			[]uint8{2, 2, 2},
			[]uint8{0, 0, 2},
		),
	},
	{ // L
		newLayout(
			[]uint8{3, 0},
			[]uint8{3, 0},
			[]uint8{3, 3},
		),
		newLayout(
			[]uint8{3, 3, 3},
			[]uint8{3, 0, 0},
		),
		newLayout(
			[]uint8{3, 3},
			[]uint8{0, 3},
			[]uint8{0, 3},
		),
		newLayout(
			[]uint8{0, 0, 3},
			[]uint8{3, 3, 3},
		),
	},
	{ // O
		newLayout(
			[]uint8{4, 4},
			[]uint8{4, 4},
		),
		newLayout(
			[]uint8{4, 4},
			[]uint8{4, 4},
		),
		newLayout(
			[]uint8{4, 4},
			[]uint8{4, 4},
		),
		newLayout(
			[]uint8{4, 4},
			[]uint8{4, 4},
		),
	},
	{ // S
		newLayout(
			[]uint8{0, 5, 5},
			[]uint8{5, 5, 0},
		),
		newLayout(
			[]uint8{5, 0},
			[]uint8{5, 5},
			[]uint8{0, 5},
		),
		newLayout(
			[]uint8{0, 5, 5},
			[]uint8{5, 5, 0},
		),
		newLayout(
			[]uint8{5, 0},
			[]uint8{5, 5},
			[]uint8{0, 5},
		),
	},
	{ // T
		newLayout(
			[]uint8{0, 6, 0},
			[]uint8{6, 6, 6},
		),
		newLayout(
			[]uint8{6, 0},
			[]uint8{6, 6},
			[]uint8{6, 0},
		),
		newLayout(
			[]uint8{6, 6, 6},
			[]uint8{0, 6, 0},
		),
		newLayout(
			[]uint8{0, 6},
			[]uint8{6, 6},
			[]uint8{0, 6},
		),
	},
	{ // Z
		newLayout(
			[]uint8{7, 7, 0},
			[]uint8{0, 7, 7},
		),
		newLayout(
			[]uint8{0, 7},
			[]uint8{7, 7},
			[]uint8{7, 0},
		),
		newLayout(
			[]uint8{7, 7, 0},
			[]uint8{0, 7, 7},
		),
		newLayout(
			[]uint8{0, 7},
			[]uint8{7, 7},
			[]uint8{7, 0},
		),
	},
}
