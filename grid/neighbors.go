package grid

import "fmt"

// EdgeMode decides what a neighbour query sees past the border of the grid.
type EdgeMode int

const (
	// EdgeBlank treats off-grid cells as holding Options.Blank (Void by default).
	EdgeBlank EdgeMode = iota
	// EdgeVoid returns a Void slot ("no value") that is never counted.
	EdgeVoid
	// EdgeExtend treats off-grid cells as copies of the queried cell.
	EdgeExtend
	// EdgeWrap wraps to the opposite border (toroidal grid).
	EdgeWrap
)

// Direction names one of the four orthogonal neighbours.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists the four directions in the order every pass visits them.
var Directions = [4]Direction{Left, Right, Up, Down}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}

// Bit returns the mask bit of d: Left=1, Right=2, Up=4, Down=8.
func (d Direction) Bit() uint8 { return 1 << uint(d) }

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Mask bits for Neighbors.Mask.
const (
	MaskLeft  uint8 = 1
	MaskRight uint8 = 2
	MaskUp    uint8 = 4
	MaskDown  uint8 = 8
)

// Slot is one neighbour value. Void means the neighbour has no value at all
// (off-grid under EdgeVoid).
type Slot struct {
	Value Code
	Void  bool
}

// Shape is the local shape of a cell derived from its occupied neighbours.
type Shape int

const (
	// ShapeCeiling tags ceiling pieces placed on ignored cells.
	ShapeCeiling Shape = iota
	// ShapeEnd has one occupied neighbour (dead end).
	ShapeEnd
	// ShapeStraight has two opposite occupied neighbours.
	ShapeStraight
	// ShapeCorner has two adjacent occupied neighbours.
	ShapeCorner
	// ShapeTee has three occupied neighbours.
	ShapeTee
	// ShapeCross has four occupied neighbours.
	ShapeCross
	// ShapeIsolated has no occupied neighbour.
	ShapeIsolated
)

var shapeNames = [...]string{"ceiling", "end", "straight", "corner", "tee", "cross", "isolated"}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Options configures a neighbour query.
type Options struct {
	// Ignore is the code that does not count as occupied.
	Ignore Code
	// IgnoreNone counts every non-void neighbour, Ignore is unused.
	IgnoreNone bool
	// Edge is the off-grid policy.
	Edge EdgeMode
	// Blank is the value seen off-grid under EdgeBlank.
	Blank Code
}

// DefaultOptions ignores Void and treats off-grid cells as Void.
func DefaultOptions() Options {
	return Options{Ignore: Void, Edge: EdgeBlank, Blank: Void}
}

// Neighbors is the derived neighbour record of one cell.
// It is recomputed on demand and never stored in the grid.
type Neighbors struct {
	Left, Right, Up, Down Slot
	// Num is how many of the four slots are occupied; always in [0, 4].
	Num int

	ignore     Code
	ignoreNone bool
}

// Surrounding returns the neighbours of (row, col), counting every slot whose
// value is not ignore. Off-grid neighbours follow edge; under EdgeBlank they
// read as Void.
func Surrounding(g *Grid, row, col int, ignore Code, edge EdgeMode) Neighbors {
	return SurroundingWith(g, row, col, Options{Ignore: ignore, Edge: edge, Blank: Void})
}

// SurroundingWith is Surrounding with full Options.
// Complexity: O(1).
func SurroundingWith(g *Grid, row, col int, opts Options) Neighbors {
	n := Neighbors{ignore: opts.Ignore, ignoreNone: opts.IgnoreNone}
	self := g.At(row, col)
	for _, d := range Directions {
		s := resolve(g, row, col, d, self, opts)
		*n.slot(d) = s
		if n.counts(s) {
			n.Num++
		}
	}
	return n
}

// resolve reads the neighbour of (row, col) in direction d.
func resolve(g *Grid, row, col int, d Direction, self Code, opts Options) Slot {
	dr, dc := d.Offset()
	r, c := row+dr, col+dc
	if g.InBounds(r, c) {
		return Slot{Value: g.At(r, c)}
	}
	switch opts.Edge {
	case EdgeVoid:
		return Slot{Void: true}
	case EdgeExtend:
		return Slot{Value: self}
	case EdgeWrap:
		r = (r + g.rows) % g.rows
		c = (c + g.cols) % g.cols
		return Slot{Value: g.At(r, c)}
	default:
		return Slot{Value: opts.Blank}
	}
}

func (n *Neighbors) slot(d Direction) *Slot {
	switch d {
	case Left:
		return &n.Left
	case Right:
		return &n.Right
	case Up:
		return &n.Up
	default:
		return &n.Down
	}
}

func (n Neighbors) counts(s Slot) bool {
	if s.Void {
		return false
	}
	return n.ignoreNone || s.Value != n.ignore
}

// Slot returns the neighbour in direction d.
func (n Neighbors) Slot(d Direction) Slot {
	return *n.slot(d)
}

// Occupied reports whether the neighbour in direction d was counted in Num.
func (n Neighbors) Occupied(d Direction) bool {
	return n.counts(*n.slot(d))
}

// Voids returns how many slots are Void.
func (n Neighbors) Voids() int {
	v := 0
	for _, d := range Directions {
		if n.slot(d).Void {
			v++
		}
	}
	return v
}

// Mask returns a bit per occupied direction (see MaskLeft..MaskDown).
// The number of set bits always equals Num.
func (n Neighbors) Mask() uint8 {
	var m uint8
	for _, d := range Directions {
		if n.Occupied(d) {
			m |= d.Bit()
		}
	}
	return m
}

// Shape classifies the cell: 1 = end, 2 = straight or corner, 3 = tee,
// 4 = cross, 0 = isolated.
func (n Neighbors) Shape() Shape {
	switch n.Num {
	case 0:
		return ShapeIsolated
	case 1:
		return ShapeEnd
	case 2:
		m := n.Mask()
		if m == MaskLeft|MaskRight || m == MaskUp|MaskDown {
			return ShapeStraight
		}
		return ShapeCorner
	case 3:
		return ShapeTee
	default:
		return ShapeCross
	}
}
