package grid

import (
	"strconv"
	"strings"
)

// Grid is a rows×cols array of cell codes in row-major order.
// It is mutable in place and not safe for concurrent mutation.
type Grid struct {
	rows, cols int
	cells      []Code
}

// New allocates a rows×cols grid with every cell set to fill.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(R×C).
func New(rows, cols int, fill Code) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Code, rows*cols)}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
	return g, nil
}

// FromRows builds a grid from a rectangular 2D slice, copying the values.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func FromRows(values [][]Code) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Code, 0, rows*cols)}
	for _, row := range values {
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// FromInts is FromRows for plain int literals, handy in tests and fixtures.
func FromInts(values [][]int) (*Grid, error) {
	rows := make([][]Code, len(values))
	for y, row := range values {
		rows[y] = make([]Code, len(row))
		for x, v := range row {
			rows[y][x] = Code(v)
		}
	}
	return FromRows(rows)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the code at (row, col). It panics when out of range, like a slice index.
func (g *Grid) At(row, col int) Code {
	if !g.InBounds(row, col) {
		panic(ErrOutOfBounds)
	}
	return g.cells[row*g.cols+col]
}

// Get is the checked form of At.
func (g *Grid) Get(row, col int) (Code, error) {
	if !g.InBounds(row, col) {
		return Void, ErrOutOfBounds
	}
	return g.cells[row*g.cols+col], nil
}

// Set stores c at (row, col). It panics when out of range.
func (g *Grid) Set(row, col int, c Code) {
	if !g.InBounds(row, col) {
		panic(ErrOutOfBounds)
	}
	g.cells[row*g.cols+col] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Code) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Code, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Code) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// CountCode returns how many cells hold exactly c.
func (g *Grid) CountCode(c Code) int {
	return g.Count(func(v Code) bool { return v == c })
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, c Code)) {
	for i, c := range g.cells {
		fn(i/g.cols, i%g.cols, c)
	}
}

// Cells returns every cell satisfying pred in row-major order.
func (g *Grid) Cells(pred func(Code) bool) []Cell {
	var out []Cell
	g.Each(func(row, col int, c Code) {
		if pred(c) {
			out = append(out, Cell{Row: row, Col: col, Code: c})
		}
	})
	return out
}

// ToRows returns a copy of the grid as a 2D slice.
func (g *Grid) ToRows() [][]Code {
	out := make([][]Code, g.rows)
	for y := range out {
		out[y] = make([]Code, g.cols)
		copy(out[y], g.cells[y*g.cols:(y+1)*g.cols])
	}
	return out
}

// index maps (row, col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// coordinate converts a row-major index back to (row, col).
func (g *Grid) coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// String renders the grid one row per line; Void prints as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := g.cells[g.index(y, x)]
			if c == Void {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
