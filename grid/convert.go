package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rlg/core"
)

// Metadata keys set on vertices by ToGraph.
const (
	MetaRow  = "row"
	MetaCol  = "col"
	MetaCode = "code"
)

// CellID formats the vertex identifier of (row, col): "row,col".
func CellID(row, col int) string {
	return strconv.Itoa(row) + "," + strconv.Itoa(col)
}

// ParseCellID is the inverse of CellID.
func ParseCellID(id string) (row, col int, err error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("grid: malformed cell id %q", id)
	}
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf("grid: malformed cell id %q: %w", id, err)
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf("grid: malformed cell id %q: %w", id, err)
	}
	return row, col, nil
}

// ToGraph converts the occupied cells of g into an undirected, weighted
// *core.Graph. Each occupied cell becomes vertex CellID(row, col) with
// metadata {row, col, code}; orthogonally adjacent occupied cells are joined
// by an edge of weight 1.
//
// Complexity: O(R×C + E) time and memory.
func ToGraph(g *Grid, occupied func(Code) bool) *core.Graph {
	out := core.NewGraph(core.WithWeighted())
	// IDs are non-empty and each pair is added once, so AddVertex and
	// AddEdge cannot fail here.
	g.Each(func(row, col int, c Code) {
		if !occupied(c) {
			return
		}
		_ = out.AddVertex(CellID(row, col),
			core.WithMetadata(MetaRow, row),
			core.WithMetadata(MetaCol, col),
			core.WithMetadata(MetaCode, c),
		)
	})
	// Right and down only: each undirected pair is visited once.
	g.Each(func(row, col int, c Code) {
		if !occupied(c) {
			return
		}
		for _, d := range [2]Direction{Right, Down} {
			dr, dc := d.Offset()
			r, cc := row+dr, col+dc
			if g.InBounds(r, cc) && occupied(g.At(r, cc)) {
				_, _ = out.AddEdge(CellID(row, col), CellID(r, cc), 1)
			}
		}
	})
	return out
}
