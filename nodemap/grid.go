package nodemap

import (
	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/grid"
)

// FromGrid returns a NodeMap with one node per occupied cell of g, placed
// with geom.CellPosition, and a link between every pair of orthogonally
// adjacent occupied cells. Node IDs are grid.CellID(row, col).
func FromGrid(g *grid.Grid, occupied func(grid.Code) bool, cellSize, origin geom.Vec3) (*NodeMap, error) {
	cg := grid.ToGraph(g, occupied)
	m := New()
	for _, id := range cg.Vertices() {
		row, col, err := grid.ParseCellID(id)
		if err != nil {
			return nil, err
		}
		pos := geom.CellPosition(g.Rows(), g.Cols(), row, col, cellSize, origin)
		if _, err := m.AddNode(id, pos); err != nil {
			return nil, err
		}
	}
	for _, e := range cg.Edges() {
		if err := m.Link(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return m, nil
}
