package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlg/grid"
)

func TestComponents(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 0, 2},
		{0, 0, 0, 2},
		{3, 0, 0, 0},
	})
	comps := grid.Components(g, grid.NotVoid)
	require.Len(t, comps, 3)
	assert.Equal(t, []grid.Cell{cell(0, 0, 1), cell(0, 1, 1)}, comps[0])
	assert.Equal(t, []grid.Cell{cell(0, 3, 2), cell(1, 3, 2)}, comps[1])
	assert.Equal(t, []grid.Cell{cell(2, 0, 3)}, comps[2])
	assert.False(t, grid.Connected(g, grid.NotVoid))
}

func TestBridge(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 0, 1}})
	path, cost, err := grid.Bridge(g, 0, 1, grid.NotVoid, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []grid.Cell{cell(0, 0, 1), cell(0, 1, 9), cell(0, 2, 9), cell(0, 3, 1)}, path)
	assert.True(t, g.Equal(mustGrid(t, [][]int{{1, 9, 9, 1}})))
	assert.True(t, grid.Connected(g, grid.NotVoid))
}

func TestBridge_Errors(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 1}})
	_, _, err := grid.Bridge(g, 0, 5, grid.NotVoid, 1)
	assert.ErrorIs(t, err, grid.ErrComponentIndex)

	_, err = grid.BridgeAll(g, grid.NotVoid, grid.Void)
	assert.ErrorIs(t, err, grid.ErrNoPath)
}

func TestBridgeAll(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	})
	cost, err := grid.BridgeAll(g, grid.NotVoid, 4)
	require.NoError(t, err)
	assert.Greater(t, cost, 0)
	assert.True(t, grid.Connected(g, grid.NotVoid), "\n%s", g)
}

func TestToGraph(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {0, 1}})
	cg := grid.ToGraph(g, grid.NotVoid)
	assert.Equal(t, []string{"0,0", "0,1", "1,1"}, cg.Vertices())
	assert.Equal(t, 2, cg.EdgeCount())
	assert.True(t, cg.HasEdge("0,1", "1,1"))
	assert.False(t, cg.HasEdge("0,0", "1,1"))

	v, err := cg.Vertex("0,1")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Metadata[grid.MetaRow])
	assert.Equal(t, 1, v.Metadata[grid.MetaCol])
	assert.Equal(t, grid.Code(2), v.Metadata[grid.MetaCode])
}

func TestCellID(t *testing.T) {
	row, col, err := grid.ParseCellID(grid.CellID(12, 7))
	require.NoError(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, 7, col)

	_, _, err = grid.ParseCellID("12-7")
	assert.Error(t, err)
	_, _, err = grid.ParseCellID("a,7")
	assert.Error(t, err)
}

func cell(row, col int, c grid.Code) grid.Cell {
	return grid.Cell{Row: row, Col: col, Code: c}
}
