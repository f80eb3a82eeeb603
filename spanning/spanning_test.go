package spanning_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlg/core"
	"github.com/katalvlaran/rlg/spanning"
)

// buildTriangle: A—B(1), B—C(2), A—C(3). MST = {A—B, B—C}, weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph chains V0..V(n-1) for connectivity and adds random extra
// edges with a fixed seed.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(10)))
	}
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(100))); err == nil {
			added++
		}
	}

	return g
}

func pairs(mst []core.Edge) []string {
	out := make([]string, 0, len(mst))
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out = append(out, u+"-"+v)
	}
	sort.Strings(out)
	return out
}

func TestValidation(t *testing.T) {
	_, _, err := spanning.Kruskal(nil)
	assert.ErrorIs(t, err, spanning.ErrInvalidGraph)

	_, _, err = spanning.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, spanning.ErrInvalidGraph, "unweighted")

	_, _, err = spanning.Prim(core.NewGraph(core.WithDirected(true), core.WithWeighted()), "A")
	assert.ErrorIs(t, err, spanning.ErrInvalidGraph, "directed")

	_, _, err = spanning.Prim(buildTriangle(), "")
	assert.ErrorIs(t, err, spanning.ErrEmptyRoot)

	_, _, err = spanning.Prim(buildTriangle(), "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = spanning.Compute(buildTriangle(), spanning.WithMethod("boruvka"))
	assert.ErrorIs(t, err, spanning.ErrUnknownMethod)
	assert.False(t, spanning.Method("boruvka").Valid())
	assert.True(t, spanning.MethodPrim.Valid())
}

func TestEmptyAndDisconnected(t *testing.T) {
	empty := core.NewGraph(core.WithWeighted())
	_, _, err := spanning.Kruskal(empty)
	assert.ErrorIs(t, err, spanning.ErrDisconnected)

	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, _, err = spanning.Kruskal(g)
	assert.ErrorIs(t, err, spanning.ErrDisconnected)
	_, _, err = spanning.Prim(g, "A")
	assert.ErrorIs(t, err, spanning.ErrDisconnected)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	mst, total, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, total, err = spanning.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

func TestTriangle(t *testing.T) {
	for _, m := range []spanning.Method{spanning.MethodKruskal, spanning.MethodPrim} {
		t.Run(string(m), func(t *testing.T) {
			mst, total, err := spanning.Compute(buildTriangle(), spanning.WithMethod(m), spanning.WithRoot("A"))
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.Equal(t, []string{"A-B", "B-C"}, pairs(mst))
		})
	}
}

func TestKruskalAndPrimAgree(t *testing.T) {
	g := buildMediumGraph(12, 30)

	mstK, totalK, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, mstK, g.VertexCount()-1)

	mstP, totalP, err := spanning.Compute(g, spanning.WithMethod(spanning.MethodPrim))
	require.NoError(t, err)
	assert.Len(t, mstP, g.VertexCount()-1)

	assert.Equal(t, totalK, totalP)
}
