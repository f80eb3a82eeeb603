package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rlg/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, weighted: the shape used by node-link graphs.
	s.g = core.NewGraph(core.WithWeighted())
}

func (s *GraphSuite) TestAddVertexIdempotentWithMetadata() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("2,3", core.WithMetadata("row", 2)))
	require.NoError(s.g.AddVertex("2,3", core.WithMetadata("col", 3)))
	require.Equal(1, s.g.VertexCount())

	v, err := s.g.Vertex("2,3")
	require.NoError(err)
	require.Equal(2, v.Metadata["row"])
	require.Equal(3, v.Metadata["col"])

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	_, err = s.g.Vertex("nope")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestAddEdgeConstraints() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	eid, err := s.g.AddEdge("A", "B", 4)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edges are mirrored")

	_, err = s.g.AddEdge("B", "A", 4)
	require.ErrorIs(err, core.ErrDuplicateEdge)

	u := core.NewGraph()
	_, err = u.AddEdge("A", "B", 3)
	require.ErrorIs(err, core.ErrBadWeight)
}

func (s *GraphSuite) TestDirectedEdgesAreOneWay() {
	require := require.New(s.T())
	d := core.NewGraph(core.WithDirected(true))
	_, err := d.AddEdge("X", "Y", 0)
	require.NoError(err)
	require.True(d.HasEdge("X", "Y"))
	require.False(d.HasEdge("Y", "X"))

	ids, err := d.NeighborIDs("Y")
	require.NoError(err)
	require.Empty(ids)
}

func (s *GraphSuite) TestNeighborsSortedAndDegree() {
	require := require.New(s.T())
	for _, to := range []string{"D", "B", "C"} {
		_, err := s.g.AddEdge("A", to, 1)
		require.NoError(err)
	}
	ids, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B", "C", "D"}, ids)

	edges, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Len(edges, 3)
	require.Equal("D", edges[0].Other("A"), "creation order")

	deg, err := s.g.Degree("B")
	require.NoError(err)
	require.Equal(1, deg)
}

func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B", 1)
	_, _ = s.g.AddEdge("B", "C", 1)
	require.NoError(s.g.RemoveVertex("B"))
	require.False(s.g.HasVertex("B"))
	require.Equal(0, s.g.EdgeCount())
	require.False(s.g.HasEdge("A", "B"))
	require.ErrorIs(s.g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	eid, _ := s.g.AddEdge("A", "B", 2)
	require.NoError(s.g.RemoveEdge(eid))
	require.False(s.g.HasEdge("B", "A"))
	require.ErrorIs(s.g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestEdgesCreationOrder() {
	require := require.New(s.T())
	for i := 0; i < 11; i++ {
		_, err := s.g.AddEdge("hub", string(rune('a'+i)), int64(i))
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 11)
	require.Equal("e1", edges[0].ID)
	require.Equal("e10", edges[9].ID)
	require.Equal("e11", edges[10].ID)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B", 7)
	c := s.g.Clone()
	_, _ = c.AddEdge("B", "C", 1)

	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())
	e, err := c.EdgeBetween("B", "A")
	require.NoError(err)
	require.Equal(int64(7), e.Weight)

	c.Clear()
	require.Equal(0, c.VertexCount())
	require.True(c.Weighted(), "Clear keeps flags")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
