package nodemap_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/grid"
	"github.com/katalvlaran/rlg/nodemap"
)

// NodeMapSuite runs over a row of four nodes a..d one unit apart on X.
type NodeMapSuite struct {
	suite.Suite
	m *nodemap.NodeMap
}

func (s *NodeMapSuite) SetupTest() {
	s.m = nodemap.New()
	for i, id := range []string{"a", "b", "c", "d"} {
		_, err := s.m.AddNode(id, geom.V(float64(i), 0, 0))
		s.Require().NoError(err)
	}
}

func TestNodeMapSuite(t *testing.T) {
	suite.Run(t, new(NodeMapSuite))
}

func (s *NodeMapSuite) TestAddRemove() {
	_, err := s.m.AddNode("a", geom.Vec3{})
	s.ErrorIs(err, nodemap.ErrDuplicateNode)
	_, err = s.m.AddNode("", geom.Vec3{})
	s.ErrorIs(err, nodemap.ErrEmptyID)
	_, err = s.m.AddNode("z", geom.Vec3{}, nodemap.WithCost(-1))
	s.ErrorIs(err, nodemap.ErrNegativeCost)

	n, err := s.m.Node("c")
	s.Require().NoError(err)
	s.Equal(geom.V(2, 0, 0), n.Position)
	s.Equal(1.0, n.Cost)

	s.Require().NoError(s.m.Link("b", "c"))
	s.Require().NoError(s.m.RemoveNode("c"))
	s.Equal(3, s.m.Len())
	s.Zero(s.m.LinkCount())
	s.ErrorIs(s.m.RemoveNode("c"), nodemap.ErrNodeNotFound)
	_, err = s.m.Node("c")
	s.ErrorIs(err, nodemap.ErrNodeNotFound)
}

func (s *NodeMapSuite) TestUpdateNeighbors_Distance() {
	opts := nodemap.DefaultLinkOptions()
	opts.MaxDist = 1.5
	s.Equal(3, s.m.UpdateNeighbors(opts))
	s.True(s.m.Linked("a", "b"))
	s.False(s.m.Linked("a", "c"))

	s.Zero(s.m.UpdateNeighbors(opts), "existing links are kept, not duplicated")

	nbrs, err := s.m.Neighbors("b")
	s.Require().NoError(err)
	s.Len(nbrs, 2)
	s.Equal("a", nbrs[0].ID)
	s.Equal("c", nbrs[1].ID)
}

func (s *NodeMapSuite) TestUpdateNeighbors_MinDistAndMaxConnections() {
	opts := nodemap.DefaultLinkOptions()
	opts.MinDist = 2
	s.Equal(3, s.m.UpdateNeighbors(opts)) // a-c, a-d, b-d
	s.False(s.m.Linked("a", "b"))

	m := nodemap.New()
	for i, id := range []string{"a", "b", "c", "d"} {
		_, _ = m.AddNode(id, geom.V(float64(i), 0, 0))
	}
	opts = nodemap.DefaultLinkOptions()
	opts.MaxDist = 1.5
	opts.MaxConnections = 1
	s.Equal(2, m.UpdateNeighbors(opts)) // a-b, c-d
	s.True(m.Linked("c", "d"))
	s.False(m.Linked("b", "c"))
}

func (s *NodeMapSuite) TestUpdateNeighbors_Sight() {
	// A wall at x = 1.5 blocks every segment crossing it.
	wall := nodemap.SightFunc(func(from, to geom.Vec3) bool {
		return (from.X-1.5)*(to.X-1.5) > 0
	})
	opts := nodemap.DefaultLinkOptions()
	opts.Sight = wall
	s.Equal(2, s.m.UpdateNeighbors(opts))
	s.True(s.m.Linked("a", "b"))
	s.True(s.m.Linked("c", "d"))

	_, err := s.m.PathTo(geom.V(0, 0, 0), geom.V(3, 0, 0))
	s.ErrorIs(err, nodemap.ErrNoPath)
}

func (s *NodeMapSuite) TestClosestNode() {
	n, ok := s.m.ClosestNode(geom.V(2.2, 1, 0), nil)
	s.Require().True(ok)
	s.Equal("c", n.ID)

	notC := nodemap.SightFunc(func(from, _ geom.Vec3) bool { return from.X != 2 })
	n, ok = s.m.ClosestNode(geom.V(2.2, 1, 0), notC)
	s.Require().True(ok)
	s.Equal("d", n.ID)

	blind := nodemap.SightFunc(func(geom.Vec3, geom.Vec3) bool { return false })
	_, ok = s.m.ClosestNode(geom.Vec3{}, blind)
	s.False(ok)
}

func (s *NodeMapSuite) TestPathTo_Chain() {
	s.m.UpdateNeighbors(nodemap.LinkOptions{MaxDist: 1, MaxConnections: 2})
	path, err := s.m.PathTo(geom.V(-1, 0, 0), geom.V(9, 0, 0))
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c", "d"}, ids(path))

	path, err = s.m.PathTo(geom.V(0.1, 0, 0), geom.V(0.2, 0, 0))
	s.Require().NoError(err)
	s.Equal([]string{"a"}, ids(path))

	_, err = s.m.PathTo(geom.V(0, 0, 0), geom.V(3, 0, 0), nodemap.WithMaxChecks(2))
	s.ErrorIs(err, nodemap.ErrCheckLimit)
}

func (s *NodeMapSuite) TestPathTo_Unreachable() {
	farSight := nodemap.SightFunc(func(_, to geom.Vec3) bool { return to.X < 100 })
	_, err := s.m.PathTo(geom.V(0, 0, 0), geom.V(200, 0, 0), nodemap.WithSight(farSight))
	s.ErrorIs(err, nodemap.ErrUnreachableGoal)
	_, err = s.m.PathTo(geom.V(200, 0, 0), geom.V(0, 0, 0), nodemap.WithSight(farSight))
	s.ErrorIs(err, nodemap.ErrUnreachableStart)
}

func ids(path []*nodemap.Node) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.ID
	}
	return out
}

// TestPathTo_AvoidsCostlyNode: S and G are joined through A or B, equally
// long; A is expensive so the path goes through B.
func TestPathTo_AvoidsCostlyNode(t *testing.T) {
	m := nodemap.New()
	_, _ = m.AddNode("S", geom.V(0, 0, 0))
	_, _ = m.AddNode("A", geom.V(1, 1, 0), nodemap.WithCost(10))
	_, _ = m.AddNode("B", geom.V(1, -1, 0))
	_, _ = m.AddNode("G", geom.V(2, 0, 0))
	for _, p := range [][2]string{{"S", "A"}, {"S", "B"}, {"A", "G"}, {"B", "G"}} {
		require.NoError(t, m.Link(p[0], p[1]))
	}

	path, err := m.PathTo(geom.V(0, 0, 0), geom.V(2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "G"}, ids(path))
}

// TestPathTo_PrefersShortDetour checks that A* picks the shorter of two
// routes even when the longer one is expanded first.
func TestPathTo_PrefersShortDetour(t *testing.T) {
	m := nodemap.New()
	_, _ = m.AddNode("S", geom.V(0, 0, 0))
	_, _ = m.AddNode("far", geom.V(5, 8, 0))
	_, _ = m.AddNode("m1", geom.V(3, -1, 0))
	_, _ = m.AddNode("m2", geom.V(7, -1, 0))
	_, _ = m.AddNode("G", geom.V(10, 0, 0))
	for _, p := range [][2]string{{"S", "far"}, {"far", "G"}, {"S", "m1"}, {"m1", "m2"}, {"m2", "G"}} {
		require.NoError(t, m.Link(p[0], p[1]))
	}
	path, err := m.PathTo(geom.V(0, 0, 0), geom.V(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "m1", "m2", "G"}, ids(path))
}

func TestFromGrid(t *testing.T) {
	g, err := grid.FromInts([][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)
	size := geom.V(2, 2, 0)
	m, err := nodemap.FromGrid(g, grid.NotVoid, size, geom.Vec3{})
	require.NoError(t, err)
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 6, m.LinkCount())

	start := geom.CellPosition(3, 3, 0, 0, size, geom.Vec3{})
	goal := geom.CellPosition(3, 3, 2, 0, size, geom.Vec3{})
	path, err := m.PathTo(start, goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,2", "2,2", "2,1", "2,0"}, ids(path))
}

func TestConcurrentAddNode(t *testing.T) {
	m := nodemap.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.AddNode(fmt.Sprintf("n%02d", i), geom.V(float64(i), 0, 0))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
	assert.Equal(t, 49, m.UpdateNeighbors(nodemap.LinkOptions{MaxDist: 1, MaxConnections: 2}))
}

func TestWithMaxChecksPanics(t *testing.T) {
	assert.Panics(t, func() { nodemap.WithMaxChecks(0) })
}
