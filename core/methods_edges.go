// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e1" < "e2" < "e10").
//   - Edge IDs are monotonic and stable.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to, adding missing endpoints.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if the graph is unweighted and weight != 0.
//   - ErrLoopNotAllowed if from == to.
//   - ErrDuplicateEdge if the pair is already linked.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrDuplicateEdge
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// RemoveEdge deletes one edge (and its mirror).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether from→to is linked (either direction when undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns the edge linking from→to.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns every edge in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// unlinkLocked drops adjacency entries of e. Caller holds muEdgeAdj.
func (g *Graph) unlinkLocked(e *Edge) {
	delete(g.adjacency[e.From], e.To)
	if !g.directed {
		delete(g.adjacency[e.To], e.From)
	}
}

// nextEdgeID returns "e<n>" using an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 12)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric part of an edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}
