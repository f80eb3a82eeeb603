// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and NewGraph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data (grid row/col, cell code, world
// position...). It is shallow-copied by Clone.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	ID     string // "e1", "e2", …
	From   string // source vertex ID
	To     string // destination vertex ID
	Weight int64  // zero in unweighted graphs
}

// Other returns the endpoint of e that is not id.
// For an edge not incident to id it returns e.To.
func (e *Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}
	return e.To
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(v *Vertex)

// WithMetadata stores key=value on the vertex.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// Graph is the in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// adjacency[from][to] holds the ID of the single edge between the pair;
// undirected edges are mirrored.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool
	weighted bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	adjacency  map[string]map[string]string
}

// NewGraph creates an empty Graph. By default it is undirected and unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }
