// Package core provides the small, thread-safe in-memory Graph that the
// level pipeline uses wherever it needs vertices and links: the node/corridor
// graph produced by gen.Nodes, the walkable-cell graph produced by
// grid.ToGraph, the candidate graph fed to spanning.Kruskal and the
// adjacency behind nodemap.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Per-vertex metadata (WithMetadata on AddVertex)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj
//
// Determinism: Vertices(), Edges(), Neighbors() and NeighborIDs() return
// sorted results, so generators that walk a graph stay reproducible.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrBadWeight       – non-zero weight on an unweighted graph
//	ErrLoopNotAllowed  – self-loop
//	ErrDuplicateEdge   – second edge between the same endpoints
package core
