// Package spanning computes minimum spanning trees over an undirected,
// weighted *core.Graph: Kruskal's algorithm (sort + union-find) and Prim's
// algorithm (min-heap growth from a root).
//
// The level generator uses it for the SPANNING connection style: nodes are
// joined by a complete graph weighted with Manhattan distance and only the
// tree edges are carved, giving the cheapest corridor network that still
// reaches every node.
//
// Determinism: core.Graph.Edges returns edges in creation order and Kruskal
// sorts them stably, so equal weights break ties by insertion order. Prim
// breaks heap ties the same way.
//
// Error conditions:
//
//   - ErrInvalidGraph: graph is nil, directed, or unweighted.
//   - ErrEmptyRoot: Prim was given an empty root.
//   - core.ErrVertexNotFound: Prim's root is not in the graph.
//   - ErrDisconnected: the graph is empty or has more than one component.
package spanning
