// Package nodemap is a waypoint graph with A* pathfinding.
//
// A NodeMap holds nodes at world positions. UpdateNeighbors links every
// pair within a distance range whose line of sight is clear; the caller
// supplies the line-of-sight test through the Sight interface (a raycast
// in an engine, a grid walk in a tool, nothing at all in tests). PathTo
// snaps the start and goal positions to their closest visible nodes and
// runs A* between them.
//
// Cost model:
//
//	g(n) = g(parent) + |parent − n| + n.Cost
//	h(n) = |n − goal|
//
// so Cost makes a node more expensive to pass through without changing
// the geometry. Costs must be non-negative.
//
// A* stops after MaxChecks node expansions (default 1000) and returns
// ErrCheckLimit, so a query over a huge map cannot stall a frame.
//
// FromGrid builds a NodeMap over the occupied cells of a generated level,
// one node per cell at its placement position, linked to its orthogonal
// neighbours.
//
// Links are stored in an undirected core.Graph; a NodeMap is safe for
// concurrent use.
package nodemap
