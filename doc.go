// Package rlg is a random level generation toolkit: it grows, carves and
// cleans 2D grids of cell-type codes and turns the finished grid into
// placed, oriented room pieces.
//
// What is in the box?
//
//	grid/     — Grid of cell codes, cell-code alphabet, neighbour classifier,
//	            Invert/CleanUp post-processing, component analysis and bridging
//	core/     — small thread-safe graph used for node links and path maps
//	gen/      — topology generators: Growth, Nodes, Line
//	spanning/ — Kruskal and Prim minimum spanning trees (SPANNING node connections)
//	place/    — Populate: shape → palette → spawn, orient and position pieces
//	nodemap/  — A* over a node map (waypoints or the cells of a level)
//	geom/     — Vec3 and the cell → world placement formula
//	cmd/rlgdump — CLI that generates a level and prints it as text
//
// Pipeline:
//
//	allocate → generate (gen.Growth | gen.Nodes | gen.Line)
//	         → post-process (grid.CleanUp, grid.Invert, grid.Bridge)
//	         → classify (grid.Surrounding) → place.Populate
//
// Every generator takes a caller-owned *rand.Rand. Nothing touches the
// global math/rand state, so the same seed always yields the same level,
// and unrelated random draws elsewhere in the program are unaffected.
//
// Quick ASCII example (gen.Nodes, two nodes, straight hall):
//
//	. . . . .
//	. 2 1 1 .
//	. . . 1 .
//	. . . 2 .
//	. . . . .
//
//	go get github.com/katalvlaran/rlg
package rlg
