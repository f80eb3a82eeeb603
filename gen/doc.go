// Package gen builds level topologies on a grid.Grid.
//
// Three generators are provided:
//
//   - Growth: a random crystal. Starting from the centre (or from the
//     occupied cells of a base grid), random empty cells are filled when
//     they touch an occupied neighbour, until a target count is reached.
//   - Nodes: a node-and-corridor map. Spaced nodes are placed, optionally
//     exploded into square or round rooms, then joined with straight or
//     stair-step corridors using one of four connection styles.
//   - Line: a wavy side-view floor line with fill above it.
//
// Determinism: every generator draws only from the Rand passed in by the
// caller. The same seed and options always produce the same grid. A Rand
// must not be shared across goroutines.
//
// Bounded loops: the random searches of the generators are capped
// (MaxPasses, placement attempts, MaxSteps). Hitting a cap never loops
// forever and never panics; it is reported through Report so that callers
// can tell a short result from a complete one.
//
// Errors are sentinels (ErrNeedRand, ErrBadSize, ErrNoCodes, ErrVoidCode,
// ErrBadRoomSize, ErrUnknownStyle, ErrTooFewNodes) wrapped with the name of
// the generator; branch with errors.Is.
package gen
