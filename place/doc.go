// Package place turns a finished grid into placed, oriented room pieces.
//
// Populate walks the grid row by row. Ceiling cells receive a piece from the
// Ceiling palette. Every other non-Void cell is classified by its occupied
// neighbours (grid.Surrounding) into a dead end, straight, corner, tee or
// cross; a template is chosen from the palette for that shape and the
// cell's code, spawned through the caller's Scene, rotated about Z so that
// its openings face the occupied neighbours, and positioned so that the grid
// is centred on Options.Origin.
//
// Rotations (radians about Z, mask bits Left=1 Right=2 Up=4 Down=8):
//
//	end:      left 0, right π, up −π/2, down π/2
//	straight: left-right 0, up-down π/2
//	corner:   left-up 0, left-down π/2, right-up −π/2, right-down π
//	tee:      open to left-right-up 0, left-up-down π/2,
//	          right-up-down −π/2, left-right-down π
//	cross:    0
//
// A cell with no occupied neighbour is placed as a cross piece.
//
// The package never touches global state: randomness comes from the
// Options.Chooser and every engine call goes through the Scene interface.
// MemoryScene is an in-memory Scene for tests and tools.
package place
