// Package geom holds the small amount of 3D math the level pipeline needs:
// a float vector and the formula that maps a grid cell to a world position.
package geom

import "math"

// Vec3 is a position, size or direction in world units.
type Vec3 struct {
	X, Y, Z float64
}

// V returns Vec3{x, y, z}.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// CellPosition maps grid cell (row, col) of a rows×cols grid to world space.
//
// Columns run along +X and rows run along -Y (row 0 is the top of the map),
// and the grid is centred on origin:
//
//	x = col*size.X − ⌊cols/2⌋*size.X + origin.X
//	y = (rows−1−row)*size.Y − ⌊rows/2⌋*size.Y + origin.Y
//	z = origin.Z
//
// Complexity: O(1).
func CellPosition(rows, cols, row, col int, size, origin Vec3) Vec3 {
	flipped := rows - 1 - row
	halfW := float64(cols/2) * size.X
	halfH := float64(rows/2) * size.Y
	return Vec3{
		X: float64(col)*size.X - halfW + origin.X,
		Y: float64(flipped)*size.Y - halfH + origin.Y,
		Z: origin.Z,
	}
}
