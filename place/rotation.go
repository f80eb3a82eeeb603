package place

import (
	"math"

	"github.com/katalvlaran/rlg/grid"
)

// rotationLookup maps an occupied-neighbour mask to the Z rotation of the
// piece for that mask. Masks missing from the table rotate by 0.
var rotationLookup = map[grid.Shape]map[uint8]float64{
	grid.ShapeEnd: {
		grid.MaskLeft:  0,
		grid.MaskRight: math.Pi,
		grid.MaskUp:    -math.Pi / 2,
		grid.MaskDown:  math.Pi / 2,
	},
	grid.ShapeStraight: {
		grid.MaskLeft | grid.MaskRight: 0,
		grid.MaskUp | grid.MaskDown:    math.Pi / 2,
	},
	grid.ShapeCorner: {
		grid.MaskLeft | grid.MaskUp:    0,
		grid.MaskLeft | grid.MaskDown:  math.Pi / 2,
		grid.MaskRight | grid.MaskUp:   -math.Pi / 2,
		grid.MaskRight | grid.MaskDown: math.Pi,
	},
	grid.ShapeTee: {
		grid.MaskLeft | grid.MaskRight | grid.MaskUp:   0,
		grid.MaskLeft | grid.MaskUp | grid.MaskDown:    math.Pi / 2,
		grid.MaskRight | grid.MaskUp | grid.MaskDown:   -math.Pi / 2,
		grid.MaskLeft | grid.MaskRight | grid.MaskDown: math.Pi,
	},
}

// Rotation returns the Z rotation of a piece of shape s whose occupied
// neighbours form mask.
func Rotation(s grid.Shape, mask uint8) float64 {
	return rotationLookup[s][mask]
}
