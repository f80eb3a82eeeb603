package gen

import (
	"github.com/katalvlaran/rlg/grid"
)

// Growth grows a random crystal of occupied cells.
//
// Behavior:
//  1. Start from a clone of opts.Base, or a Void grid of Rows×Cols.
//  2. With MustConnect on a grid with no occupied cell, fill the centre
//     (Rows/2, Cols/2).
//  3. Draw random cells until the target count is reached. An empty cell is
//     filled with a random RoomTypes code; with MustConnect it must touch an
//     occupied cell and, when MaxCon > 0, touch no more than MaxCon.
//  4. Stop after MaxPasses draws and set Report.Truncated.
//
// The returned grid never aliases opts.Base.
//
// Complexity: O(MaxPasses) time in the worst case, O(R×C) memory.
func Growth(rng Rand, opts GrowthOptions) (*grid.Grid, Report, error) {
	var rep Report
	if rng == nil {
		return nil, rep, wrapf(methodGrowth, "rng is nil", ErrNeedRand)
	}
	if err := checkCodes(methodGrowth, "RoomTypes", opts.RoomTypes, false); err != nil {
		return nil, rep, err
	}

	var g *grid.Grid
	if opts.Base != nil {
		g = opts.Base.Clone()
	} else {
		var err error
		if g, err = grid.New(opts.Rows, opts.Cols, grid.Void); err != nil {
			return nil, rep, wrapf(methodGrowth, "rows and cols must be positive", ErrBadSize)
		}
	}
	rows, cols := g.Rows(), g.Cols()

	current := g.Count(grid.NotVoid)
	if opts.MustConnect && current == 0 {
		g.Set(rows/2, cols/2, pick(rng, opts.RoomTypes))
		current++
	}

	target := (rows*cols + 1) / 2
	if opts.MaxNum > 0 {
		target = opts.MaxNum
	}
	if target > rows*cols {
		target = rows * cols
	}
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	for current < target {
		if rep.Passes >= maxPasses {
			rep.Truncated = true
			break
		}
		rep.Passes++

		row := int(rng.Float64() * float64(rows))
		col := int(rng.Float64() * float64(cols))
		if g.At(row, col) != grid.Void {
			continue
		}
		if opts.MustConnect {
			sur := grid.Surrounding(g, row, col, grid.Void, grid.EdgeVoid)
			if sur.Num == 0 || (opts.MaxCon > 0 && sur.Num > opts.MaxCon) {
				continue
			}
		}
		g.Set(row, col, pick(rng, opts.RoomTypes))
		current++
	}

	return g, rep, nil
}
