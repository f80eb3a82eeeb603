package gen

import (
	"math"

	"github.com/katalvlaran/rlg/grid"
)

// Line draws a wavy side-view floor: one line cell per column, FillTypes
// cells above it. The line row starts at LineRow (or near the middle when
// LineRow < 0) and drifts by -1, 0 or +1 per column, clamped to the grid.
//
// The grid is a clone of opts.Base, or a fresh Rows×Cols grid of random
// EmptyTypes (Void when none are given).
//
// Report.Passes is the number of columns drawn.
//
// Complexity: O(R×C).
func Line(rng Rand, opts LineOptions) (*grid.Grid, Report, error) {
	var rep Report
	if rng == nil {
		return nil, rep, wrapf(methodLine, "rng is nil", ErrNeedRand)
	}
	if err := checkCodes(methodLine, "LineTypes", opts.LineTypes, false); err != nil {
		return nil, rep, err
	}
	var g *grid.Grid
	if opts.Base != nil {
		g = opts.Base.Clone()
	} else {
		var err error
		if g, err = grid.New(opts.Rows, opts.Cols, grid.Void); err != nil {
			return nil, rep, wrapf(methodLine, "rows and cols must be positive", ErrBadSize)
		}
		if len(opts.EmptyTypes) > 0 {
			g.Each(func(row, col int, _ grid.Code) { g.Set(row, col, pick(rng, opts.EmptyTypes)) })
		}
	}
	rows, cols := g.Rows(), g.Cols()

	ly := opts.LineRow
	if ly < 0 {
		q := rows / 4
		ly = rows/2 + rng.Intn(2*q+1) - q
	}
	ly = clamp(ly, 0, rows-1)

	for col := 0; col < cols; col++ {
		g.Set(ly, col, pick(rng, opts.LineTypes))
		if len(opts.FillTypes) > 0 {
			for row := 0; row < ly; row++ {
				g.Set(row, col, pick(rng, opts.FillTypes))
			}
		}
		rep.Passes++

		drift := -math.Round(rng.Float64()) + math.Round(rng.Float64())
		ly = clamp(ly+int(drift), 0, rows-1)
	}
	return g, rep, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
