package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlg/gen"
	"github.com/katalvlaran/rlg/grid"
)

func TestLine(t *testing.T) {
	opts := gen.DefaultLineOptions()
	opts.Rows, opts.Cols = 10, 16
	opts.LineTypes = []grid.Code{1}
	opts.FillTypes = []grid.Code{3}

	g, rep, err := gen.Line(seeded(4), opts)
	require.NoError(t, err)
	assert.Equal(t, 16, rep.Passes)

	prev := -1
	for col := 0; col < g.Cols(); col++ {
		line := -1
		for row := 0; row < g.Rows(); row++ {
			switch c := g.At(row, col); {
			case c == 1:
				require.Equal(t, -1, line, "one line cell per column")
				line = row
			case line < 0:
				assert.Equal(t, grid.Code(3), c, "fill above the line")
			default:
				assert.Equal(t, grid.Void, c, "nothing below the line")
			}
		}
		require.GreaterOrEqual(t, line, 0)
		if prev >= 0 {
			assert.LessOrEqual(t, abs(line-prev), 1, "drift is at most one row")
		}
		prev = line
	}
}

func TestLine_StartRow(t *testing.T) {
	opts := gen.DefaultLineOptions()
	opts.LineRow = 0
	g, _, err := gen.Line(seeded(1), opts)
	require.NoError(t, err)
	assert.Equal(t, grid.Code(1), g.At(0, 0))
}

func TestLine_Validation(t *testing.T) {
	_, _, err := gen.Line(nil, gen.DefaultLineOptions())
	assert.ErrorIs(t, err, gen.ErrNeedRand)
	opts := gen.DefaultLineOptions()
	opts.LineTypes = nil
	_, _, err = gen.Line(seeded(1), opts)
	assert.ErrorIs(t, err, gen.ErrNoCodes)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestLine_BaseAndEmptyTypes(t *testing.T) {
	base, err := grid.New(6, 8, 7)
	require.NoError(t, err)

	opts := gen.DefaultLineOptions()
	opts.Rows, opts.Cols = 99, 99
	opts.Base = base
	opts.LineRow = 3
	opts.FillTypes = []grid.Code{2}

	g, rep, err := gen.Line(seeded(8), opts)
	require.NoError(t, err)
	require.Equal(t, 6, g.Rows(), "base dimensions win")
	require.Equal(t, 8, g.Cols())
	assert.Equal(t, 8, rep.Passes)
	assert.Equal(t, grid.Code(1), g.At(3, 0))
	assert.Equal(t, 6*8, base.CountCode(7), "base untouched")

	for col := 0; col < g.Cols(); col++ {
		line := -1
		for row := 0; row < g.Rows(); row++ {
			switch c := g.At(row, col); {
			case c == 1:
				line = row
			case line < 0:
				assert.Equal(t, grid.Code(2), c, "fill above the line")
			default:
				assert.Equal(t, grid.Code(7), c, "base kept below the line")
			}
		}
		require.GreaterOrEqual(t, line, 0)
	}

	fresh := gen.DefaultLineOptions()
	fresh.Rows, fresh.Cols = 5, 5
	fresh.LineRow = 4
	fresh.EmptyTypes = []grid.Code{9}
	g, _, err = gen.Line(seeded(3), fresh)
	require.NoError(t, err)
	assert.Equal(t, grid.Code(9), g.At(0, 0), "background from EmptyTypes")
}
