package gen

import (
	"math"

	"github.com/katalvlaran/rlg/core"
	"github.com/katalvlaran/rlg/grid"
)

// carve walks from a to b, stamping a random hall code on every cell passed
// that is not a node cell. On arrival both endpoints are re-stamped with a
// node code. It returns the number of steps taken and whether b was reached
// within MaxSteps.
func (b *nodeBuilder) carve(from, to *Node) (int, bool, error) {
	var steps int
	var ok bool
	if b.opts.Straight {
		steps, ok = b.carveStraight(from, to)
	} else {
		steps, ok = b.carveStairs(from, to)
	}
	if !ok {
		return steps, false, nil
	}
	if err := b.restamp(from); err != nil {
		return steps, false, err
	}
	if err := b.restamp(to); err != nil {
		return steps, false, err
	}
	return steps, true, nil
}

// carveStraight moves along the row axis first, then the column axis, one
// cell per step.
func (b *nodeBuilder) carveStraight(from, to *Node) (int, bool) {
	row, col := from.Row, from.Col
	steps := 0
	for steps < b.opts.MaxSteps {
		switch {
		case row < to.Row:
			row++
		case row > to.Row:
			row--
		case col < to.Col:
			col++
		case col > to.Col:
			col--
		default:
			return steps, true
		}
		steps++
		b.hall(row, col)
	}
	return steps, row == to.Row && col == to.Col
}

// carveStairs alternates axes every step, moving by the normalised direction
// towards the target, so diagonal runs come out as staircases.
func (b *nodeBuilder) carveStairs(from, to *Node) (int, bool) {
	rows, cols := b.g.Rows(), b.g.Cols()
	fr, fc := float64(from.Row), float64(from.Col)
	colAxis := false
	steps := 0
	for {
		row, col := int(math.Round(fr)), int(math.Round(fc))
		if row == to.Row && col == to.Col {
			return steps, true
		}
		if steps >= b.opts.MaxSteps {
			return steps, false
		}
		dr, dc := float64(to.Row-row), float64(to.Col-col)
		length := math.Hypot(dr, dc)

		colAxis = !colAxis
		if colAxis {
			fc += dc / length
		} else {
			fr += dr / length
		}
		fr = math.Max(0, math.Min(fr, float64(rows-1)))
		fc = math.Max(0, math.Min(fc, float64(cols-1)))
		steps++
		b.hall(int(math.Round(fr)), int(math.Round(fc)))
	}
}

func (b *nodeBuilder) hall(row, col int) {
	if !b.isNode[b.g.At(row, col)] {
		b.g.Set(row, col, pick(b.rng, b.opts.HallTypes))
	}
}

func (b *nodeBuilder) restamp(n *Node) error {
	n.Code = pick(b.rng, b.opts.NodeTypes)
	b.g.Set(n.Row, n.Col, n.Code)
	if err := b.layout.Links.AddVertex(n.ID(), core.WithMetadata(grid.MetaCode, n.Code)); err != nil {
		return wrapf(methodNodes, "node "+n.ID(), err)
	}
	return nil
}
