package place

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/grid"
)

// Populate spawns one piece per cell of g through scene.
//
// Behavior:
//  1. Ceiling cells (Options.CeilingCodes and keys of pal.Ceiling) get a
//     ceiling piece when pal.Ceiling has templates for their code, and are
//     skipped otherwise. Void cells that are not ceiling cells are skipped.
//  2. Other cells are classified against non-Void neighbours; the template
//     comes from the palette of their shape and code, chosen with
//     Options.Chooser. A missing palette entry fails with ErrMissingPalette.
//  3. Position = geom.CellPosition(rows, cols, row, col, size, Origin);
//     rotation from Rotation(shape, mask).
//
// Spawn errors are wrapped and returned with the pieces spawned so far.
//
// Complexity: O(R×C) spawns.
func Populate(g *grid.Grid, pal Palettes, scene Scene, opts Options) (*Population, error) {
	if scene == nil {
		return nil, ErrNilScene
	}
	if opts.Chooser == nil {
		return nil, ErrNilChooser
	}

	ceiling := make(map[grid.Code]bool)
	codes := opts.CeilingCodes
	if codes == nil {
		codes = []grid.Code{grid.Void}
	}
	for _, c := range codes {
		ceiling[c] = true
	}
	for c := range pal.Ceiling {
		ceiling[c] = true
	}

	size := opts.CellSize
	if size.IsZero() {
		var err error
		if size, err = defaultCellSize(pal, scene); err != nil {
			return nil, err
		}
	}

	rows, cols := g.Rows(), g.Cols()
	pop := &Population{RoomMap: make([][]*Room, rows)}
	for row := range pop.RoomMap {
		pop.RoomMap[row] = make([]*Room, cols)
	}
	classify := grid.Options{Ignore: grid.Void, Edge: opts.Edge, Blank: grid.Void}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			code := g.At(row, col)

			var (
				shape grid.Shape
				rot   geom.Vec3
			)
			switch {
			case ceiling[code]:
				shape = grid.ShapeCeiling
			case code == grid.Void:
				continue
			default:
				n := grid.SurroundingWith(g, row, col, classify)
				shape = n.Shape()
				if shape == grid.ShapeIsolated {
					shape = grid.ShapeCross
				}
				rot = geom.V(0, 0, Rotation(shape, n.Mask()))
			}

			templates := pal.ForShape(shape)[code]
			if len(templates) == 0 {
				if shape == grid.ShapeCeiling {
					continue
				}
				return pop, fmt.Errorf("%w: code %d shape %s at (%d,%d)", ErrMissingPalette, code, shape, row, col)
			}
			tmpl := templates[opts.Chooser.Choose(len(templates))]

			at := size
			if opts.VaryingSize {
				sizer, ok := scene.(Sizer)
				if !ok {
					return pop, fmt.Errorf("%w: varying size needs a Sizer", ErrNoCellSize)
				}
				var err error
				if at, err = sizer.Dimensions(tmpl); err != nil {
					return pop, fmt.Errorf("place: size of %q: %w", tmpl, err)
				}
			}
			pos := geom.CellPosition(rows, cols, row, col, at, opts.Origin)

			h, err := scene.Spawn(tmpl, pos, rot)
			if err != nil {
				return pop, fmt.Errorf("place: spawn %q at (%d,%d): %w", tmpl, row, col, err)
			}
			room := &Room{
				Handle:   h,
				Template: tmpl,
				Shape:    shape,
				Code:     code,
				Row:      row,
				Col:      col,
				Position: pos,
				Rotation: rot,
			}
			pop.Spawned = append(pop.Spawned, room)
			pop.RoomMap[row][col] = room
		}
	}
	return pop, nil
}

// defaultCellSize measures the first template of the lowest-code Cross
// palette entry.
func defaultCellSize(pal Palettes, scene Scene) (geom.Vec3, error) {
	sizer, ok := scene.(Sizer)
	if !ok {
		return geom.Vec3{}, fmt.Errorf("%w: CellSize is zero and the scene is not a Sizer", ErrNoCellSize)
	}
	codes := make([]grid.Code, 0, len(pal.Cross))
	for c, ts := range pal.Cross {
		if len(ts) > 0 {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return geom.Vec3{}, fmt.Errorf("%w: no cross template to measure", ErrNoCellSize)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	tmpl := pal.Cross[codes[0]][0]
	size, err := sizer.Dimensions(tmpl)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("%w: %q: %v", ErrNoCellSize, tmpl, err)
	}
	return size, nil
}
