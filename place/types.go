package place

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/grid"
)

var (
	// ErrNilScene indicates Populate was called without a Scene.
	ErrNilScene = errors.New("place: scene is nil")
	// ErrNilChooser indicates Options.Chooser is nil.
	ErrNilChooser = errors.New("place: chooser is nil")
	// ErrMissingPalette indicates no template exists for a cell's code and shape.
	ErrMissingPalette = errors.New("place: no template for code and shape")
	// ErrNoCellSize indicates the cell size could not be determined.
	ErrNoCellSize = errors.New("place: cell size unknown")
	// ErrUnknownTemplate indicates a Scene does not know a template name.
	ErrUnknownTemplate = errors.New("place: unknown template")
	// ErrUnknownHandle indicates a Remover was given a handle it never issued.
	ErrUnknownHandle = errors.New("place: unknown handle")
)

// Handle identifies a spawned piece inside a Scene. Its value is opaque to
// this package.
type Handle interface{}

// Scene spawns template pieces. rot holds Euler angles in radians.
type Scene interface {
	Spawn(template string, pos, rot geom.Vec3) (Handle, error)
}

// Sizer is implemented by scenes that can measure a template.
type Sizer interface {
	Dimensions(template string) (geom.Vec3, error)
}

// Remover is implemented by scenes that can delete spawned pieces.
type Remover interface {
	Remove(h Handle) error
}

// Chooser picks an index in [0, n).
type Chooser interface {
	Choose(n int) int
}

// RandChooser picks uniformly with a caller-owned random source such as
// *rand.Rand.
type RandChooser struct {
	Rand interface{ Intn(n int) int }
}

// Choose implements Chooser.
func (c RandChooser) Choose(n int) int { return c.Rand.Intn(n) }

// FirstChooser always picks index 0.
type FirstChooser struct{}

// Choose implements Chooser.
func (FirstChooser) Choose(int) int { return 0 }

// Palette maps a cell code to candidate template names.
type Palette map[grid.Code][]string

// Palettes holds one palette per shape plus the ceiling palette.
type Palettes struct {
	End      Palette
	Straight Palette
	Corner   Palette
	Tee      Palette
	Cross    Palette
	Ceiling  Palette
}

// ForShape returns the palette used for s. Isolated cells use Cross.
func (p Palettes) ForShape(s grid.Shape) Palette {
	switch s {
	case grid.ShapeEnd:
		return p.End
	case grid.ShapeStraight:
		return p.Straight
	case grid.ShapeCorner:
		return p.Corner
	case grid.ShapeTee:
		return p.Tee
	case grid.ShapeCeiling:
		return p.Ceiling
	default:
		return p.Cross
	}
}

// Options configures Populate.
type Options struct {
	// Origin is the world position of the grid centre.
	Origin geom.Vec3
	// CellSize is the world size of one cell. Zero asks the Scene (a Sizer)
	// for the size of the first template of the lowest-code Cross palette.
	CellSize geom.Vec3
	// VaryingSize positions each piece with its own template size.
	VaryingSize bool
	// CeilingCodes are codes that receive ceiling pieces. Keys of
	// Palettes.Ceiling are ceiling codes too. nil means {grid.Void}.
	CeilingCodes []grid.Code
	// Edge is the off-grid policy used when classifying cells.
	Edge grid.EdgeMode
	// Chooser picks among a palette's templates.
	Chooser Chooser
}

// DefaultOptions returns Options at the world origin with an
// always-first chooser.
func DefaultOptions() Options {
	return Options{
		CeilingCodes: []grid.Code{grid.Void},
		Edge:         grid.EdgeBlank,
		Chooser:      FirstChooser{},
	}
}

// Room is one spawned piece.
type Room struct {
	Handle   Handle
	Template string
	Shape    grid.Shape
	Code     grid.Code
	Row, Col int
	Position geom.Vec3
	// Rotation holds Euler angles in radians; only Z is set.
	Rotation geom.Vec3
}

func (r *Room) String() string {
	return fmt.Sprintf("%s %s@(%d,%d) z=%.4f", r.Shape, r.Template, r.Row, r.Col, r.Rotation.Z)
}

// Population is the result of Populate.
type Population struct {
	// Spawned lists every piece in spawn order, ceilings included.
	Spawned []*Room
	// RoomMap mirrors the grid: RoomMap[row][col] is the piece spawned for
	// that cell, ceilings included, or nil when the cell was skipped.
	RoomMap [][]*Room
}

// At returns the piece at (row, col), nil when the cell was skipped or is
// out of range.
func (p *Population) At(row, col int) *Room {
	if row < 0 || row >= len(p.RoomMap) || col < 0 || col >= len(p.RoomMap[row]) {
		return nil
	}
	return p.RoomMap[row][col]
}

// ByShape returns the spawned pieces of shape s in spawn order.
func (p *Population) ByShape(s grid.Shape) []*Room {
	var out []*Room
	for _, r := range p.Spawned {
		if r.Shape == s {
			out = append(out, r)
		}
	}
	return out
}

// Clear removes every spawned piece from scene and empties the population.
// It stops at the first error.
func (p *Population) Clear(scene Remover) error {
	for i, r := range p.Spawned {
		if err := scene.Remove(r.Handle); err != nil {
			p.Spawned = p.Spawned[i:]
			return fmt.Errorf("place: remove %s: %w", r, err)
		}
	}
	p.Spawned = nil
	for _, row := range p.RoomMap {
		for c := range row {
			row[c] = nil
		}
	}
	return nil
}
