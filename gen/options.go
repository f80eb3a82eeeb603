package gen

import (
	"github.com/katalvlaran/rlg/grid"
	"github.com/katalvlaran/rlg/spanning"
)

// DefaultMaxPasses caps the random draws of Growth.
const DefaultMaxPasses = 100000

// DefaultMaxSteps caps the length of one corridor.
const DefaultMaxSteps = 1000

// DefaultPlacementAttempts is the number of random draws per spacing level
// when Nodes places a node.
const DefaultPlacementAttempts = 1000

// GrowthOptions configures Growth.
type GrowthOptions struct {
	Rows, Cols int
	// MaxNum is the target count of occupied cells. 0 means half the grid,
	// rounded up. Values above the grid capacity are clamped.
	MaxNum int
	// MustConnect seeds the centre on an empty grid and only fills cells
	// touching an occupied neighbour.
	MustConnect bool
	// MaxCon rejects cells with more than MaxCon occupied neighbours. 0 = no limit.
	MaxCon int
	// RoomTypes are the codes placed, picked uniformly.
	RoomTypes []grid.Code
	// Base is an optional starting grid; it is cloned and its dimensions
	// override Rows and Cols.
	Base *grid.Grid
	// MaxPasses caps the number of random draws.
	MaxPasses int
}

// DefaultGrowthOptions returns a connected 9×9 growth of code 1.
func DefaultGrowthOptions() GrowthOptions {
	return GrowthOptions{
		Rows:        9,
		Cols:        9,
		MustConnect: true,
		RoomTypes:   []grid.Code{1},
		MaxPasses:   DefaultMaxPasses,
	}
}

// NodesOptions configures Nodes.
type NodesOptions struct {
	Rows, Cols int
	// NodeCount is the number of new nodes to place. 0 means Cols/2.
	NodeCount int
	// Spacing is the preferred minimum row and column distance between
	// nodes. It is relaxed step by step when no cell satisfies it.
	Spacing int
	// NodeTypes, HallTypes and EmptyTypes are the codes of nodes, corridor
	// cells and the background of a fresh grid.
	NodeTypes  []grid.Code
	HallTypes  []grid.Code
	EmptyTypes []grid.Code
	// Straight carves row-then-column corridors instead of stair-steps.
	Straight   bool
	Connection ConnectionStyle
	// SpanningMethod selects the MST algorithm of ConnectSpanning.
	SpanningMethod spanning.Method
	RoomStyle      RoomStyle
	// MinRoomSize and MaxRoomSize bound the room radius drawn per node.
	// MaxRoomSize 0 disables rooms.
	MinRoomSize, MaxRoomSize int
	// Base is an optional starting grid; it is cloned and its node cells
	// join the node list.
	Base *grid.Grid
	// MaxSteps caps the length of one corridor.
	MaxSteps int
	// PlacementAttempts caps the draws per spacing level.
	PlacementAttempts int
}

// DefaultNodesOptions returns the classic 9×9 node map: spaced nodes of
// code 2 with square rooms joined one partner each by halls of code 1.
func DefaultNodesOptions() NodesOptions {
	return NodesOptions{
		Rows:              9,
		Cols:              9,
		Spacing:           1,
		NodeTypes:         []grid.Code{2},
		HallTypes:         []grid.Code{1},
		EmptyTypes:        []grid.Code{grid.Void},
		Connection:        ConnectOne,
		SpanningMethod:    spanning.MethodKruskal,
		RoomStyle:         RoomSquare,
		MinRoomSize:       2,
		MaxRoomSize:       5,
		MaxSteps:          DefaultMaxSteps,
		PlacementAttempts: DefaultPlacementAttempts,
	}
}

// LineOptions configures Line.
type LineOptions struct {
	Rows, Cols int
	// LineRow is the starting row of the line; -1 picks one near the middle.
	LineRow int
	// LineTypes are the codes of line cells.
	LineTypes []grid.Code
	// FillTypes are the codes of cells above the line. Empty leaves them
	// untouched.
	FillTypes []grid.Code
	// EmptyTypes are the background codes of a fresh grid, picked per cell.
	// Empty means Void. Ignored when Base is set.
	EmptyTypes []grid.Code
	// Base is an optional starting grid; it is cloned and its dimensions
	// override Rows and Cols. Cells below the line keep their codes.
	Base *grid.Grid
}

// DefaultLineOptions returns a 9×9 line of code 1 starting near the middle.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Rows:      9,
		Cols:      9,
		LineRow:   -1,
		LineTypes: []grid.Code{1},
	}
}
