package grid_test

import (
	"fmt"

	"github.com/katalvlaran/rlg/grid"
)

// ExampleSurrounding classifies the centre of a T-shaped junction.
func ExampleSurrounding() {
	g, _ := grid.FromInts([][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	n := grid.Surrounding(g, 1, 1, grid.Void, grid.EdgeBlank)
	fmt.Println("num:", n.Num)
	fmt.Println("shape:", n.Shape())
	fmt.Println("down occupied:", n.Occupied(grid.Down))

	// Output:
	// num: 3
	// shape: tee
	// down occupied: false
}

// ExampleCleanUp removes a single stray cell.
func ExampleCleanUp() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	fmt.Print(grid.CleanUp(g))

	// Output:
	// . . .
	// . . .
	// . . .
}
