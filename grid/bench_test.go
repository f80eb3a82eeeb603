package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rlg/grid"
)

// randomGrid returns an n×n grid of codes in [0,2] from a fixed seed.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n, grid.Void)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.Each(func(row, col int, _ grid.Code) { g.Set(row, col, grid.Code(r.Intn(3))) })
	return g
}

// BenchmarkCleanUp measures CleanUp on a noisy 500×500 grid.
// Complexity: O(R×C)
func BenchmarkCleanUp(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.CleanUp(g)
	}
}

// BenchmarkComponents measures Components on a noisy 500×500 grid.
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Components(g, grid.NotVoid)
	}
}

// BenchmarkBridge measures Bridge between two single cells at opposite
// corners of an empty 300×300 grid.
func BenchmarkBridge(b *testing.B) {
	base, _ := grid.New(300, 300, grid.Void)
	base.Set(0, 0, 1)
	base.Set(299, 299, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := base.Clone()
		if _, _, err := grid.Bridge(g, 0, 1, grid.NotVoid, 1); err != nil {
			b.Fatal(err)
		}
	}
}
