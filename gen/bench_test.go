package gen_test

import (
	"testing"

	"github.com/katalvlaran/rlg/gen"
)

// BenchmarkGrowth measures a connected growth filling half of a 64×64 grid.
func BenchmarkGrowth(b *testing.B) {
	opts := gen.DefaultGrowthOptions()
	opts.Rows, opts.Cols = 64, 64
	for i := 0; i < b.N; i++ {
		if _, _, err := gen.Growth(seeded(int64(i)), opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNodesSpanning measures 16 nodes joined by a spanning tree on 64×64.
func BenchmarkNodesSpanning(b *testing.B) {
	opts := gen.DefaultNodesOptions()
	opts.Rows, opts.Cols = 64, 64
	opts.NodeCount = 16
	opts.Connection = gen.ConnectSpanning
	for i := 0; i < b.N; i++ {
		if _, err := gen.Nodes(seeded(int64(i)), opts); err != nil {
			b.Fatal(err)
		}
	}
}
