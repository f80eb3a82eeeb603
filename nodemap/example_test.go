package nodemap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/nodemap"
)

// ExampleNodeMap_PathTo links a square of waypoints and walks across it.
func ExampleNodeMap_PathTo() {
	m := nodemap.New()
	_, _ = m.AddNode("nw", geom.V(0, 10, 0))
	_, _ = m.AddNode("ne", geom.V(10, 10, 0))
	_, _ = m.AddNode("sw", geom.V(0, 0, 0))
	_, _ = m.AddNode("se", geom.V(10, 0, 0))

	opts := nodemap.DefaultLinkOptions()
	opts.MaxDist = 10
	fmt.Println("links:", m.UpdateNeighbors(opts))

	path, err := m.PathTo(geom.V(1, 1, 0), geom.V(9, 11, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = n.ID
	}
	fmt.Println(strings.Join(names, " "))

	// Output:
	// links: 4
	// sw nw ne
}
