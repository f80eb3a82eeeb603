// Command rlgdump generates a level and prints it as ASCII.
//
//	rlgdump -mode nodes -connect spanning -rows 12 -cols 20 -seed 7 -populate
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/katalvlaran/rlg/gen"
	"github.com/katalvlaran/rlg/geom"
	"github.com/katalvlaran/rlg/grid"
	"github.com/katalvlaran/rlg/place"
)

// hallCode stamps bridged cells.
const hallCode grid.Code = 1

func main() {
	log.SetFlags(0)
	log.SetPrefix("rlgdump: ")

	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, w io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	g, rep, err := generate(cfg, rng)
	if err != nil {
		return err
	}
	if rep.Truncated {
		log.Printf("%s: search cap hit after %d passes, level is short", cfg.Mode, rep.Passes)
	}
	if rep.ShortCorridors > 0 {
		log.Printf("%s: %d corridors did not arrive", cfg.Mode, rep.ShortCorridors)
	}

	if cfg.Clean {
		g = grid.CleanUp(g)
	}
	if cfg.Bridge {
		cost, err := grid.BridgeAll(g, grid.NotVoid, hallCode)
		if err != nil {
			return err
		}
		log.Printf("bridged islands with %d cells", cost)
	}
	fmt.Fprint(w, g)

	if cfg.Populate {
		return summarize(g, w)
	}
	return nil
}

func generate(cfg *Config, rng *rand.Rand) (*grid.Grid, gen.Report, error) {
	switch cfg.Mode {
	case "growth":
		opts := gen.DefaultGrowthOptions()
		opts.Rows, opts.Cols = cfg.Rows, cfg.Cols
		opts.MaxNum = cfg.MaxNum
		opts.MustConnect = !cfg.Loose
		return gen.Growth(rng, opts)
	case "nodes":
		conn, err := gen.ParseConnectionStyle(cfg.Connection)
		if err != nil {
			return nil, gen.Report{}, err
		}
		opts := gen.DefaultNodesOptions()
		opts.Rows, opts.Cols = cfg.Rows, cfg.Cols
		opts.NodeCount = cfg.Nodes
		opts.Connection = conn
		opts.Straight = cfg.Straight
		opts.MaxRoomSize = cfg.Rooms
		if opts.MinRoomSize > cfg.Rooms {
			opts.MinRoomSize = cfg.Rooms
		}
		l, err := gen.Nodes(rng, opts)
		if err != nil {
			return nil, gen.Report{}, err
		}
		return l.Grid, l.Report, nil
	case "line":
		opts := gen.DefaultLineOptions()
		opts.Rows, opts.Cols = cfg.Rows, cfg.Cols
		return gen.Line(rng, opts)
	}
	return nil, gen.Report{}, fmt.Errorf("unknown mode %q", cfg.Mode)
}

var shapeOrder = []grid.Shape{
	grid.ShapeEnd, grid.ShapeStraight, grid.ShapeCorner, grid.ShapeTee, grid.ShapeCross, grid.ShapeCeiling,
}

// summarize populates a memory scene with one template per shape and code
// and prints how many pieces of each shape were placed.
func summarize(g *grid.Grid, w io.Writer) error {
	pal := place.Palettes{
		End:      place.Palette{},
		Straight: place.Palette{},
		Corner:   place.Palette{},
		Tee:      place.Palette{},
		Cross:    place.Palette{},
		Ceiling:  place.Palette{grid.Void: {"ceiling"}},
	}
	scene := place.NewMemoryScene().Register("ceiling", geom.V(1, 1, 0))
	g.Each(func(_, _ int, c grid.Code) {
		if c == grid.Void {
			return
		}
		for _, s := range shapeOrder[:5] {
			name := fmt.Sprintf("%s-%d", s, c)
			pal.ForShape(s)[c] = []string{name}
			scene.Register(name, geom.V(1, 1, 0))
		}
	})

	opts := place.DefaultOptions()
	opts.CellSize = geom.V(1, 1, 0)
	pop, err := place.Populate(g, pal, scene, opts)
	if err != nil {
		return err
	}
	for _, s := range shapeOrder {
		fmt.Fprintf(w, "%-8s %d\n", s.String()+":", len(pop.ByShape(s)))
	}
	return nil
}
