package main

import "flag"

// Config holds the command-line parameters of rlgdump.
type Config struct {
	Mode       string
	Rows, Cols int
	Seed       int64
	MaxNum     int
	Loose      bool
	Nodes      int
	Connection string
	Straight   bool
	Rooms      int
	Clean      bool
	Bridge     bool
	Populate   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:       "growth",
		Rows:       9,
		Cols:       9,
		Seed:       42,
		Connection: "one",
		Rooms:      0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "generator: growth, nodes or line")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.MaxNum, "max", c.MaxNum, "growth: target cell count (0 = half the grid)")
	fs.BoolVar(&c.Loose, "loose", c.Loose, "growth: do not require connected cells")
	fs.IntVar(&c.Nodes, "nodes", c.Nodes, "nodes: node count (0 = cols/2)")
	fs.StringVar(&c.Connection, "connect", c.Connection, "nodes: one, all, hub or spanning")
	fs.BoolVar(&c.Straight, "straight", c.Straight, "nodes: straight corridors instead of stair-steps")
	fs.IntVar(&c.Rooms, "rooms", c.Rooms, "nodes: maximum room size (0 = no rooms)")
	fs.BoolVar(&c.Clean, "clean", c.Clean, "remove isolated cells")
	fs.BoolVar(&c.Bridge, "bridge", c.Bridge, "join disconnected islands with halls")
	fs.BoolVar(&c.Populate, "populate", c.Populate, "place pieces in a memory scene and print a shape summary")
}
