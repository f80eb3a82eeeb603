package gen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rlg/core"
	"github.com/katalvlaran/rlg/grid"
	"github.com/katalvlaran/rlg/spanning"
)

// Layout is the result of Nodes.
type Layout struct {
	Grid *grid.Grid
	// Nodes lists base nodes first (row-major), then placed nodes in
	// placement order.
	Nodes []*Node
	// Links holds one vertex per node (ID "row,col", metadata row/col/code)
	// and one edge per corridor that arrived, weighted by its step count.
	Links  *core.Graph
	Report Report
}

// Nodes places spaced nodes, grows rooms around them and carves corridors
// between them.
//
// Behavior:
//  1. Start from a clone of opts.Base or a fresh grid of random EmptyTypes.
//     Base cells holding a NodeTypes code become nodes.
//  2. Place NodeCount new nodes on non-node cells. For dist = Spacing+1 down
//     to 0, draw up to PlacementAttempts cells and keep the first one whose
//     row and column both differ from every node by at least dist. A node
//     that cannot be placed sets Report.Truncated.
//  3. With MaxRoomSize > 0, every node, base nodes included, explodes into a
//     room of radius int(Min + (Max-Min)·U) in RoomStyle; room cells take
//     the node's code. Node cells are never overwritten.
//  4. Fewer than two nodes: ErrTooFewNodes.
//  5. Connect the nodes with opts.Connection, carving halls between them.
//
// Complexity: O(N·PlacementAttempts·N) placement plus O(L·MaxSteps) carving
// for L links.
func Nodes(rng Rand, opts NodesOptions) (*Layout, error) {
	if rng == nil {
		return nil, wrapf(methodNodes, "rng is nil", ErrNeedRand)
	}
	if err := checkCodes(methodNodes, "NodeTypes", opts.NodeTypes, false); err != nil {
		return nil, err
	}
	if err := checkCodes(methodNodes, "HallTypes", opts.HallTypes, false); err != nil {
		return nil, err
	}
	if opts.MaxRoomSize > 0 && (opts.MinRoomSize < 0 || opts.MinRoomSize > opts.MaxRoomSize) {
		return nil, wrapf(methodNodes,
			fmt.Sprintf("rooms %d..%d", opts.MinRoomSize, opts.MaxRoomSize), ErrBadRoomSize)
	}
	if opts.Connection < ConnectOne || opts.Connection > ConnectSpanning {
		return nil, wrapf(methodNodes, opts.Connection.String(), ErrUnknownStyle)
	}
	if opts.RoomStyle != RoomSquare && opts.RoomStyle != RoomRound {
		return nil, wrapf(methodNodes, opts.RoomStyle.String(), ErrUnknownStyle)
	}
	if opts.SpanningMethod != "" && !opts.SpanningMethod.Valid() {
		return nil, wrapf(methodNodes, fmt.Sprintf("spanning method %q", opts.SpanningMethod), ErrUnknownStyle)
	}

	var g *grid.Grid
	if opts.Base != nil {
		g = opts.Base.Clone()
	} else {
		if err := checkCodes(methodNodes, "EmptyTypes", opts.EmptyTypes, true); err != nil {
			return nil, err
		}
		var err error
		if g, err = grid.New(opts.Rows, opts.Cols, grid.Void); err != nil {
			return nil, wrapf(methodNodes, "rows and cols must be positive", ErrBadSize)
		}
		g.Each(func(row, col int, _ grid.Code) { g.Set(row, col, pick(rng, opts.EmptyTypes)) })
	}

	b := &nodeBuilder{
		rng:    rng,
		opts:   opts,
		g:      g,
		isNode: codeSet(opts.NodeTypes),
		layout: &Layout{Grid: g, Links: core.NewGraph(core.WithWeighted())},
	}
	if b.opts.MaxSteps <= 0 {
		b.opts.MaxSteps = DefaultMaxSteps
	}
	if b.opts.PlacementAttempts <= 0 {
		b.opts.PlacementAttempts = DefaultPlacementAttempts
	}

	for _, c := range g.Cells(func(c grid.Code) bool { return b.isNode[c] }) {
		if _, err := b.addNode(c.Row, c.Col, c.Code); err != nil {
			return nil, err
		}
	}
	if err := b.place(); err != nil {
		return nil, err
	}
	if opts.MaxRoomSize > 0 {
		for _, n := range b.layout.Nodes {
			b.room(n)
		}
	}

	if len(b.layout.Nodes) < 2 {
		return nil, wrapf(methodNodes, fmt.Sprintf("have %d", len(b.layout.Nodes)), ErrTooFewNodes)
	}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b.layout, nil
}

// nodeBuilder carries the state of one Nodes run.
type nodeBuilder struct {
	rng    Rand
	opts   NodesOptions
	g      *grid.Grid
	isNode map[grid.Code]bool
	layout *Layout
}

func codeSet(codes []grid.Code) map[grid.Code]bool {
	m := make(map[grid.Code]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func (b *nodeBuilder) addNode(row, col int, c grid.Code) (*Node, error) {
	n := &Node{Row: row, Col: col, Code: c}
	err := b.layout.Links.AddVertex(n.ID(),
		core.WithMetadata(grid.MetaRow, row),
		core.WithMetadata(grid.MetaCol, col),
		core.WithMetadata(grid.MetaCode, c),
	)
	if err != nil {
		return nil, wrapf(methodNodes, "node "+n.ID(), err)
	}
	b.layout.Nodes = append(b.layout.Nodes, n)
	return n, nil
}

// place draws the new nodes and appends them to the layout in placement
// order.
func (b *nodeBuilder) place() error {
	count := b.opts.NodeCount
	if count <= 0 {
		count = b.g.Cols() / 2
	}
	rows, cols := b.g.Rows(), b.g.Cols()

	for i := 0; i < count; i++ {
		row, col, ok := -1, -1, false
		top := b.opts.Spacing + 1
		if b.opts.Spacing <= 0 {
			top = 0
		}
	search:
		for dist := top; dist >= 0; dist-- {
			for a := 0; a < b.opts.PlacementAttempts; a++ {
				b.layout.Report.Passes++
				r, c := b.rng.Intn(rows), b.rng.Intn(cols)
				if b.isNode[b.g.At(r, c)] || !b.spaced(r, c, dist) {
					continue
				}
				row, col, ok = r, c, true
				break search
			}
		}
		if !ok {
			b.layout.Report.Truncated = true
			break
		}
		code := pick(b.rng, b.opts.NodeTypes)
		b.g.Set(row, col, code)
		if _, err := b.addNode(row, col, code); err != nil {
			return err
		}
	}
	return nil
}

// spaced reports whether (row, col) keeps at least dist rows and dist
// columns from every node.
func (b *nodeBuilder) spaced(row, col, dist int) bool {
	for _, n := range b.layout.Nodes {
		if abs(n.Row-row) < dist || abs(n.Col-col) < dist {
			return false
		}
	}
	return true
}

// room explodes n into a square or round room of its own code.
func (b *nodeBuilder) room(n *Node) {
	lo, hi := float64(b.opts.MinRoomSize), float64(b.opts.MaxRoomSize)
	size := int(lo + (hi-lo)*b.rng.Float64())
	for dr := -size; dr <= size; dr++ {
		for dc := -size; dc <= size; dc++ {
			r, c := n.Row+dr, n.Col+dc
			if !b.g.InBounds(r, c) || b.isNode[b.g.At(r, c)] {
				continue
			}
			var inside bool
			if b.opts.RoomStyle == RoomRound {
				inside = math.Hypot(float64(dr), float64(dc)) <= float64(size)
			} else {
				inside = abs(dr) < size && abs(dc) < size
			}
			if inside {
				b.g.Set(r, c, n.Code)
			}
		}
	}
}

// connect joins the nodes according to opts.Connection.
func (b *nodeBuilder) connect() error {
	nodes := b.layout.Nodes
	switch b.opts.Connection {
	case ConnectOne:
		for _, n := range nodes {
			var free []*Node
			for _, o := range nodes {
				if o != n && !n.LinkedTo(o) {
					free = append(free, o)
				}
			}
			if len(free) == 0 {
				continue
			}
			if err := b.link(n, free[b.rng.Intn(len(free))]); err != nil {
				return err
			}
		}
	case ConnectAll:
		for i, n := range nodes {
			for _, o := range nodes[i+1:] {
				if n.LinkedTo(o) {
					continue
				}
				if err := b.link(n, o); err != nil {
					return err
				}
			}
		}
	case ConnectHub:
		hub := nodes[b.rng.Intn(len(nodes))]
		for _, n := range nodes {
			if n == hub || n.LinkedTo(hub) {
				continue
			}
			if err := b.link(n, hub); err != nil {
				return err
			}
		}
	case ConnectSpanning:
		return b.connectSpanning()
	}
	return nil
}

// connectSpanning carves only the edges of a minimum spanning tree of the
// complete node graph weighted by Manhattan distance.
func (b *nodeBuilder) connectSpanning() error {
	nodes := b.layout.Nodes
	byID := make(map[string]*Node, len(nodes))
	full := core.NewGraph(core.WithWeighted())
	for _, n := range nodes {
		byID[n.ID()] = n
	}
	for i, n := range nodes {
		for _, o := range nodes[i+1:] {
			w := int64(abs(n.Row-o.Row) + abs(n.Col-o.Col))
			if _, err := full.AddEdge(n.ID(), o.ID(), w); err != nil {
				return wrapf(methodNodes, "spanning graph", err)
			}
		}
	}
	method := b.opts.SpanningMethod
	if method == "" {
		method = spanning.MethodKruskal
	}
	tree, _, err := spanning.Compute(full, spanning.WithMethod(method))
	if err != nil {
		return wrapf(methodNodes, "spanning tree", err)
	}
	for _, e := range tree {
		if err := b.link(byID[e.From], byID[e.To]); err != nil {
			return err
		}
	}
	return nil
}

// link carves a corridor from a to b and records the link when it arrives.
// A corridor cut short by MaxSteps only counts in Report.ShortCorridors.
func (b *nodeBuilder) link(from, to *Node) error {
	steps, ok, err := b.carve(from, to)
	if err != nil {
		return err
	}
	if !ok {
		b.layout.Report.ShortCorridors++
		return nil
	}
	if _, err := b.layout.Links.AddEdge(from.ID(), to.ID(), int64(steps)); err != nil {
		return wrapf(methodNodes, fmt.Sprintf("link %s-%s", from.ID(), to.ID()), err)
	}
	from.Links = append(from.Links, to)
	to.Links = append(to.Links, from)
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
