package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rlg/grid"
)

// Rand is the random source consumed by the generators. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// Report describes how a generator run ended.
type Report struct {
	// Passes counts random draws of the main search loop.
	Passes int
	// Truncated is set when a search cap was hit before the target was
	// reached; the returned grid is valid but short.
	Truncated bool
	// ShortCorridors counts corridors that did not arrive within MaxSteps.
	// No link is recorded for them.
	ShortCorridors int
}

// ConnectionStyle selects how Nodes joins its nodes.
type ConnectionStyle int

const (
	// ConnectOne links each node to one random partner it is not linked to yet.
	ConnectOne ConnectionStyle = iota
	// ConnectAll links every pair of nodes.
	ConnectAll
	// ConnectHub picks a random hub and links every other node to it.
	ConnectHub
	// ConnectSpanning links the nodes along a minimum spanning tree over
	// Manhattan distance. The result is always connected.
	ConnectSpanning
)

func (s ConnectionStyle) String() string {
	switch s {
	case ConnectOne:
		return "one"
	case ConnectAll:
		return "all"
	case ConnectHub:
		return "hub"
	case ConnectSpanning:
		return "spanning"
	}
	return fmt.Sprintf("connection(%d)", int(s))
}

// ParseConnectionStyle is the inverse of ConnectionStyle.String.
func ParseConnectionStyle(s string) (ConnectionStyle, error) {
	for _, c := range []ConnectionStyle{ConnectOne, ConnectAll, ConnectHub, ConnectSpanning} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("gen: connection %q: %w", s, ErrUnknownStyle)
}

// RoomStyle selects the shape a node explodes into.
type RoomStyle int

const (
	// RoomSquare fills cells with |Δrow| < size and |Δcol| < size.
	RoomSquare RoomStyle = iota
	// RoomRound fills cells within Euclidean distance size.
	RoomRound
)

func (s RoomStyle) String() string {
	switch s {
	case RoomSquare:
		return "square"
	case RoomRound:
		return "round"
	}
	return fmt.Sprintf("room(%d)", int(s))
}

// Node is a junction placed by Nodes. Links lists the nodes it was joined
// to by a corridor that arrived.
type Node struct {
	Row, Col int
	Code     grid.Code
	Links    []*Node
}

// ID returns the vertex ID of n in Layout.Links.
func (n *Node) ID() string { return grid.CellID(n.Row, n.Col) }

// LinkedTo reports whether n has a corridor to o.
func (n *Node) LinkedTo(o *Node) bool {
	for _, l := range n.Links {
		if l == o {
			return true
		}
	}
	return false
}

// pick returns a random element of codes.
func pick(rng Rand, codes []grid.Code) grid.Code {
	return codes[rng.Intn(len(codes))]
}

func checkCodes(method, field string, codes []grid.Code, allowVoid bool) error {
	if len(codes) == 0 {
		return wrapf(method, field, ErrNoCodes)
	}
	if allowVoid {
		return nil
	}
	for _, c := range codes {
		if c == grid.Void {
			return wrapf(method, field, ErrVoidCode)
		}
	}
	return nil
}
