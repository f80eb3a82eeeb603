package nodemap

import (
	"errors"

	"github.com/katalvlaran/rlg/geom"
)

// Sentinel errors.
var (
	// ErrEmptyID indicates a node ID of "".
	ErrEmptyID = errors.New("nodemap: node ID is empty")
	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("nodemap: node already exists")
	// ErrNodeNotFound indicates an unknown node ID.
	ErrNodeNotFound = errors.New("nodemap: node not found")
	// ErrNegativeCost indicates a node cost below zero.
	ErrNegativeCost = errors.New("nodemap: node cost must be non-negative")
	// ErrUnreachableStart indicates no node is visible from the start position.
	ErrUnreachableStart = errors.New("nodemap: start position cannot be reached from any node")
	// ErrUnreachableGoal indicates no node is visible from the goal position.
	ErrUnreachableGoal = errors.New("nodemap: goal position cannot be reached from any node")
	// ErrNoPath indicates the start and goal nodes are not connected.
	ErrNoPath = errors.New("nodemap: no path between start and goal")
	// ErrCheckLimit indicates A* gave up after MaxChecks expansions.
	ErrCheckLimit = errors.New("nodemap: check limit reached")
	// ErrBadMaxChecks indicates a non-positive MaxChecks.
	ErrBadMaxChecks = errors.New("nodemap: MaxChecks must be positive")
)

// Node is a waypoint.
type Node struct {
	ID       string
	Position geom.Vec3
	// Cost is added to the path cost of every path through the node.
	Cost float64
}

// NodeOption configures a node in AddNode.
type NodeOption func(*Node)

// WithCost sets the traversal cost of a node (default 1).
func WithCost(c float64) NodeOption {
	return func(n *Node) { n.Cost = c }
}

// Sight reports whether the straight segment between two points is
// unobstructed.
type Sight interface {
	Clear(from, to geom.Vec3) bool
}

// SightFunc adapts a function to Sight.
type SightFunc func(from, to geom.Vec3) bool

// Clear implements Sight.
func (f SightFunc) Clear(from, to geom.Vec3) bool { return f(from, to) }

// OpenSight sees everything.
var OpenSight Sight = SightFunc(func(geom.Vec3, geom.Vec3) bool { return true })

// LinkOptions configures UpdateNeighbors.
type LinkOptions struct {
	// MinDist and MaxDist bound the distance of linked pairs (inclusive).
	MinDist, MaxDist float64
	// MaxConnections caps the links of any node.
	MaxConnections int
	// Sight filters pairs; nil means OpenSight.
	Sight Sight
}

// DefaultLinkOptions links everything in sight up to 9999 units apart.
func DefaultLinkOptions() LinkOptions {
	return LinkOptions{MinDist: 0, MaxDist: 9999, MaxConnections: 9999}
}

// PathOptions configures PathTo.
type PathOptions struct {
	// MaxChecks caps the number of node expansions.
	MaxChecks int
	// Sight is used to snap start and goal to nodes; nil means OpenSight.
	Sight Sight
}

// PathOption mutates PathOptions.
type PathOption func(*PathOptions)

// DefaultMaxChecks is the default expansion cap of PathTo.
const DefaultMaxChecks = 1000

// DefaultPathOptions returns MaxChecks = DefaultMaxChecks and open sight.
func DefaultPathOptions() PathOptions {
	return PathOptions{MaxChecks: DefaultMaxChecks}
}

// WithMaxChecks sets the expansion cap. Panics on n <= 0.
func WithMaxChecks(n int) PathOption {
	if n <= 0 {
		panic(ErrBadMaxChecks.Error())
	}
	return func(o *PathOptions) { o.MaxChecks = n }
}

// WithSight sets the line-of-sight test used to snap start and goal.
func WithSight(s Sight) PathOption {
	return func(o *PathOptions) { o.Sight = s }
}

func sightOrOpen(s Sight) Sight {
	if s == nil {
		return OpenSight
	}
	return s
}
