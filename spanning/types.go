package spanning

import (
	"errors"

	"github.com/katalvlaran/rlg/core"
)

// ErrInvalidGraph indicates that a spanning tree requires an undirected, weighted graph.
var ErrInvalidGraph = errors.New("spanning: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("spanning: empty root vertex")

// ErrDisconnected indicates that no tree can cover every vertex.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// ErrUnknownMethod indicates a Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("spanning: unknown method")

// Method names an MST algorithm.
type Method string

const (
	// MethodKruskal sorts all edges and merges components with union-find.
	MethodKruskal Method = "kruskal"
	// MethodPrim grows a tree from Options.Root using a min-heap.
	MethodPrim Method = "prim"
)

// Valid reports whether m names a known algorithm.
func (m Method) Valid() bool {
	return m == MethodKruskal || m == MethodPrim
}

// Options selects the algorithm and, for Prim, the root vertex.
type Options struct {
	Method Method
	// Root is the start vertex for Prim. Empty means the first vertex in
	// sorted order. Unused by Kruskal.
	Root string
}

// Option mutates Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Kruskal with no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts and returns the tree edges and
// their total weight. Unknown methods yield ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := o.Root
		if root == "" && graph != nil {
			if vs := graph.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		return Prim(graph, root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}
	return nil
}
