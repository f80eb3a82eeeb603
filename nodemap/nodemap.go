package nodemap

import (
	"sort"
	"sync"

	"github.com/katalvlaran/rlg/core"
	"github.com/katalvlaran/rlg/geom"
)

// NodeMap is a set of waypoints and the links between them.
type NodeMap struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	links *core.Graph
}

// New returns an empty NodeMap.
func New() *NodeMap {
	return &NodeMap{
		nodes: make(map[string]*Node),
		links: core.NewGraph(),
	}
}

// AddNode inserts a node at pos with cost 1 unless overridden.
func (m *NodeMap) AddNode(id string, pos geom.Vec3, opts ...NodeOption) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	n := &Node{ID: id, Position: pos, Cost: 1}
	for _, opt := range opts {
		opt(n)
	}
	if n.Cost < 0 {
		return nil, ErrNegativeCost
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nodes[id]; ok {
		return nil, ErrDuplicateNode
	}
	m.nodes[id] = n
	if err := m.links.AddVertex(id); err != nil {
		delete(m.nodes, id)
		return nil, err
	}
	return n, nil
}

// RemoveNode deletes a node and its links.
func (m *NodeMap) RemoveNode(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	delete(m.nodes, id)
	return m.links.RemoveVertex(id)
}

// Node returns the node with the given ID.
func (m *NodeMap) Node(id string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Nodes returns every node sorted by ID.
func (m *NodeMap) Nodes() []*Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedLocked()
}

// Len returns the number of nodes.
func (m *NodeMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

// LinkCount returns the number of links.
func (m *NodeMap) LinkCount() int {
	return m.links.EdgeCount()
}

// Link joins two nodes. Linking an already linked pair is a no-op.
func (m *NodeMap) Link(a, b string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nodes[a]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := m.nodes[b]; !ok {
		return ErrNodeNotFound
	}
	return m.linkLocked(a, b)
}

func (m *NodeMap) linkLocked(a, b string) error {
	if m.links.HasEdge(a, b) {
		return nil
	}
	_, err := m.links.AddEdge(a, b, 0)
	return err
}

// Linked reports whether a and b share a link.
func (m *NodeMap) Linked(a, b string) bool {
	return m.links.HasEdge(a, b)
}

// Neighbors returns the nodes linked to id, sorted by ID.
func (m *NodeMap) Neighbors(id string) ([]*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.neighborsLocked(id)
}

func (m *NodeMap) neighborsLocked(id string) ([]*Node, error) {
	if _, ok := m.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	ids, err := m.links.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, 0, len(ids))
	for _, nid := range ids {
		out = append(out, m.nodes[nid])
	}
	return out, nil
}

func (m *NodeMap) sortedLocked() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateNeighbors links every pair of nodes whose distance lies in
// [MinDist, MaxDist], whose segment passes opts.Sight, and where neither
// node already has MaxConnections links. Pairs are visited in ID order.
// Existing links are kept. It returns the number of links added.
//
// Complexity: O(V²) sight tests.
func (m *NodeMap) UpdateNeighbors(opts LinkOptions) int {
	sight := sightOrOpen(opts.Sight)

	m.mu.Lock()
	defer m.mu.Unlock()
	nodes := m.sortedLocked()
	degree := func(id string) int {
		d, _ := m.links.Degree(id)
		return d
	}

	added := 0
	for i, n := range nodes {
		for _, o := range nodes[i+1:] {
			if m.links.HasEdge(n.ID, o.ID) {
				continue
			}
			dist := n.Position.Dist(o.Position)
			if dist < opts.MinDist || dist > opts.MaxDist {
				continue
			}
			if degree(n.ID) >= opts.MaxConnections || degree(o.ID) >= opts.MaxConnections {
				continue
			}
			if !sight.Clear(n.Position, o.Position) {
				continue
			}
			if err := m.linkLocked(n.ID, o.ID); err == nil {
				added++
			}
		}
	}
	return added
}

// ClosestNode returns the node nearest to pos that sight reports as
// visible from pos. Ties break by ID. ok is false when no node is visible.
func (m *NodeMap) ClosestNode(pos geom.Vec3, sight Sight) (n *Node, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closestLocked(pos, sightOrOpen(sight))
}

func (m *NodeMap) closestLocked(pos geom.Vec3, sight Sight) (*Node, bool) {
	nodes := m.sortedLocked()
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Position.Dist(pos) < nodes[j].Position.Dist(pos)
	})
	for _, n := range nodes {
		if sight.Clear(n.Position, pos) {
			return n, true
		}
	}
	return nil, false
}
