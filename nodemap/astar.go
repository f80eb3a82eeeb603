package nodemap

import (
	"container/heap"

	"github.com/katalvlaran/rlg/geom"
)

// PathTo finds a path of nodes from the node closest to start to the node
// closest to goal, both snapped with the configured Sight.
//
// The returned path runs start → goal and includes both end nodes. When
// start and goal snap to the same node the path has one element.
//
// Errors: ErrUnreachableGoal, ErrUnreachableStart, ErrNoPath, ErrCheckLimit.
//
// Complexity: O(E log V) bounded by MaxChecks expansions.
func (m *NodeMap) PathTo(start, goal geom.Vec3, opts ...PathOption) ([]*Node, error) {
	o := DefaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sight := sightOrOpen(o.Sight)

	m.mu.RLock()
	defer m.mu.RUnlock()

	goalNode, ok := m.closestLocked(goal, sight)
	if !ok {
		return nil, ErrUnreachableGoal
	}
	startNode, ok := m.closestLocked(start, sight)
	if !ok {
		return nil, ErrUnreachableStart
	}

	s := &search{m: m, goal: goalNode}
	return s.run(startNode, o.MaxChecks)
}

// search is the state of one A* query.
type search struct {
	m     *NodeMap
	goal  *Node
	g     map[string]float64
	prev  map[string]string
	done  map[string]bool
	open  itemPQ
	order int
}

func (s *search) run(start *Node, maxChecks int) ([]*Node, error) {
	s.g = map[string]float64{start.ID: 0}
	s.prev = make(map[string]string)
	s.done = make(map[string]bool)
	heap.Init(&s.open)
	s.push(start, 0)

	for checks := 0; s.open.Len() > 0; {
		it := heap.Pop(&s.open).(*item)
		if s.done[it.node.ID] {
			continue
		}
		if it.node == s.goal {
			return s.path(start), nil
		}
		if checks >= maxChecks {
			return nil, ErrCheckLimit
		}
		checks++
		s.done[it.node.ID] = true

		nbrs, err := s.m.neighborsLocked(it.node.ID)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if s.done[nb.ID] {
				continue
			}
			cand := s.g[it.node.ID] + it.node.Position.Dist(nb.Position) + nb.Cost
			if old, seen := s.g[nb.ID]; seen && cand >= old {
				continue
			}
			s.g[nb.ID] = cand
			s.prev[nb.ID] = it.node.ID
			s.push(nb, cand)
		}
	}
	return nil, ErrNoPath
}

func (s *search) push(n *Node, g float64) {
	s.order++
	heap.Push(&s.open, &item{node: n, f: g + n.Position.Dist(s.goal.Position), order: s.order})
}

// path walks predecessors back from the goal and reverses them.
func (s *search) path(start *Node) []*Node {
	var rev []*Node
	for id := s.goal.ID; ; id = s.prev[id] {
		rev = append(rev, s.m.nodes[id])
		if id == start.ID {
			break
		}
	}
	out := make([]*Node, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

// item is an open-set entry. Stale entries are skipped on pop.
type item struct {
	node  *Node
	f     float64
	order int
}

// itemPQ is a min-heap by f, then insertion order.
type itemPQ []*item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].order < pq[j].order
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
