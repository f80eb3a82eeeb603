package spanning

import (
	"container/heap"

	"github.com/katalvlaran/rlg/core"
)

// Prim computes the minimum spanning tree by growing outwards from root with
// a min-heap of candidate edges.
//
// Error conditions: ErrInvalidGraph, ErrEmptyRoot, core.ErrVertexNotFound,
// ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	pq := &edgePQ{}
	seq := 0
	push := func(from string) error {
		nbrs, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(from)] {
				heap.Push(pq, candidate{edge: e, to: e.Other(from), seq: seq})
				seq++
			}
		}
		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst = append(mst, *c.edge)
		total += c.edge.Weight
		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}

// candidate is an edge leaving the tree towards to. seq breaks weight ties
// in push order.
type candidate struct {
	edge *core.Edge
	to   string
	seq  int
}

// edgePQ implements heap.Interface as a min-heap by weight, then seq.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
