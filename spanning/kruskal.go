package spanning

import (
	"sort"

	"github.com/katalvlaran/rlg/core"
)

// Kruskal computes the minimum spanning tree of an undirected, weighted graph
// using a disjoint-set with path compression and union by rank.
//
// Steps:
//  1. Validate the graph (ErrInvalidGraph).
//  2. |V| == 0 → ErrDisconnected; |V| == 1 → empty tree.
//  3. Stable-sort edges by weight.
//  4. Take every edge whose endpoints lie in different sets, until |V|-1 edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	var (
		mst   []core.Edge
		total int64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}
