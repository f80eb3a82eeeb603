package grid

import (
	"container/list"
	"fmt"
)

// Components finds the 4-connected regions ("islands") of cells for which
// occupied returns true. Each component lists its cells in BFS order;
// components appear in row-major order of their first cell.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func Components(g *Grid, occupied func(Code) bool) [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for i0, c0 := range g.cells {
		if seen[i0] || !occupied(c0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := g.coordinate(u)
			comp = append(comp, Cell{Row: ur, Col: uc, Code: g.cells[u]})
			for _, d := range Directions {
				dr, dc := d.Offset()
				vr, vc := ur+dr, uc+dc
				if !g.InBounds(vr, vc) {
					continue
				}
				vi := g.index(vr, vc)
				if !seen[vi] && occupied(g.cells[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether all occupied cells form a single component.
// A grid with no occupied cell counts as connected.
func Connected(g *Grid, occupied func(Code) bool) bool {
	return len(Components(g, occupied)) <= 1
}

// Bridge links component src to component dst (indices into Components) with
// the cheapest path, where entering an occupied cell costs 0 and entering an
// unoccupied cell costs 1. Every unoccupied cell on the path is set to code.
//
// Returns the path (both end cells included, codes as they are after
// stamping) and the number of converted cells.
//
// Behavior:
//  1. Validate component indices (ErrComponentIndex).
//  2. Multi-source 0-1 BFS from all src cells.
//  3. Stop at the first dst cell popped.
//  4. Reconstruct the path via predecessors and stamp it.
//
// Complexity: O(R×C) time and memory.
func Bridge(g *Grid, src, dst int, occupied func(Code) bool, code Code) ([]Cell, int, error) {
	comps := Components(g, occupied)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dst]))
	for _, c := range comps[dst] {
		dstSet[g.index(c.Row, c.Col)] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	n := len(g.cells)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, c := range comps[src] {
		i := g.index(c.Row, c.Col)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ur, uc := g.coordinate(u)
		for _, d := range Directions {
			dr, dc := d.Offset()
			vr, vc := ur+dr, uc+dc
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.index(vr, vc)
			step := 0
			if !occupied(g.cells[v]) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var idx []int
	for at := target; at >= 0; at = prev[at] {
		idx = append(idx, at)
	}
	path := make([]Cell, 0, len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		at := idx[i]
		if !occupied(g.cells[at]) {
			g.cells[at] = code
		}
		r, c := g.coordinate(at)
		path = append(path, Cell{Row: r, Col: c, Code: g.cells[at]})
	}
	return path, dist[target], nil
}

// BridgeAll repeatedly bridges the first component to the next one until the
// occupied cells are connected. Returns the total number of converted cells.
func BridgeAll(g *Grid, occupied func(Code) bool, code Code) (int, error) {
	if !occupied(code) {
		// Stamped cells would never join a component.
		return 0, fmt.Errorf("%w: bridge code %d is not occupied", ErrNoPath, code)
	}
	total := 0
	for len(Components(g, occupied)) > 1 {
		_, cost, err := Bridge(g, 0, 1, occupied, code)
		if err != nil {
			return total, err
		}
		total += cost
	}
	return total, nil
}
