package grid

// Invert returns a copy of g with every code found in m replaced by m[code].
// Codes missing from m are kept. g is not modified.
//
// Example: m = {0:1, 1:0, 3:4} swaps floor and wall and turns 3s into 4s.
// Complexity: O(R×C).
func Invert(g *Grid, m map[Code]Code) *Grid {
	out := g.Clone()
	for i, c := range out.cells {
		if to, ok := m[c]; ok {
			out.cells[i] = to
		}
	}
	return out
}

// Reverse returns the reciprocal of m, so that
// Invert(Invert(g, m), Reverse(m)) reproduces g whenever every code of g
// either is a key of m or is neither a key nor a value of m.
// Returns ErrNotInvertible if two keys map to the same value.
func Reverse(m map[Code]Code) (map[Code]Code, error) {
	out := make(map[Code]Code, len(m))
	for from, to := range m {
		if _, dup := out[to]; dup {
			return nil, ErrNotInvertible
		}
		out[to] = from
	}
	return out, nil
}

// CleanUp returns a copy of g in which isolated cells take the value of their
// surroundings.
//
// A cell is isolated when every neighbour that exists differs from it
// (off-grid neighbours are void and do not vote). It is replaced by the first
// differing neighbour in the order left, right, up, down. A cell with no
// in-grid neighbour at all (1×1 grid) is left unchanged.
//
// Cells are visited in row-major order and each decision reads the already
// cleaned cells, so a replaced cell always matches the neighbour it copied and
// no isolated cell survives the pass (a checkerboard collapses instead of
// flipping).
//
// Complexity: O(R×C).
func CleanUp(g *Grid) *Grid {
	out := g.Clone()
	for row := 0; row < out.rows; row++ {
		for col := 0; col < out.cols; col++ {
			this := out.At(row, col)
			sur := Surrounding(out, row, col, this, EdgeVoid)
			if sur.Num+sur.Voids() != 4 || sur.Voids() == 4 {
				continue
			}
			for _, d := range Directions {
				s := sur.Slot(d)
				if !s.Void && s.Value != this {
					out.Set(row, col, s.Value)
					break
				}
			}
		}
	}
	return out
}

// Isolated reports whether (row, col) differs from every in-grid neighbour
// and has at least one. It is the predicate CleanUp removes.
func Isolated(g *Grid, row, col int) bool {
	sur := Surrounding(g, row, col, g.At(row, col), EdgeVoid)
	return sur.Voids() < 4 && sur.Num+sur.Voids() == 4
}
