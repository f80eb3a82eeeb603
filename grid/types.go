package grid

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("grid: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("grid: no path between specified components")
	// ErrNotInvertible indicates two keys of a substitution map share a value.
	ErrNotInvertible = errors.New("grid: substitution map is not one-to-one")
)

// Code is a cell-type code. What a code means is decided by an Alphabet.
type Code int

// Void is the conventional empty code and the default "ignore" value.
const Void Code = 0

// Kind is the closed set of roles a cell code can play.
type Kind uint8

const (
	// KindOther is any code the alphabet does not know about.
	KindOther Kind = iota
	// KindEmpty marks void / wall / unused cells.
	KindEmpty
	// KindHall marks corridor cells carved between nodes.
	KindHall
	// KindNode marks node / room cells.
	KindNode
	// KindCeiling marks cells that only receive ceiling pieces on placement.
	KindCeiling
)

var kindNames = [...]string{"other", "empty", "hall", "node", "ceiling"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Cell is a grid coordinate together with the code stored there.
type Cell struct {
	Row, Col int
	Code     Code
}

// Alphabet maps cell codes to kinds. A code has exactly one kind; defining
// it again moves it. The zero value is not usable, call NewAlphabet.
type Alphabet struct {
	kinds map[Code]Kind
}

// NewAlphabet returns an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{kinds: make(map[Code]Kind)}
}

// DefaultAlphabet returns 0 = empty, 1 = hall, 2 = node.
func DefaultAlphabet() *Alphabet {
	a := NewAlphabet()
	a.Define(KindEmpty, Void)
	a.Define(KindHall, 1)
	a.Define(KindNode, 2)
	return a
}

// Define assigns kind to every code and returns the alphabet for chaining.
func (a *Alphabet) Define(kind Kind, codes ...Code) *Alphabet {
	for _, c := range codes {
		a.kinds[c] = kind
	}
	return a
}

// Kind returns the kind of c, KindOther when c is unknown.
func (a *Alphabet) Kind(c Code) Kind {
	if k, ok := a.kinds[c]; ok {
		return k
	}
	return KindOther
}

// Codes returns every code of the given kind, sorted ascending.
func (a *Alphabet) Codes(kind Kind) []Code {
	var out []Code
	for c, k := range a.kinds {
		if k == kind {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether c is an empty code.
func (a *Alphabet) IsEmpty(c Code) bool { return a.Kind(c) == KindEmpty }

// IsHall reports whether c is a hall code.
func (a *Alphabet) IsHall(c Code) bool { return a.Kind(c) == KindHall }

// IsNode reports whether c is a node code.
func (a *Alphabet) IsNode(c Code) bool { return a.Kind(c) == KindNode }

// IsCeiling reports whether c is a ceiling code.
func (a *Alphabet) IsCeiling(c Code) bool { return a.Kind(c) == KindCeiling }

// Walkable reports whether c is a hall or node code.
func (a *Alphabet) Walkable(c Code) bool {
	k := a.Kind(c)
	return k == KindHall || k == KindNode
}

// NotVoid is the default occupancy predicate: anything but Void.
func NotVoid(c Code) bool { return c != Void }
