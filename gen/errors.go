package gen

import (
	"errors"
	"fmt"
)

// ErrNeedRand indicates a generator was called without a random source.
var ErrNeedRand = errors.New("gen: rng is required")

// ErrBadSize indicates a non-positive grid dimension.
var ErrBadSize = errors.New("gen: invalid grid size")

// ErrNoCodes indicates an empty list of candidate cell codes.
var ErrNoCodes = errors.New("gen: no cell codes to choose from")

// ErrVoidCode indicates that grid.Void was listed as a code to place; a
// placed Void cell would be indistinguishable from an empty one.
var ErrVoidCode = errors.New("gen: placed code must not be Void")

// ErrBadRoomSize indicates MinRoomSize > MaxRoomSize or a negative size.
var ErrBadRoomSize = errors.New("gen: invalid room size range")

// ErrUnknownStyle indicates an unknown connection or room style.
var ErrUnknownStyle = errors.New("gen: unknown style")

// ErrTooFewNodes indicates fewer than two nodes exist, so nothing can be
// connected.
var ErrTooFewNodes = errors.New("gen: at least two nodes are required")

const (
	methodGrowth = "Growth"
	methodNodes  = "Nodes"
	methodLine   = "Line"
)

// wrapf adds the generator name and a detail to a sentinel, keeping it
// visible to errors.Is.
func wrapf(method, detail string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}
