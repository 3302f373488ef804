package rectangle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polysnap/core"
)

// ConstructionMode selects how input points describe the rectangle.
type ConstructionMode int

const (
	// ModeVertices fits a rectangle to at least four approximate
	// corner points via PCA. This is the default mode.
	ModeVertices ConstructionMode = iota
	// ModeDiagonal builds an axis-aligned rectangle from exactly two
	// opposite corner points.
	ModeDiagonal
)

// String returns the wire name of the mode ("vertices" or "diagonal").
func (m ConstructionMode) String() string {
	switch m {
	case ModeVertices:
		return "vertices"
	case ModeDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("ConstructionMode(%d)", int(m))
	}
}

// ParseConstructionMode normalizes a string mode value. Matching is
// case-insensitive and tolerant of surrounding whitespace; the empty
// string means ModeVertices. Unrecognized values fail with
// core.ErrUnsupportedConstructionMode.
func ParseConstructionMode(s string) (ConstructionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertices":
		return ModeVertices, nil
	case "diagonal":
		return ModeDiagonal, nil
	default:
		return ModeVertices, fmt.Errorf("%q (expected one of: diagonal, vertices): %w",
			s, core.ErrUnsupportedConstructionMode)
	}
}

// Options configures a single canonicalization call.
type Options struct {
	// Mode selects diagonal or vertices construction.
	Mode ConstructionMode
	// Tolerance governs deduplication distance and degeneracy checks.
	// Non-positive values fall back to core.DefaultTolerance.
	Tolerance float64
	// EnforceSquare replaces the fitted width and height with their
	// average, producing a square with the same center and orientation.
	EnforceSquare bool
}

// DefaultOptions returns Options with ModeVertices, the default
// tolerance, and no square enforcement.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeVertices,
		Tolerance: core.DefaultTolerance,
	}
}
