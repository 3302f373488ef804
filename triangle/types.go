package triangle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polysnap/core"
)

// Subtype selects which triangle family Canonicalize reshapes toward.
type Subtype int

const (
	// SubtypeNone performs no reshaping: deduplicate, order CCW, realign.
	SubtypeNone Subtype = iota
	// SubtypeEquilateral rebuilds an equilateral triangle around the centroid.
	SubtypeEquilateral
	// SubtypeIsosceles equalizes the two legs around a detected apex.
	SubtypeIsosceles
	// SubtypeRight forces a 90° corner at the vertex already closest to one.
	SubtypeRight
	// SubtypeRightIsosceles forces a 90° corner with equal legs.
	SubtypeRightIsosceles
	// SubtypeScalene is a recognized classification with no canonical
	// shape; Canonicalize rejects it.
	SubtypeScalene
)

// String returns the wire name of the subtype.
func (s Subtype) String() string {
	switch s {
	case SubtypeNone:
		return "none"
	case SubtypeEquilateral:
		return "equilateral"
	case SubtypeIsosceles:
		return "isosceles"
	case SubtypeRight:
		return "right"
	case SubtypeRightIsosceles:
		return "right_isosceles"
	case SubtypeScalene:
		return "scalene"
	default:
		return fmt.Sprintf("Subtype(%d)", int(s))
	}
}

// ParseSubtype maps a wire name onto a Subtype. Matching is
// case-insensitive, surrounding whitespace is ignored, and hyphens or
// spaces inside the name count as underscores. The empty string means
// SubtypeNone.
func ParseSubtype(value string) (Subtype, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	switch normalized {
	case "", "none":
		return SubtypeNone, nil
	case "equilateral":
		return SubtypeEquilateral, nil
	case "isosceles":
		return SubtypeIsosceles, nil
	case "right":
		return SubtypeRight, nil
	case "right_isosceles":
		return SubtypeRightIsosceles, nil
	case "scalene":
		return SubtypeScalene, nil
	default:
		return SubtypeNone, fmt.Errorf("triangle: subtype %q: %w", value, core.ErrUnsupportedSubtype)
	}
}

// Options configure Canonicalize.
type Options struct {
	// Subtype selects the target triangle family. SubtypeNone keeps the
	// input shape and only normalizes ordering.
	Subtype Subtype
	// Tolerance governs duplicate detection and degeneracy checks.
	// Non-positive values fall back to core.DefaultTolerance.
	Tolerance float64
}

// DefaultOptions returns the zero-reshaping configuration with the
// shared default tolerance.
func DefaultOptions() Options {
	return Options{
		Subtype:   SubtypeNone,
		Tolerance: core.DefaultTolerance,
	}
}
