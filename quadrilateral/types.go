package quadrilateral

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polysnap/core"
	"github.com/katalvlaran/polysnap/rectangle"
)

// Subtype selects which quadrilateral family Canonicalize reshapes
// toward.
type Subtype int

const (
	// SubtypeNone performs no reshaping: deduplicate, order CCW, realign.
	SubtypeNone Subtype = iota
	// SubtypeRectangle fits a best-fit rectangle via package rectangle.
	SubtypeRectangle
	// SubtypeSquare is the rectangle fit with equal sides enforced.
	SubtypeSquare
	// SubtypeParallelogram keeps three vertices and derives the fourth.
	SubtypeParallelogram
	// SubtypeRhombus rebuilds four equal sides around the centroid.
	SubtypeRhombus
	// SubtypeKite mirrors two wing vertices across a symmetry axis.
	SubtypeKite
	// SubtypeTrapezoid forces one pair of parallel sides.
	SubtypeTrapezoid
	// SubtypeIsoscelesTrapezoid is a trapezoid with equal legs.
	SubtypeIsoscelesTrapezoid
	// SubtypeRightTrapezoid is a trapezoid with one perpendicular leg.
	SubtypeRightTrapezoid
)

// String returns the wire name of the subtype.
func (s Subtype) String() string {
	switch s {
	case SubtypeNone:
		return "none"
	case SubtypeRectangle:
		return "rectangle"
	case SubtypeSquare:
		return "square"
	case SubtypeParallelogram:
		return "parallelogram"
	case SubtypeRhombus:
		return "rhombus"
	case SubtypeKite:
		return "kite"
	case SubtypeTrapezoid:
		return "trapezoid"
	case SubtypeIsoscelesTrapezoid:
		return "isosceles_trapezoid"
	case SubtypeRightTrapezoid:
		return "right_trapezoid"
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
	case "rectangle":
		return SubtypeRectangle, nil
	case "square":
		return SubtypeSquare, nil
	case "parallelogram":
		return SubtypeParallelogram, nil
	case "rhombus":
		return SubtypeRhombus, nil
	case "kite":
		return SubtypeKite, nil
	case "trapezoid":
		return SubtypeTrapezoid, nil
	case "isosceles_trapezoid":
		return SubtypeIsoscelesTrapezoid, nil
	case "right_trapezoid":
		return SubtypeRightTrapezoid, nil
	default:
		return SubtypeNone, fmt.Errorf("quadrilateral: subtype %q: %w", value, core.ErrUnsupportedSubtype)
	}
}

// Options configure Canonicalize.
type Options struct {
	// Subtype selects the target quadrilateral family. SubtypeNone keeps
	// the input shape and only normalizes ordering.
	Subtype Subtype
	// Mode applies to SubtypeRectangle and SubtypeSquare only and is
	// forwarded to the rectangle fit.
	Mode rectangle.ConstructionMode
	// Tolerance governs duplicate detection, degeneracy checks and the
	// collapsed-dimension fallbacks. Non-positive values fall back to
	// core.DefaultTolerance.
	Tolerance float64
	// EnforceSquare upgrades SubtypeRectangle to equal sides. Implied by
	// SubtypeSquare.
	EnforceSquare bool
}

// DefaultOptions returns the zero-reshaping configuration with the
// shared default tolerance.
func DefaultOptions() Options {
	return Options{
		Subtype:   SubtypeNone,
		Mode:      rectangle.ModeVertices,
		Tolerance: core.DefaultTolerance,
	}
}
