package core

import "errors"

// DefaultTolerance is the distance/degeneracy threshold applied when a
// caller does not supply a positive tolerance of its own. It governs
// deduplication distance, degeneracy checks, and constraint
// satisfaction uniformly within one call.
const DefaultTolerance = 1e-6

// Sentinel errors shared by every canonicalization engine. Engines wrap
// them with fmt.Errorf("...: %w", Err...) for context; callers match
// with errors.Is.
var (
	// ErrInvalidPoint indicates a point-like input could not be
	// interpreted as an (x, y) pair: wrong arity, missing keys, or an
	// unsupported representation.
	ErrInvalidPoint = errors.New("polysnap: point-like value cannot be interpreted as (x, y)")

	// ErrWrongVertexCount indicates the deduplicated distinct vertices
	// do not match the count the requested shape needs (3 or 4, or
	// exactly 2 for diagonal rectangle construction).
	ErrWrongVertexCount = errors.New("polysnap: wrong number of distinct vertices")

	// ErrUnsupportedSubtype indicates an unrecognized (or
	// non-canonicalizable) shape subtype value.
	ErrUnsupportedSubtype = errors.New("polysnap: unsupported subtype")

	// ErrUnsupportedConstructionMode indicates an unrecognized
	// rectangle construction mode value.
	ErrUnsupportedConstructionMode = errors.New("polysnap: unsupported construction mode")

	// ErrDegenerateInput indicates collinear or zero-area input, a
	// collapsed diagonal, or sides/legs too short to satisfy the
	// requested subtype's geometry within tolerance.
	ErrDegenerateInput = errors.New("polysnap: degenerate input geometry")
)
