package quadrilateral

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/core"
	"github.com/katalvlaran/polysnap/rectangle"
)

// Fallback fractions applied when a drawn dimension collapses below the
// tolerance. Each substitutes a fraction of an intact reference length
// so the construction still yields a recognizable shape.
const (
	// topFraction of the base replaces a collapsed trapezoid top.
	topFraction = 0.6
	// heightFraction of the base replaces a collapsed trapezoid height
	// or right-trapezoid leg.
	heightFraction = 0.5
	// wingFraction of the A–C diagonal replaces collapsed kite wings.
	wingFraction = 0.25
)

// Canonicalize — subtype-aware quadrilateral snapping
//
// Description:
//
//	Converts loosely placed points into an exact quadrilateral of the
//	requested subtype. The result is CCW and rotated so vertex 0 sits
//	nearest the caller's first distinct point, with the caller's winding
//	preserved.
//
// Algorithm Outline:
//  1. SubtypeRectangle and SubtypeSquare delegate to the rectangle fit,
//     which handles its own vertex counts and diagonal anchoring;
//     squares force equal sides.
//  2. Everything else converts and deduplicates to exactly 4 distinct
//     points — SubtypeParallelogram also accepts 3, since its fourth
//     vertex is derived.
//  3. Order CCW around the centroid and reject near-zero area.
//  4. Reshape per subtype (see the package documentation); SubtypeNone
//     skips reshaping entirely.
//  5. Realign the result to the caller's first point and winding.
//
// Complexity: O(1) time and memory beyond input conversion.
//
// Errors:
//   - core.ErrInvalidPoint — a vertex cannot be interpreted as (x, y).
//   - core.ErrWrongVertexCount — wrong number of distinct vertices.
//   - core.ErrDegenerateInput — collapsed area, sides or diagonals.
//   - core.ErrUnsupportedSubtype — an unknown subtype value.
//   - core.ErrUnsupportedConstructionMode — bad Mode for the rectangle path.
func Canonicalize(vertices []any, opts Options) ([4]geom.Point, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = core.DefaultTolerance
	}

	// The rectangle family carries its own construction modes and
	// diagonal-anchor logic.
	if opts.Subtype == SubtypeRectangle || opts.Subtype == SubtypeSquare {
		return rectangle.Canonicalize(vertices, rectangle.Options{
			Mode:          opts.Mode,
			Tolerance:     tol,
			EnforceSquare: opts.EnforceSquare || opts.Subtype == SubtypeSquare,
		})
	}

	points, err := core.ToPoints(vertices)
	if err != nil {
		return [4]geom.Point{}, fmt.Errorf("quadrilateral: %w", err)
	}
	distinct := core.Dedup(points, tol)
	if err := checkVertexCount(opts.Subtype, len(distinct)); err != nil {
		return [4]geom.Point{}, err
	}

	ordered := core.OrderCCW(distinct)
	if math.Abs(core.SignedArea(ordered)) <= tol {
		return [4]geom.Point{}, fmt.Errorf(
			"quadrilateral: vertices collapse to a line: %w", core.ErrDegenerateInput)
	}

	var result []geom.Point
	switch opts.Subtype {
	case SubtypeNone:
		result = ordered
	case SubtypeParallelogram:
		result = parallelogram(ordered)
	case SubtypeRhombus:
		result, err = rhombus(ordered, tol)
	case SubtypeKite:
		result, err = kite(ordered, tol)
	case SubtypeTrapezoid:
		result, err = trapezoid(ordered, tol)
	case SubtypeIsoscelesTrapezoid:
		result, err = isoscelesTrapezoid(ordered, tol)
	case SubtypeRightTrapezoid:
		result, err = rightTrapezoid(ordered, tol)
	default:
		return [4]geom.Point{}, fmt.Errorf(
			"quadrilateral: subtype %v: %w", opts.Subtype, core.ErrUnsupportedSubtype)
	}
	if err != nil {
		return [4]geom.Point{}, err
	}

	aligned := core.AlignToOriginal(result, distinct)
	var out [4]geom.Point
	copy(out[:], aligned)
	return out, nil
}

// checkVertexCount enforces per-subtype distinct-vertex requirements.
// Parallelograms derive their fourth vertex, so three are enough.
func checkVertexCount(subtype Subtype, n int) error {
	if subtype == SubtypeParallelogram {
		if n != 3 && n != 4 {
			return fmt.Errorf(
				"quadrilateral: parallelogram needs 3 or 4 distinct vertices, got %d: %w",
				n, core.ErrWrongVertexCount)
		}
		return nil
	}
	if n != 4 {
		return fmt.Errorf(
			"quadrilateral: need exactly 4 distinct vertices, got %d: %w",
			n, core.ErrWrongVertexCount)
	}
	return nil
}

// parallelogram keeps the first three CCW vertices and derives
// D = A + C − B, which guarantees AB ∥ DC and AD ∥ BC. A fourth drawn
// vertex, if present, only contributed to ordering.
func parallelogram(ordered []geom.Point) []geom.Point {
	a, b, c := ordered[0], ordered[1], ordered[2]
	d := geom.Point{X: a.X + c.X - b.X, Y: a.Y + c.Y - b.Y}
	return core.OrderCCW([]geom.Point{a, b, c, d})
}

// rhombus rebuilds four equal sides around the centroid. Both
// half-diagonals are side·√2/2, one along the first drawn side's
// direction and one perpendicular, which yields a square-angled rhombus
// sized to the mean drawn side.
func rhombus(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	centroid := core.Centroid(ordered)
	a, b := ordered[0], ordered[1]

	side := core.AverageSideLength(ordered)
	if side <= tol {
		return nil, fmt.Errorf("quadrilateral: rhombus sides collapsed: %w", core.ErrDegenerateInput)
	}

	ab := geom.Point{X: b.X - a.X, Y: b.Y - a.Y}
	lenAB := math.Hypot(ab.X, ab.Y)
	if lenAB <= tol {
		return nil, fmt.Errorf(
			"quadrilateral: first two vertices coincide, no rhombus orientation: %w",
			core.ErrDegenerateInput)
	}
	unitAB := geom.Point{X: ab.X / lenAB, Y: ab.Y / lenAB}
	perp := geom.Point{X: -unitAB.Y, Y: unitAB.X}

	halfDiag := side * math.Sqrt2 / 2.0
	raw := []geom.Point{
		{X: centroid.X - unitAB.X*halfDiag, Y: centroid.Y - unitAB.Y*halfDiag},
		{X: centroid.X + perp.X*halfDiag, Y: centroid.Y + perp.Y*halfDiag},
		{X: centroid.X + unitAB.X*halfDiag, Y: centroid.Y + unitAB.Y*halfDiag},
		{X: centroid.X - perp.X*halfDiag, Y: centroid.Y - perp.Y*halfDiag},
	}
	return core.OrderCCW(raw), nil
}

// kite keeps the A–C diagonal as the symmetry axis and mirrors B and D
// across it at their mean perpendicular distance, so AB = AD and
// CB = CD. Collapsed wings fall back to a quarter of the axis length.
func kite(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	a, b, c, d := ordered[0], ordered[1], ordered[2], ordered[3]

	ac := geom.Point{X: c.X - a.X, Y: c.Y - a.Y}
	lenAC := math.Hypot(ac.X, ac.Y)
	if lenAC <= tol {
		return nil, fmt.Errorf(
			"quadrilateral: kite axis collapsed: %w", core.ErrDegenerateInput)
	}
	mid := geom.Point{X: (a.X + c.X) / 2.0, Y: (a.Y + c.Y) / 2.0}
	unitAC := geom.Point{X: ac.X / lenAC, Y: ac.Y / lenAC}
	perp := geom.Point{X: -unitAC.Y, Y: unitAC.X}

	offB := (b.X-mid.X)*perp.X + (b.Y-mid.Y)*perp.Y
	offD := (d.X-mid.X)*perp.X + (d.Y-mid.Y)*perp.Y
	wing := (math.Abs(offB) + math.Abs(offD)) / 2.0
	if wing <= tol {
		wing = lenAC * wingFraction
	}

	// B keeps its side of the axis; D mirrors to the other side.
	signB := 1.0
	if offB < 0 {
		signB = -1.0
	}
	newB := geom.Point{X: mid.X + perp.X*wing*signB, Y: mid.Y + perp.Y*wing*signB}
	newD := geom.Point{X: mid.X - perp.X*wing*signB, Y: mid.Y - perp.Y*wing*signB}

	return core.OrderCCW([]geom.Point{a, newB, c, newD}), nil
}

// trapezoid keeps the base A–B and rebuilds the top parallel to it,
// centered on the drawn top's midpoint at the drawn top's length. A
// collapsed top falls back to 0.6 of the base.
func trapezoid(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	a, b, c, d := ordered[0], ordered[1], ordered[2], ordered[3]

	unitAB, lenAB, err := baseDirection(a, b, tol)
	if err != nil {
		return nil, err
	}

	midCD := geom.Point{X: (c.X + d.X) / 2.0, Y: (c.Y + d.Y) / 2.0}
	lenCD := core.Distance(c, d)
	if lenCD <= tol {
		lenCD = lenAB * topFraction
	}

	newC := geom.Point{X: midCD.X - unitAB.X*lenCD/2.0, Y: midCD.Y - unitAB.Y*lenCD/2.0}
	newD := geom.Point{X: midCD.X + unitAB.X*lenCD/2.0, Y: midCD.Y + unitAB.Y*lenCD/2.0}

	return core.OrderCCW([]geom.Point{a, b, newC, newD}), nil
}

// isoscelesTrapezoid rebuilds the top centered directly over the base's
// midpoint, which makes both legs equal. The height is the drawn
// midpoint separation projected on the base normal; collapsed heights
// fall back to half the base, and tops that collapsed or reach base
// length fall back to 0.6 of the base.
func isoscelesTrapezoid(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	a, b, c, d := ordered[0], ordered[1], ordered[2], ordered[3]

	unitAB, lenAB, err := baseDirection(a, b, tol)
	if err != nil {
		return nil, err
	}
	perp := geom.Point{X: -unitAB.Y, Y: unitAB.X}

	midAB := geom.Point{X: (a.X + b.X) / 2.0, Y: (a.Y + b.Y) / 2.0}
	midCD := geom.Point{X: (c.X + d.X) / 2.0, Y: (c.Y + d.Y) / 2.0}

	height := (midCD.X-midAB.X)*perp.X + (midCD.Y-midAB.Y)*perp.Y
	if math.Abs(height) <= tol {
		height = lenAB * heightFraction
	}

	lenCD := core.Distance(c, d)
	if lenCD <= tol || lenCD >= lenAB {
		lenCD = lenAB * topFraction
	}

	top := geom.Point{X: midAB.X + perp.X*height, Y: midAB.Y + perp.Y*height}
	newC := geom.Point{X: top.X - unitAB.X*lenCD/2.0, Y: top.Y - unitAB.Y*lenCD/2.0}
	newD := geom.Point{X: top.X + unitAB.X*lenCD/2.0, Y: top.Y + unitAB.Y*lenCD/2.0}

	return core.OrderCCW([]geom.Point{a, b, newD, newC}), nil
}

// rightTrapezoid keeps the base A–B and forces the A-side leg
// perpendicular to it at the drawn leg's length, on whichever side of
// the base the drawn D vertex sits. The top runs from the new D
// parallel to the base for the drawn top's projected length.
func rightTrapezoid(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	a, b, c, d := ordered[0], ordered[1], ordered[2], ordered[3]

	unitAB, lenAB, err := baseDirection(a, b, tol)
	if err != nil {
		return nil, err
	}
	perp := geom.Point{X: -unitAB.Y, Y: unitAB.X}

	leg := core.Distance(a, d)
	if leg <= tol {
		leg = lenAB * heightFraction
	}

	// Place the perpendicular leg on the side of the base closest to the
	// drawn D vertex.
	up := geom.Point{X: a.X + perp.X*leg, Y: a.Y + perp.Y*leg}
	down := geom.Point{X: a.X - perp.X*leg, Y: a.Y - perp.Y*leg}
	sign := 1.0
	if core.Distance(up, d) > core.Distance(down, d) {
		sign = -1.0
	}
	newD := geom.Point{X: a.X + perp.X*leg*sign, Y: a.Y + perp.Y*leg*sign}

	projCD := (c.X-d.X)*unitAB.X + (c.Y-d.Y)*unitAB.Y
	if math.Abs(projCD) <= tol {
		projCD = lenAB * topFraction
	}
	newC := geom.Point{X: newD.X + unitAB.X*projCD, Y: newD.Y + unitAB.Y*projCD}

	return core.OrderCCW([]geom.Point{a, b, newC, newD}), nil
}

// baseDirection returns the unit direction and length of the A–B base,
// rejecting collapsed bases.
func baseDirection(a, b geom.Point, tol float64) (geom.Point, float64, error) {
	ab := geom.Point{X: b.X - a.X, Y: b.Y - a.Y}
	lenAB := math.Hypot(ab.X, ab.Y)
	if lenAB <= tol {
		return geom.Point{}, 0, fmt.Errorf(
			"quadrilateral: base vertices coincide: %w", core.ErrDegenerateInput)
	}
	return geom.Point{X: ab.X / lenAB, Y: ab.Y / lenAB}, lenAB, nil
}
