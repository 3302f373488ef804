package classify

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/core"
)

const (
	// epsilon is the base relative tolerance for metric comparisons.
	epsilon = 1e-9
	// minAbsoluteTol floors the comparison tolerance for small shapes.
	minAbsoluteTol = 1e-6
	// rightAngleTol is the degree tolerance for right-angle detection.
	rightAngleTol = 1e-3
	// regularAngleTol is the degree tolerance for regularity checks.
	regularAngleTol = 1e-3
)

// TriangleFlags labels a triangle. Equilateral implies Isosceles;
// Scalene excludes both. Right is independent of the side flags.
type TriangleFlags struct {
	Equilateral bool
	Isosceles   bool
	Scalene     bool
	Right       bool
}

// QuadrilateralFlags labels a quadrilateral. A square sets Square,
// Rectangle and Rhombus together; Irregular means none of the three.
type QuadrilateralFlags struct {
	Square    bool
	Rectangle bool
	Rhombus   bool
	Irregular bool
}

// PolygonFlags labels a polygon of any side count by regularity.
type PolygonFlags struct {
	Regular   bool
	Irregular bool
}

// SideLengths returns the perimeter edge lengths of a polygon, one per
// vertex, edge i running from vertex i to vertex i+1 (wrapping).
func SideLengths(points []geom.Point) ([]float64, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf(
			"classify: polygon needs at least 3 vertices, got %d: %w",
			len(points), core.ErrWrongVertexCount)
	}
	lengths := make([]float64, len(points))
	for i, p := range points {
		lengths[i] = core.Distance(p, points[(i+1)%len(points)])
	}
	return lengths, nil
}

// InternalAngles returns the unsigned interior angle at each vertex in
// degrees, computed from the two incident edges. The result does not
// depend on winding direction. Overlapping adjacent vertices are
// rejected because the angle there is undefined.
func InternalAngles(points []geom.Point) ([]float64, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf(
			"classify: polygon needs at least 3 vertices, got %d: %w",
			n, core.ErrWrongVertexCount)
	}
	angles := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		curr := points[i]
		next := points[(i+1)%n]

		v1 := geom.Point{X: prev.X - curr.X, Y: prev.Y - curr.Y}
		v2 := geom.Point{X: next.X - curr.X, Y: next.Y - curr.Y}
		if math.Hypot(v1.X, v1.Y) == 0 || math.Hypot(v2.X, v2.Y) == 0 {
			return nil, fmt.Errorf(
				"classify: overlapping vertices at index %d: %w", i, core.ErrDegenerateInput)
		}

		dot := v1.X*v2.X + v1.Y*v2.Y
		cross := v1.X*v2.Y - v1.Y*v2.X
		angles[i] = math.Atan2(math.Abs(cross), dot) * 180.0 / math.Pi
	}
	return angles, nil
}

// TriangleTypeFlags classifies a triangle by side equality and the
// presence of a right angle.
func TriangleTypeFlags(points []geom.Point) (TriangleFlags, error) {
	if len(points) != 3 {
		return TriangleFlags{}, fmt.Errorf(
			"classify: triangle needs exactly 3 vertices, got %d: %w",
			len(points), core.ErrWrongVertexCount)
	}
	lengths, err := SideLengths(points)
	if err != nil {
		return TriangleFlags{}, err
	}
	angles, err := InternalAngles(points)
	if err != nil {
		return TriangleFlags{}, err
	}

	equilateral := allClose(lengths, 0)
	hasPair := hasEqualSidePair(lengths)
	return TriangleFlags{
		Equilateral: equilateral,
		Isosceles:   equilateral || hasPair,
		Scalene:     !hasPair,
		Right:       hasRightAngle(angles),
	}, nil
}

// QuadrilateralTypeFlags classifies a quadrilateral. Squares satisfy
// the rectangle and rhombus predicates too; Irregular is the complement
// of all three.
func QuadrilateralTypeFlags(points []geom.Point) (QuadrilateralFlags, error) {
	if len(points) != 4 {
		return QuadrilateralFlags{}, fmt.Errorf(
			"classify: quadrilateral needs exactly 4 vertices, got %d: %w",
			len(points), core.ErrWrongVertexCount)
	}
	lengths, err := SideLengths(points)
	if err != nil {
		return QuadrilateralFlags{}, err
	}
	angles, err := InternalAngles(points)
	if err != nil {
		return QuadrilateralFlags{}, err
	}

	allSidesEqual := allClose(lengths, 0)
	oppositeSidesEqual := isClose(lengths[0], lengths[2]) && isClose(lengths[1], lengths[3])
	rightAngles := true
	for _, angle := range angles {
		if !isClose(angle, 90.0) {
			rightAngles = false
			break
		}
	}

	square := allSidesEqual && rightAngles
	rect := rightAngles && oppositeSidesEqual
	rhombus := allSidesEqual
	return QuadrilateralFlags{
		Square:    square,
		Rectangle: rect,
		Rhombus:   rhombus,
		Irregular: !(square || rect || rhombus),
	}, nil
}

// PolygonRegularity reports whether a polygon of any side count has all
// sides and all interior angles equal.
func PolygonRegularity(points []geom.Point) (PolygonFlags, error) {
	lengths, err := SideLengths(points)
	if err != nil {
		return PolygonFlags{}, err
	}
	angles, err := InternalAngles(points)
	if err != nil {
		return PolygonFlags{}, err
	}
	regular := allClose(lengths, 0) && allClose(angles, regularAngleTol)
	return PolygonFlags{Regular: regular, Irregular: !regular}, nil
}

// IsEquilateralTriangle reports whether the three points form an
// equilateral triangle.
func IsEquilateralTriangle(points []geom.Point) (bool, error) {
	flags, err := TriangleTypeFlags(points)
	return flags.Equilateral, err
}

// IsIsoscelesTriangle reports whether at least two sides are equal.
func IsIsoscelesTriangle(points []geom.Point) (bool, error) {
	flags, err := TriangleTypeFlags(points)
	return flags.Isosceles, err
}

// IsScaleneTriangle reports whether no two sides are equal.
func IsScaleneTriangle(points []geom.Point) (bool, error) {
	flags, err := TriangleTypeFlags(points)
	return flags.Scalene, err
}

// IsRightTriangle reports whether one interior angle is 90°.
func IsRightTriangle(points []geom.Point) (bool, error) {
	flags, err := TriangleTypeFlags(points)
	return flags.Right, err
}

// IsSquare reports equal sides and four right angles.
func IsSquare(points []geom.Point) (bool, error) {
	flags, err := QuadrilateralTypeFlags(points)
	return flags.Square, err
}

// IsRectangle reports four right angles with opposite sides equal.
func IsRectangle(points []geom.Point) (bool, error) {
	flags, err := QuadrilateralTypeFlags(points)
	return flags.Rectangle, err
}

// IsRhombus reports four equal sides.
func IsRhombus(points []geom.Point) (bool, error) {
	flags, err := QuadrilateralTypeFlags(points)
	return flags.Rhombus, err
}

// comparisonTolerance scales the base epsilon by the magnitude of the
// compared values so large shapes classify like small ones, floored at
// minAbsoluteTol.
func comparisonTolerance(reference float64) float64 {
	scale := math.Max(math.Abs(reference), 1.0)
	return math.Max(epsilon*scale*10.0, minAbsoluteTol)
}

// isClose compares two metrics under the scale-relative tolerance.
func isClose(a, b float64) bool {
	tol := comparisonTolerance(math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol
}

// isCloseTol compares two metrics under an explicit tolerance.
func isCloseTol(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// allClose reports whether every value matches the first. A positive
// override replaces the scale-relative tolerance.
func allClose(values []float64, override float64) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values[1:] {
		if override > 0 {
			if !isCloseTol(values[0], v, override) {
				return false
			}
		} else if !isClose(values[0], v) {
			return false
		}
	}
	return true
}

// hasEqualSidePair reports whether any two side lengths match.
func hasEqualSidePair(lengths []float64) bool {
	for i, a := range lengths {
		for _, b := range lengths[i+1:] {
			if isClose(a, b) {
				return true
			}
		}
	}
	return false
}

// hasRightAngle reports whether any angle is within rightAngleTol of 90°.
func hasRightAngle(angles []float64) bool {
	for _, angle := range angles {
		if isCloseTol(angle, 90.0, rightAngleTol) {
			return true
		}
	}
	return false
}
