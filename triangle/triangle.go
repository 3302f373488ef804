package triangle

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/core"
)

// anchorEps bounds near-zero anchor vectors and side lengths inside the
// equilateral construction. It is a structural guard, deliberately
// independent of the caller's Tolerance.
const anchorEps = 1e-12

// Canonicalize — subtype-aware triangle snapping
//
// Description:
//
//	Converts three loosely placed points into an exact triangle of the
//	requested subtype. The result is CCW and rotated so vertex 0 sits
//	nearest the caller's first distinct point, with the caller's winding
//	preserved.
//
// Algorithm Outline:
//  1. Convert and deduplicate to exactly 3 distinct points.
//  2. Order CCW around the centroid and reject near-zero area.
//  3. Reshape per subtype (see the package documentation); SubtypeNone
//     skips reshaping entirely.
//  4. Realign the result to the caller's first point and winding.
//
// Complexity: O(1) time and memory beyond input conversion.
//
// Errors:
//   - core.ErrInvalidPoint — a vertex cannot be interpreted as (x, y).
//   - core.ErrWrongVertexCount — distinct vertices ≠ 3.
//   - core.ErrDegenerateInput — collinear points or collapsed sides.
//   - core.ErrUnsupportedSubtype — SubtypeScalene or an unknown value.
func Canonicalize(vertices []any, opts Options) ([3]geom.Point, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = core.DefaultTolerance
	}

	points, err := core.ToPoints(vertices)
	if err != nil {
		return [3]geom.Point{}, fmt.Errorf("triangle: %w", err)
	}
	distinct := core.Dedup(points, tol)
	if len(distinct) != 3 {
		return [3]geom.Point{}, fmt.Errorf(
			"triangle: need exactly 3 distinct vertices, got %d: %w",
			len(distinct), core.ErrWrongVertexCount)
	}

	ordered := core.OrderCCW(distinct)
	if math.Abs(core.SignedArea(ordered)) <= tol {
		return [3]geom.Point{}, fmt.Errorf(
			"triangle: vertices collapse to a line: %w", core.ErrDegenerateInput)
	}

	var result []geom.Point
	switch opts.Subtype {
	case SubtypeNone:
		result = ordered
	case SubtypeEquilateral:
		result, err = equilateral(ordered, distinct)
	case SubtypeIsosceles:
		result, err = isosceles(ordered, tol)
	case SubtypeRight:
		result, err = right(ordered, tol)
	case SubtypeRightIsosceles:
		result, err = rightIsosceles(ordered, tol)
	default:
		return [3]geom.Point{}, fmt.Errorf(
			"triangle: subtype %v has no canonical shape: %w",
			opts.Subtype, core.ErrUnsupportedSubtype)
	}
	if err != nil {
		return [3]geom.Point{}, err
	}

	aligned := core.AlignToOriginal(result, distinct)
	var out [3]geom.Point
	copy(out[:], aligned)
	return out, nil
}

// equilateral rebuilds the triangle around its centroid: three vertices
// 120° apart at radius side/√3, with vertex 0 aimed from the centroid
// toward the caller's first distinct point. The side length is the mean
// of the input side lengths, so the result stays the same size as what
// the caller drew.
func equilateral(ordered, original []geom.Point) ([]geom.Point, error) {
	centroid := core.Centroid(ordered)
	anchor := geom.Point{
		X: original[0].X - centroid.X,
		Y: original[0].Y - centroid.Y,
	}
	if math.Hypot(anchor.X, anchor.Y) <= anchorEps {
		// First point sits on the centroid; aim at the first CCW vertex
		// instead.
		anchor = geom.Point{X: ordered[0].X - centroid.X, Y: ordered[0].Y - centroid.Y}
	}
	orientation := math.Atan2(anchor.Y, anchor.X)

	side := core.AverageSideLength(ordered)
	if side <= anchorEps {
		return nil, fmt.Errorf(
			"triangle: side length too small for an equilateral shape: %w",
			core.ErrDegenerateInput)
	}
	radius := side / math.Sqrt(3.0)

	result := make([]geom.Point, 3)
	for k := 0; k < 3; k++ {
		sin, cos := math.Sincos(orientation + float64(k)*(2.0*math.Pi/3.0))
		result[k] = geom.Point{
			X: centroid.X + radius*cos,
			Y: centroid.Y + radius*sin,
		}
	}
	return result, nil
}

// isosceles keeps the base of the detected apex and rebuilds both legs
// at their mean length, placing the apex on the base's perpendicular
// bisector on the same side it started.
func isosceles(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	apexIdx := isoscelesApex(ordered)
	apex := ordered[apexIdx]
	var baseStart, baseEnd geom.Point
	switch apexIdx {
	case 0:
		baseStart, baseEnd = ordered[1], ordered[2]
	case 1:
		baseStart, baseEnd = ordered[0], ordered[2]
	default:
		baseStart, baseEnd = ordered[0], ordered[1]
	}

	baseVec := geom.Point{X: baseEnd.X - baseStart.X, Y: baseEnd.Y - baseStart.Y}
	baseLen := math.Hypot(baseVec.X, baseVec.Y)
	if baseLen <= tol {
		return nil, fmt.Errorf("triangle: isosceles base collapsed: %w", core.ErrDegenerateInput)
	}

	baseMid := geom.Point{X: (baseStart.X + baseEnd.X) / 2.0, Y: (baseStart.Y + baseEnd.Y) / 2.0}
	legLen := (core.Distance(apex, baseStart) + core.Distance(apex, baseEnd)) / 2.0
	if legLen <= tol {
		return nil, fmt.Errorf("triangle: isosceles legs collapsed: %w", core.ErrDegenerateInput)
	}

	halfBase := baseLen / 2.0
	heightSq := legLen*legLen - halfBase*halfBase
	if heightSq < -tol {
		return nil, fmt.Errorf(
			"triangle: isosceles legs too short to reach over the base: %w",
			core.ErrDegenerateInput)
	}
	height := math.Sqrt(math.Max(heightSq, 0.0))

	unitBase := geom.Point{X: baseVec.X / baseLen, Y: baseVec.Y / baseLen}
	normal := geom.Point{X: -unitBase.Y, Y: unitBase.X}
	// Keep the apex on its original side of the base.
	if normal.X*(apex.X-baseMid.X)+normal.Y*(apex.Y-baseMid.Y) < 0 {
		normal = geom.Point{X: -normal.X, Y: -normal.Y}
	}

	raw := []geom.Point{
		{X: baseMid.X - unitBase.X*halfBase, Y: baseMid.Y - unitBase.Y*halfBase},
		{X: baseMid.X + unitBase.X*halfBase, Y: baseMid.Y + unitBase.Y*halfBase},
		{X: baseMid.X + normal.X*height, Y: baseMid.Y + normal.Y*height},
	}
	return core.OrderCCW(raw), nil
}

// right keeps the corner already closest to 90°, keeps the direction and
// length of its first leg, and rebuilds the second leg perpendicular at
// its original length on its original side.
func right(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	corner := ordered[rightVertex(ordered)]
	legA, legB := rightLegs(ordered, corner)

	v1 := geom.Point{X: legA.X - corner.X, Y: legA.Y - corner.Y}
	v2 := geom.Point{X: legB.X - corner.X, Y: legB.Y - corner.Y}
	len1 := math.Hypot(v1.X, v1.Y)
	len2 := math.Hypot(v2.X, v2.Y)
	if len1 <= tol || len2 <= tol {
		return nil, fmt.Errorf("triangle: right-triangle legs collapsed: %w", core.ErrDegenerateInput)
	}

	u := geom.Point{X: v1.X / len1, Y: v1.Y / len1}
	perp := perpToward(u, v2)

	raw := []geom.Point{
		corner,
		{X: corner.X + u.X*len1, Y: corner.Y + u.Y*len1},
		{X: corner.X + perp.X*len2, Y: corner.Y + perp.Y*len2},
	}
	return core.OrderCCW(raw), nil
}

// rightIsosceles is the right-corner construction with both legs set to
// their mean length.
func rightIsosceles(ordered []geom.Point, tol float64) ([]geom.Point, error) {
	corner := ordered[rightVertex(ordered)]
	legA, legB := rightLegs(ordered, corner)

	v1 := geom.Point{X: legA.X - corner.X, Y: legA.Y - corner.Y}
	v2 := geom.Point{X: legB.X - corner.X, Y: legB.Y - corner.Y}
	len1 := math.Hypot(v1.X, v1.Y)
	len2 := math.Hypot(v2.X, v2.Y)
	legLen := (len1 + len2) / 2.0
	if legLen <= tol {
		return nil, fmt.Errorf("triangle: right-isosceles legs collapsed: %w", core.ErrDegenerateInput)
	}

	var u geom.Point
	if len1 > tol {
		u = geom.Point{X: v1.X / len1, Y: v1.Y / len1}
	} else {
		u = geom.Point{X: v2.X / len2, Y: v2.Y / len2}
	}
	perp := perpToward(u, v2)

	raw := []geom.Point{
		corner,
		{X: corner.X + u.X*legLen, Y: corner.Y + u.Y*legLen},
		{X: corner.X + perp.X*legLen, Y: corner.Y + perp.Y*legLen},
	}
	return core.OrderCCW(raw), nil
}

// isoscelesApex returns the index of the vertex whose two adjacent sides
// differ the least; ties keep the lowest index.
func isoscelesApex(points []geom.Point) int {
	d01 := core.Distance(points[0], points[1])
	d12 := core.Distance(points[1], points[2])
	d20 := core.Distance(points[2], points[0])

	best, bestDiff := 0, math.Abs(d12-d20)
	if diff := math.Abs(d01 - d20); diff < bestDiff {
		best, bestDiff = 1, diff
	}
	if diff := math.Abs(d01 - d12); diff < bestDiff {
		best = 2
	}
	return best
}

// rightVertex returns the index of the corner whose incident edges are
// closest to perpendicular; ties keep the lowest index.
func rightVertex(points []geom.Point) int {
	best := 0
	bestDot := math.Inf(1)
	for i := 0; i < 3; i++ {
		prev := points[(i+2)%3]
		curr := points[i]
		next := points[(i+1)%3]
		dot := math.Abs((prev.X-curr.X)*(next.X-curr.X) + (prev.Y-curr.Y)*(next.Y-curr.Y))
		if dot < bestDot {
			bestDot = dot
			best = i
		}
	}
	return best
}

// rightLegs returns the two non-corner vertices in their CCW order.
func rightLegs(points []geom.Point, corner geom.Point) (geom.Point, geom.Point) {
	legs := make([]geom.Point, 0, 2)
	for _, p := range points {
		if p != corner {
			legs = append(legs, p)
		}
	}
	return legs[0], legs[1]
}

// perpToward returns the unit perpendicular of u oriented toward toward.
func perpToward(u, toward geom.Point) geom.Point {
	perp := geom.Point{X: -u.Y, Y: u.X}
	if perp.X*toward.X+perp.Y*toward.Y < 0 {
		perp = geom.Point{X: -perp.X, Y: -perp.Y}
	}
	return perp
}
