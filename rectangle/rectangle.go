package rectangle

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/polysnap/core"
)

// Epsilons internal to the fitting algorithm. They guard structural
// branches of the math and are deliberately independent from the
// caller's Tolerance, which governs distances.
const (
	// discriminantEps bounds the covariance discriminant below which
	// PCA cannot distinguish a principal axis. Symmetric inputs —
	// squares most of all — collapse the discriminant, so this is a
	// routine branch, not an edge case.
	discriminantEps = 1e-18
	// axisEps bounds near-zero vector components when selecting an
	// eigenvector or a diagonal direction.
	axisEps = 1e-12
	// sharedCoordRelTol is the relative tolerance for the diagonal-mode
	// shared-coordinate check.
	sharedCoordRelTol = 1e-9
)

// Canonicalize — best-fit rectangle reconstruction
//
// Description:
//
//	Converts loosely specified corner points into the four corners of an
//	exact rectangle. ModeDiagonal interprets two points as opposite
//	corners of an axis-aligned rectangle. ModeVertices fits an oriented
//	rectangle to four approximate corners and anchors its diagonal
//	exactly on the caller's intended diagonal pair.
//
// Algorithm Outline (ModeVertices):
//  1. Convert and deduplicate to exactly 4 distinct points.
//  2. Take input[0] and input[2] as the intended diagonal anchors and
//     reorder the distinct points so their nearest matches come first.
//  3. Compute the centroid and the 2×2 covariance of offsets from it.
//  4. Solve the principal axis in closed form:
//     λ₁ = (a + c + √((a−c)² + 4b²)) / 2, eigenvector (λ₁−c, b);
//     fall back to a coordinate axis when b is negligible and to the
//     identity basis when the discriminant itself collapses.
//  5. Re-align the basis to the direction from the anchor-prioritized
//     vertex 0 to vertex 2 (PCA sign/rotation is ambiguous; the
//     caller's vertex ordering is not). With both anchors leading the
//     prioritized list, vertex 2 is the first non-anchor corner, so
//     for a well-formed rectangle this is a side direction and the
//     projection bounding box recovers the rectangle exactly.
//  6. Project all points onto the basis and take the bounding box;
//     optionally average width/height into a square.
//  7. Rebuild world-space corners, then re-synthesize the rectangle so
//     its diagonal passes exactly through the anchors, trying both
//     perpendicular orientations and keeping the one with the smaller
//     total distance from the original input points.
//
// Complexity: O(n) time, O(n) memory, n = len(vertices) (constant in
// practice: n is 2 or 4).
//
// Errors:
//   - core.ErrInvalidPoint — a vertex cannot be interpreted as (x, y).
//   - core.ErrWrongVertexCount — distinct vertices ≠ 4 (≠ 2 in diagonal mode).
//   - core.ErrDegenerateInput — collapsed diagonal or zero-extent fit.
//   - core.ErrUnsupportedConstructionMode — unrecognized Options.Mode.
func Canonicalize(vertices []any, opts Options) ([4]geom.Point, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = core.DefaultTolerance
	}

	switch opts.Mode {
	case ModeDiagonal:
		return fromDiagonal(vertices)
	case ModeVertices:
		return fromVertices(vertices, tol, opts.EnforceSquare)
	default:
		return [4]geom.Point{}, fmt.Errorf("rectangle: mode %v: %w", opts.Mode, core.ErrUnsupportedConstructionMode)
	}
}

// fromDiagonal builds an axis-aligned rectangle from two opposite
// corners. The corners must not share an x- or y-coordinate, or the
// width/height would collapse to zero.
func fromDiagonal(vertices []any) ([4]geom.Point, error) {
	if len(vertices) != 2 {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: diagonal mode requires exactly 2 opposite corners, got %d: %w",
			len(vertices), core.ErrWrongVertexCount)
	}
	p1, err := core.ToPoint(vertices[0])
	if err != nil {
		return [4]geom.Point{}, fmt.Errorf("rectangle: %w", err)
	}
	p3, err := core.ToPoint(vertices[1])
	if err != nil {
		return [4]geom.Point{}, fmt.Errorf("rectangle: %w", err)
	}
	if scalar.EqualWithinRel(p1.X, p3.X, sharedCoordRelTol) ||
		scalar.EqualWithinRel(p1.Y, p3.Y, sharedCoordRelTol) {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: diagonal corners must not share an x or y coordinate: %w",
			core.ErrDegenerateInput)
	}

	// Fixed winding derived directly from the two corners: the caller's
	// first corner stays vertex 0 and its partner becomes vertex 2.
	return [4]geom.Point{
		{X: p1.X, Y: p1.Y},
		{X: p3.X, Y: p1.Y},
		{X: p3.X, Y: p3.Y},
		{X: p1.X, Y: p3.Y},
	}, nil
}

// fromVertices fits a rectangle to four approximate corners via PCA and
// re-synthesizes it against the caller's diagonal anchors.
func fromVertices(vertices []any, tol float64, enforceSquare bool) ([4]geom.Point, error) {
	points, err := core.ToPoints(vertices)
	if err != nil {
		return [4]geom.Point{}, fmt.Errorf("rectangle: %w", err)
	}
	if len(points) < 4 {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: vertices mode requires at least 4 points, got %d: %w",
			len(points), core.ErrWrongVertexCount)
	}

	// Stage 1: deduplicate to exactly four distinct corners.
	distinct := core.Dedup(points, tol)
	if len(distinct) != 4 {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: need exactly 4 distinct vertices, got %d: %w",
			len(distinct), core.ErrWrongVertexCount)
	}

	// Stage 2: anchor extraction and prioritization. The caller's first
	// point and the point at input index 2 are the intended diagonal
	// pair; their nearest distinct matches come first so every later
	// step stays anchored to user intent even after dedup reshuffling.
	primary, opposite := points[0], points[2]
	ordered := prioritizeAnchors(distinct, primary, opposite, tol)

	// Stage 3: centroid + covariance of offsets.
	centroid := core.Centroid(ordered)
	u, v, err := principalAxes(ordered, centroid)
	if err != nil {
		return [4]geom.Point{}, err
	}

	// Stage 4: re-align the basis to the prioritized vertex 0→2
	// direction.
	u, v = alignAxesToOrdering(u, v, ordered)

	// Stage 5: bounding box in basis coordinates.
	minA, maxA := math.Inf(1), math.Inf(-1)
	minB, maxB := math.Inf(1), math.Inf(-1)
	for _, p := range ordered {
		dx, dy := p.X-centroid.X, p.Y-centroid.Y
		alpha := dx*u.X + dy*u.Y
		beta := dx*v.X + dy*v.Y
		minA, maxA = math.Min(minA, alpha), math.Max(maxA, alpha)
		minB, maxB = math.Min(minB, beta), math.Max(maxB, beta)
	}
	width, height := maxA-minA, maxB-minB
	if width <= 0 || height <= 0 {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: vertices collapse to a line: %w", core.ErrDegenerateInput)
	}

	// Stage 6: optional square enforcement — same center, same
	// orientation, side = mean of width and height.
	if enforceSquare {
		halfSide := (width + height) / 4.0
		midA, midB := (minA+maxA)/2.0, (minB+maxB)/2.0
		minA, maxA = midA-halfSide, midA+halfSide
		minB, maxB = midB-halfSide, midB+halfSide
	}

	// Stage 7: rebuild world-space corners from the bounds.
	var fitted [4]geom.Point
	for i, ab := range [4][2]float64{{minA, minB}, {maxA, minB}, {maxA, maxB}, {minA, maxB}} {
		alpha, beta := ab[0], ab[1]
		fitted[i] = geom.Point{
			X: centroid.X + alpha*u.X + beta*v.X,
			Y: centroid.Y + alpha*u.Y + beta*v.Y,
		}
	}

	// Stage 8: anchor re-synthesis with two-candidate residual scoring.
	return synthesize(fitted, primary, opposite, tol, points)
}

// prioritizeAnchors reorders the four distinct points so the nearest
// matches to the primary and opposite anchors come first, keeping the
// remaining two in their original relative order. When the primary
// anchor itself was removed by deduplication the distinct points are
// returned untouched.
func prioritizeAnchors(distinct []geom.Point, primary, opposite geom.Point, tol float64) []geom.Point {
	if !core.ContainsPoint(distinct, primary, tol) {
		return distinct
	}

	ordered := make([]geom.Point, 0, len(distinct))
	for _, anchor := range []geom.Point{primary, opposite} {
		nearest, ok := core.NearestPoint(distinct, anchor)
		if ok && !containsExact(ordered, nearest) {
			ordered = append(ordered, nearest)
		}
	}
	for _, p := range distinct {
		if !containsExact(ordered, p) {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// containsExact reports exact coordinate membership; the candidates here
// are copies of distinct slice elements, so == is well defined.
func containsExact(points []geom.Point, candidate geom.Point) bool {
	for _, p := range points {
		if p == candidate {
			return true
		}
	}
	return false
}

// principalAxes solves the principal axis of the 2×2 covariance matrix
// of offsets from the centroid in closed form and returns the
// orthonormal basis (u = principal axis, v = its CCW perpendicular).
//
// The dominant eigenvalue is λ₁ = (a + c + √disc)/2 with
// disc = (a−c)² + 4b². When disc ≤ discriminantEps the point cloud is
// rotationally symmetric about the centroid (squares trigger this
// constantly) and no principal direction exists; the identity basis is
// returned and the later diagonal re-alignment supplies the
// orientation. When |b| ≤ axisEps the covariance is already diagonal
// and the dominant coordinate axis is the eigenvector.
func principalAxes(points []geom.Point, centroid geom.Point) (u, v geom.Point, err error) {
	var a, b, c float64
	for _, p := range points {
		dx, dy := p.X-centroid.X, p.Y-centroid.Y
		a += dx * dx
		b += dx * dy
		c += dy * dy
	}
	n := float64(len(points))
	a, b, c = a/n, b/n, c/n

	disc := (a-c)*(a-c) + 4.0*b*b
	if disc <= discriminantEps {
		return geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1}, nil
	}

	lambda1 := (a + c + math.Sqrt(disc)) / 2.0
	var ex, ey float64
	switch {
	case math.Abs(b) > axisEps:
		ex, ey = lambda1-c, b
	case a >= c:
		ex, ey = 1, 0
	default:
		ex, ey = 0, 1
	}
	norm := math.Hypot(ex, ey)
	if norm == 0 {
		return geom.Point{}, geom.Point{}, fmt.Errorf(
			"rectangle: degenerate eigenvector: %w", core.ErrDegenerateInput)
	}
	u = geom.Point{X: ex / norm, Y: ey / norm}
	v = geom.Point{X: -u.Y, Y: u.X}
	return u, v, nil
}

// alignAxesToOrdering replaces the PCA basis with one oriented along
// the direction between the anchor-prioritized vertices 0 and 2. PCA is
// ambiguous up to sign and 90° rotation; the caller's vertex ordering
// is not, so it wins whenever the direction has measurable length.
// Because the anchors occupy the first two prioritized slots, vertex 2
// is the first non-anchor corner and the direction is a rectangle side
// for well-formed input, which makes exact rectangles a fixed point of
// the whole pipeline.
func alignAxesToOrdering(u, v geom.Point, ordered []geom.Point) (geom.Point, geom.Point) {
	if len(ordered) < 3 {
		return u, v
	}
	dx := ordered[2].X - ordered[0].X
	dy := ordered[2].Y - ordered[0].Y
	if math.Abs(dx)+math.Abs(dy) <= axisEps {
		return u, v
	}
	angle := math.Atan2(dy, dx)
	sin, cos := math.Sincos(angle)
	return geom.Point{X: cos, Y: sin}, geom.Point{X: -sin, Y: cos}
}

// synthesize re-expresses the PCA-fitted rectangle so that its diagonal
// exactly matches the caller's anchor pair. The fitted corners are
// projected onto the fitted diagonal basis, then rebuilt scaled and
// rotated into the actual anchor basis. The perpendicular direction's
// sign is ambiguous, so both candidate rectangles are built and scored
// by total distance from every original input point to its nearest
// corner; the lower-residual candidate wins (ties keep the unflipped
// perpendicular).
func synthesize(fitted [4]geom.Point, primary, opposite geom.Point, tol float64, source []geom.Point) ([4]geom.Point, error) {
	// Rotate the fitted corners so the one closest to the primary
	// anchor leads.
	start := core.NearestIndex(fitted[:], primary)
	var corners [4]geom.Point
	for i := 0; i < 4; i++ {
		corners[i] = fitted[(start+i)%4]
	}
	aBest, bBest, cBest, dBest := corners[0], corners[1], corners[2], corners[3]

	// Fitted diagonal basis.
	diagBest := geom.Point{X: cBest.X - aBest.X, Y: cBest.Y - aBest.Y}
	diagLenBest := math.Hypot(diagBest.X, diagBest.Y)
	if diagLenBest <= tol {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: fitted diagonal collapsed: %w", core.ErrDegenerateInput)
	}
	uBest := geom.Point{X: diagBest.X / diagLenBest, Y: diagBest.Y / diagLenBest}
	vBest := geom.Point{X: -uBest.Y, Y: uBest.X}

	// Orient the fitted perpendicular toward corner B so the two
	// off-diagonal projections land on predictable sides.
	bOff := geom.Point{X: bBest.X - aBest.X, Y: bBest.Y - aBest.Y}
	if bOff.X*vBest.X+bOff.Y*vBest.Y < 0 {
		vBest = geom.Point{X: -vBest.X, Y: -vBest.Y}
	}
	dOff := geom.Point{X: dBest.X - aBest.X, Y: dBest.Y - aBest.Y}

	projBU := bOff.X*uBest.X + bOff.Y*uBest.Y
	projBV := bOff.X*vBest.X + bOff.Y*vBest.Y
	projDU := dOff.X*uBest.X + dOff.Y*uBest.Y
	projDV := dOff.X*vBest.X + dOff.Y*vBest.Y

	// Actual anchor basis.
	diagActual := geom.Point{X: opposite.X - primary.X, Y: opposite.Y - primary.Y}
	diagLenActual := math.Hypot(diagActual.X, diagActual.Y)
	if diagLenActual <= tol {
		return [4]geom.Point{}, fmt.Errorf(
			"rectangle: diagonal anchors collapse to one location: %w", core.ErrDegenerateInput)
	}
	uActual := geom.Point{X: diagActual.X / diagLenActual, Y: diagActual.Y / diagLenActual}
	vBase := geom.Point{X: -uActual.Y, Y: uActual.X}

	scale := diagLenActual / diagLenBest

	var best [4]geom.Point
	bestErr := math.Inf(1)
	for _, orientation := range [2]float64{1, -1} {
		vActual := geom.Point{X: vBase.X * orientation, Y: vBase.Y * orientation}
		bCorner := geom.Point{
			X: primary.X + uActual.X*(projBU*scale) + vActual.X*(projBV*scale),
			Y: primary.Y + uActual.Y*(projBU*scale) + vActual.Y*(projBV*scale),
		}
		dCorner := geom.Point{
			X: primary.X + uActual.X*(projDU*scale) + vActual.X*(projDV*scale),
			Y: primary.Y + uActual.Y*(projDU*scale) + vActual.Y*(projDV*scale),
		}
		candidate := [4]geom.Point{primary, bCorner, opposite, dCorner}
		if residual := fitError(candidate, source); residual < bestErr {
			bestErr = residual
			best = candidate
		}
	}
	return best, nil
}

// fitError scores a candidate rectangle by the total distance from each
// source point to its nearest rectangle corner.
func fitError(rect [4]geom.Point, source []geom.Point) float64 {
	var total float64
	for _, s := range source {
		best := math.Inf(1)
		for _, r := range rect {
			if d := core.Distance(s, r); d < best {
				best = d
			}
		}
		total += best
	}
	return total
}
