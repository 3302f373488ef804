package classify

import (
	"sort"

	"github.com/ctessum/geom"
)

// cross returns the cross product of vectors OA and OB. Positive means
// a counter-clockwise turn from OA to OB, negative clockwise, zero
// collinear.
func cross(o, a, b geom.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ConvexHull computes the convex hull of a point set with Andrew's
// monotone chain. Hull vertices come back in CCW order with collinear
// boundary points dropped. Fewer than three unique points yield the
// deduplicated points themselves, sorted: a single point, or the two
// endpoints of a collinear set.
func ConvexHull(points []geom.Point) []geom.Point {
	unique := make(map[geom.Point]struct{}, len(points))
	sorted := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if _, seen := unique[p]; !seen {
			unique[p] = struct{}{}
			sorted = append(sorted, p)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	if len(sorted) < 3 {
		return sorted
	}

	lower := make([]geom.Point, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]geom.Point, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain's last point is the other chain's first.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// PointInConvexHull reports whether a point lies inside or on the
// boundary of a CCW convex hull. Hulls with fewer than three vertices
// contain nothing.
func PointInConvexHull(point geom.Point, hull []geom.Point) bool {
	n := len(hull)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if cross(hull[i], hull[(i+1)%n], point) < 0 {
			return false
		}
	}
	return true
}
