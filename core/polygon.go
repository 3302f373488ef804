package core

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// Centroid returns the arithmetic mean of the point coordinates.
// The caller guarantees points is non-empty.
func Centroid(points []geom.Point) geom.Point {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(points))
	return geom.Point{X: cx / n, Y: cy / n}
}

// SignedArea returns the shoelace area of the polygon: positive for
// counter-clockwise winding, negative for clockwise. The ctessum/geom
// Polygon.Area is absolute (it normalizes hole winding), so the signed
// variant lives here.
//
// Complexity: O(n).
func SignedArea(points []geom.Point) float64 {
	var area float64
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += p1.X*p2.Y - p2.X*p1.Y
	}
	return area / 2.0
}

// OrderCCW returns the points sorted counter-clockwise around their
// centroid. Vertices are sorted by angle (stable, so coincident angles
// keep input order), then, if the signed area is negative, every vertex
// but the first is reversed to flip the winding while keeping vertex 0
// fixed. For a triangle the flip degenerates to swapping the last two
// vertices.
//
// Complexity: O(n log n).
func OrderCCW(points []geom.Point) []geom.Point {
	c := Centroid(points)
	ordered := make([]geom.Point, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		ai := math.Atan2(ordered[i].Y-c.Y, ordered[i].X-c.X)
		aj := math.Atan2(ordered[j].Y-c.Y, ordered[j].X-c.X)
		return ai < aj
	})
	if SignedArea(ordered) < 0 {
		reverseTail(ordered)
	}
	return ordered
}

// AverageSideLength returns the mean perimeter edge length of the
// closed polygon.
func AverageSideLength(points []geom.Point) float64 {
	n := len(points)
	var total float64
	for i := 0; i < n; i++ {
		total += Distance(points[i], points[(i+1)%n])
	}
	return total / float64(n)
}

// AlignToOriginal re-expresses a reconstructed polygon so it
// corresponds to the caller's input: the result is rotated to start at
// the reconstructed vertex nearest to original[0] (ties: lowest index
// wins), and if the rotated winding disagrees with the original's, every
// vertex but the first is reversed. Applied as the final step of every
// subtype path.
//
// Complexity: O(n).
func AlignToOriginal(vertices, original []geom.Point) []geom.Point {
	aligned := make([]geom.Point, len(vertices))
	copy(aligned, vertices)
	if len(original) == 0 || len(aligned) == 0 {
		return aligned
	}

	start := NearestIndex(aligned, original[0])
	rotate(aligned, start)

	if SignedArea(aligned)*SignedArea(original) < 0 {
		reverseTail(aligned)
	}
	return aligned
}

// rotate shifts points in place so the element at index start becomes
// element 0, preserving cyclic order.
func rotate(points []geom.Point, start int) {
	if start <= 0 {
		return
	}
	rotated := make([]geom.Point, 0, len(points))
	rotated = append(rotated, points[start:]...)
	rotated = append(rotated, points[:start]...)
	copy(points, rotated)
}

// reverseTail reverses points[1:] in place, flipping winding while
// keeping vertex 0 fixed.
func reverseTail(points []geom.Point) {
	for l, r := 1, len(points)-1; l < r; l, r = l+1, r-1 {
		points[l], points[r] = points[r], points[l]
	}
}
