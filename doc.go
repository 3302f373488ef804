// Package polysnap turns loosely drawn polygons into exact geometric
// figures — snap a hand-drawn blob of 3 or 4 points to a true rectangle,
// equilateral triangle, rhombus, trapezoid and more.
//
// 🚀 What is polysnap?
//
//	A pure, stateless canonicalization engine that takes approximate
//	vertices and reconstructs the ideal shape the user intended:
//		• Rectangles & squares: best-fit via closed-form 2×2 PCA,
//		  anchored exactly to the caller's diagonal corners
//		• Triangles: equilateral, isosceles, right, right-isosceles
//		• Quadrilaterals: parallelogram, rhombus, kite and the
//		  trapezoid family (plain, isosceles, right)
//		• Classification: read-only predicates to label what a
//		  polygon already is (convex hull included)
//
// ✨ Why choose polysnap?
//
//   - Deterministic – same input, same tolerance, same output
//   - Faithful – results stay anchored to caller-significant points
//     and preserve winding order and vertex correspondence
//   - Pure functions – no state, no I/O, safe to call concurrently
//   - Explicit failures – sentinel errors for every rejection path
//
// Everything is organized under five subpackages:
//
//	core/          — Point coercion, dedup, centroid, signed area, CCW
//	                 ordering, correspondence alignment, sentinel errors
//	rectangle/     — best-fit rectangle engine (diagonal & vertices modes)
//	triangle/      — triangle subtype reconstruction
//	quadrilateral/ — quadrilateral subtype reconstruction (delegates
//	                 rectangle/square to rectangle/)
//	classify/      — shape predicates & convex hull
//
// Quick ASCII example:
//
//	   rough input            canonical output
//	   (1,9)  (11,10)          (0.97,9.03)──(11,10)
//	     ·      ·        →        │             │
//	   (0,0)  (10,1)           (0,0)──────(10.03,0.97)
//
// Dive into each package's doc.go and example_test.go for runnable
// examples of every construction mode and subtype.
//
//	go get github.com/katalvlaran/polysnap
package polysnap
