// Package core provides the shared geometric primitives used by every
// polysnap canonicalization engine: point coercion, tolerance-based
// deduplication, centroid and signed-area computation, counter-clockwise
// ordering, and correspondence alignment.
//
// All functions are deterministic, side-effect free, and safe for
// concurrent use. There is no logging and no panicking on user input —
// only the sentinel errors declared in types.go.
//
// The vertex type is geom.Point from github.com/ctessum/geom; inputs
// arrive in heterogeneous "point-like" forms (pairs, maps, accessor
// values) and are converted exactly once at the boundary by ToPoint.
//
// Conventions:
//   - Distances are Euclidean; the single per-call tolerance governs
//     both deduplication distance and degeneracy thresholds.
//   - Polygons are ordered vertex slices; ordering encodes winding
//     direction (sign of the signed area) and vertex-to-input
//     correspondence.
//   - CCW ordering sorts vertices by angle around the centroid and,
//     on a negative signed area, reverses every vertex but the first.
package core
