// Package quadrilateral snaps loosely placed points onto an exact
// quadrilateral of a requested subtype.
//
// What Canonicalize does:
//
//	Input : 4 point-like values (3 are enough for a parallelogram, and
//	        2 for a rectangle built in diagonal mode)
//	Output: 4 exact CCW vertices, rotated so vertex 0 sits nearest the
//	        caller's first distinct point
//
// Subtypes:
//
//   - SubtypeNone — deduplicate, order CCW, realign; no reshaping.
//   - SubtypeRectangle / SubtypeSquare — delegate to package rectangle's
//     PCA fit; squares force equal width and height.
//   - SubtypeParallelogram — keep vertices A, B, C and compute
//     D = A + C − B, which makes AB ∥ DC and AD ∥ BC by construction.
//   - SubtypeRhombus — rebuild equal perpendicular half-diagonals around
//     the centroid, oriented along the first drawn side.
//   - SubtypeKite — keep the A–C symmetry axis and mirror B and D across
//     it at their mean perpendicular distance.
//   - SubtypeTrapezoid — keep the base A–B and recenter the top side
//     parallel to it.
//   - SubtypeIsoscelesTrapezoid — trapezoid with the top centered over
//     the base, which makes the legs equal.
//   - SubtypeRightTrapezoid — trapezoid with the A-side leg forced
//     perpendicular to the base.
//
// Fallback dimensions: when a drawn side or leg collapses below the
// tolerance, the constructions substitute a fraction of the base length
// (0.6 for tops, 0.5 for heights and legs, a quarter of the diagonal
// for kite wings) instead of failing, mirroring how a drawing tool
// keeps a recognizable shape under sloppy input.
//
// All reshaping is deterministic. Errors are sentinel-wrapped values
// from package core; nothing panics on user input.
package quadrilateral
