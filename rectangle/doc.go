// Package rectangle reconstructs exact rectangles (and squares) from
// loosely specified corner points.
//
// Two construction modes are supported:
//
//   - ModeDiagonal — two opposite corners define an axis-aligned
//     rectangle directly; no fitting is involved.
//   - ModeVertices — four approximate corners are fitted via principal
//     component analysis (closed-form 2×2 eigen-decomposition of the
//     covariance matrix), then re-synthesized so the result's diagonal
//     passes exactly through the caller's two anchor points.
//
// The vertices mode keeps the caller's intent authoritative at every
// step: the first input point and the point at input index 2 are treated
// as the intended diagonal pair, the PCA basis is re-aligned to the
// caller's vertex ordering (PCA alone has sign/rotation ambiguity), and the perpendicular
// ambiguity of the final re-synthesis is resolved by scoring both
// candidate rectangles against all original input points and keeping the
// lower-residual one.
//
// Symmetric inputs (squares most of all) collapse the covariance
// discriminant; that case is an explicit, documented fallback branch with
// its own epsilon, not an incidental float comparison.
//
// All functions are pure and safe for concurrent use; failures are
// sentinel errors from the core package.
package rectangle
