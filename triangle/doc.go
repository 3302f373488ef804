// Package triangle snaps three loosely placed points onto an exact
// triangle of a requested subtype.
//
// What Canonicalize does:
//
//	Input : 3 point-like values (extra exact duplicates are dropped)
//	Output: 3 exact CCW vertices, rotated so vertex 0 sits nearest the
//	        caller's first distinct point
//
// Subtypes:
//
//   - SubtypeNone          — deduplicate, order CCW, realign; no reshaping.
//   - SubtypeEquilateral   — rebuild around the centroid with side length
//     equal to the mean input side, vertex 0 aimed at the caller's first
//     point.
//   - SubtypeIsosceles     — pick the apex whose adjacent sides differ
//     least, keep the base direction, set both legs to their mean.
//   - SubtypeRight         — pick the corner closest to 90°, keep one leg
//     direction, force the other perpendicular at original lengths.
//   - SubtypeRightIsosceles — right-corner construction with both legs
//     set to their mean length.
//   - SubtypeScalene       — recognized on parse but has no canonical
//     shape, so Canonicalize rejects it.
//
// All reshaping is deterministic: same points, same subtype, same
// tolerance — same triangle. Errors are sentinel-wrapped values from
// package core; nothing panics on user input.
package triangle
