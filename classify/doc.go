// Package classify measures and labels polygons: side lengths, internal
// angles, triangle and quadrilateral type flags, regularity, and convex
// hull queries.
//
// Classification is read-only — nothing here moves a vertex. It pairs
// naturally with the canonicalizers: classify a drawn shape first, then
// snap it with the matching subtype. All comparisons use a
// scale-relative tolerance so a 1000-unit square classifies the same as
// a 1-unit one.
//
// Angle measurements are unsigned interior angles in degrees, so flags
// do not depend on winding direction.
package classify
