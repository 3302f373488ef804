package core

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// XYer is implemented by any value that can report its coordinates.
// Scene-model vertex types satisfy it without depending on this package
// beyond the method set.
type XYer interface {
	XY() (x, y float64)
}

// ToPoint coerces a point-like value into a geom.Point.
//
// Accepted forms:
//   - geom.Point / *geom.Point
//   - XYer
//   - [2]float64, []float64 of length 2
//   - []any of length 2 holding numeric elements (JSON-decoded pairs)
//   - map[string]float64 / map[string]any with "x" and "y" keys
//
// Any other shape fails with ErrInvalidPoint. The accepted-forms list is
// deliberately closed: conversion happens once, at the API boundary, and
// everything past it works on geom.Point only.
//
// Complexity: O(1).
func ToPoint(v any) (geom.Point, error) {
	switch p := v.(type) {
	case geom.Point:
		return p, nil
	case *geom.Point:
		if p == nil {
			return geom.Point{}, fmt.Errorf("nil *geom.Point: %w", ErrInvalidPoint)
		}
		return *p, nil
	case XYer:
		x, y := p.XY()
		return geom.Point{X: x, Y: y}, nil
	case [2]float64:
		return geom.Point{X: p[0], Y: p[1]}, nil
	case []float64:
		if len(p) != 2 {
			return geom.Point{}, fmt.Errorf("pair must have 2 elements, got %d: %w", len(p), ErrInvalidPoint)
		}
		return geom.Point{X: p[0], Y: p[1]}, nil
	case []any:
		if len(p) != 2 {
			return geom.Point{}, fmt.Errorf("pair must have 2 elements, got %d: %w", len(p), ErrInvalidPoint)
		}
		x, okX := toFloat(p[0])
		y, okY := toFloat(p[1])
		if !okX || !okY {
			return geom.Point{}, fmt.Errorf("pair elements must be numeric: %w", ErrInvalidPoint)
		}
		return geom.Point{X: x, Y: y}, nil
	case map[string]float64:
		x, okX := p["x"]
		y, okY := p["y"]
		if !okX || !okY {
			return geom.Point{}, fmt.Errorf("map must provide x and y keys: %w", ErrInvalidPoint)
		}
		return geom.Point{X: x, Y: y}, nil
	case map[string]any:
		xv, okX := p["x"]
		yv, okY := p["y"]
		if !okX || !okY {
			return geom.Point{}, fmt.Errorf("map must provide x and y keys: %w", ErrInvalidPoint)
		}
		x, okX := toFloat(xv)
		y, okY := toFloat(yv)
		if !okX || !okY {
			return geom.Point{}, fmt.Errorf("map x/y values must be numeric: %w", ErrInvalidPoint)
		}
		return geom.Point{X: x, Y: y}, nil
	default:
		return geom.Point{}, fmt.Errorf("unsupported point representation %T: %w", v, ErrInvalidPoint)
	}
}

// ToPoints converts a slice of point-like values, failing on the first
// value ToPoint rejects.
//
// Complexity: O(n).
func ToPoints(values []any) ([]geom.Point, error) {
	points := make([]geom.Point, 0, len(values))
	for i, v := range values {
		p, err := ToPoint(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// toFloat widens the numeric kinds that reach us from JSON decoding and
// typed literals. Non-numeric values report false.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ContainsPoint reports whether any point in points lies within
// Euclidean distance tol of candidate. Used to deduplicate
// near-coincident vertices before geometric processing.
//
// Complexity: O(n).
func ContainsPoint(points []geom.Point, candidate geom.Point, tol float64) bool {
	for _, p := range points {
		if Distance(p, candidate) <= tol {
			return true
		}
	}
	return false
}

// NearestPoint returns the point closest to candidate by Euclidean
// distance. The second return is false when points is empty. Ties keep
// the earliest point (strict < during the scan).
//
// Complexity: O(n).
func NearestPoint(points []geom.Point, candidate geom.Point) (geom.Point, bool) {
	i := NearestIndex(points, candidate)
	if i < 0 {
		return geom.Point{}, false
	}
	return points[i], true
}

// NearestIndex returns the index of the point closest to candidate, or
// -1 when points is empty. Ties resolve to the lowest index: the scan
// only replaces the best candidate on a strictly smaller distance, which
// keeps correspondence alignment deterministic for symmetric shapes.
//
// Complexity: O(n).
func NearestIndex(points []geom.Point, candidate geom.Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := Distance(p, candidate); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Dedup returns the input points with near-duplicates removed: a point
// is kept only if no already-kept point lies within tol of it. Relative
// order of kept points is preserved.
//
// Complexity: O(n²) — inputs here are 3–4 vertices.
func Dedup(points []geom.Point, tol float64) []geom.Point {
	distinct := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if !ContainsPoint(distinct, p, tol) {
			distinct = append(distinct, p)
		}
	}
	return distinct
}
