package triangle_test

import (
	"math"
	"sort"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysnap/core"
	"github.com/katalvlaran/polysnap/triangle"
)

// anyPoints wraps typed points as the heterogeneous point-like input the
// public API accepts.
func anyPoints(ps ...geom.Point) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// sideLengths returns the three perimeter edge lengths of a triangle.
func sideLengths(tri [3]geom.Point) [3]float64 {
	var lengths [3]float64
	for i := 0; i < 3; i++ {
		lengths[i] = core.Distance(tri[i], tri[(i+1)%3])
	}
	return lengths
}

// TestCanonicalize_NoSubtype verifies plain canonicalization keeps the
// shape, yields measurable area and stays anchored near the caller's
// first vertex.
func TestCanonicalize_NoSubtype(t *testing.T) {
	input := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0.2}, {X: 1.5, Y: 3.2}}

	got, err := triangle.Canonicalize(anyPoints(input...), triangle.DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, math.Abs(core.SignedArea(got[:])), 1e-6, "area must survive")
	assert.Less(t, core.Distance(got[0], input[0]), 0.5, "vertex 0 stays near the caller's first point")
	assert.Positive(t, core.SignedArea(got[:]), "CCW input keeps CCW winding")
}

// TestCanonicalize_PreservesWinding verifies clockwise input yields a
// clockwise result after alignment.
func TestCanonicalize_PreservesWinding(t *testing.T) {
	input := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: 0}}
	require.Negative(t, core.SignedArea(input))

	got, err := triangle.Canonicalize(anyPoints(input...), triangle.DefaultOptions())
	require.NoError(t, err)
	assert.Negative(t, core.SignedArea(got[:]), "CW input keeps CW winding")
	assert.Equal(t, input[0], got[0], "no reshaping, so the anchor vertex survives exactly")
}

// TestCanonicalize_Equilateral verifies all three sides come out equal
// and that an already equilateral triangle is a fixed point.
func TestCanonicalize_Equilateral(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeEquilateral

	got, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0.01}, geom.Point{X: 1.02, Y: 1.732}), opts)
	require.NoError(t, err)
	lengths := sideLengths(got)
	assert.InDelta(t, lengths[0], lengths[1], 1e-6)
	assert.InDelta(t, lengths[1], lengths[2], 1e-6)

	// Near-regular triangle with side 10: sides snap to 10 and the
	// centroid stays put.
	got, err = triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 5, Y: 8.66}), opts)
	require.NoError(t, err)
	for i, l := range sideLengths(got) {
		assert.InDelta(t, 10.0, l, 0.01, "side %d", i)
	}
	c := core.Centroid(got[:])
	assert.InDelta(t, 5.0, c.X, 1e-9)
	assert.InDelta(t, 2.887, c.Y, 0.01)

	// Exact equilateral input reproduces itself.
	exact := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: math.Sqrt(3)}}
	got, err = triangle.Canonicalize(anyPoints(exact...), opts)
	require.NoError(t, err)
	for i := range exact {
		assert.InDelta(t, exact[i].X, got[i].X, 1e-9, "vertex %d x", i)
		assert.InDelta(t, exact[i].Y, got[i].Y, 1e-9, "vertex %d y", i)
	}
}

// TestCanonicalize_Isosceles verifies the two sides incident to the
// detected apex come out equal and the apex stays on its original side.
func TestCanonicalize_Isosceles(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeIsosceles

	got, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 0.3}, geom.Point{X: 1.5, Y: 4.1}), opts)
	require.NoError(t, err)

	lengths := sideLengths(got)
	assert.InDelta(t, lengths[0], lengths[2], 1e-6, "legs incident to the apex must be equal")

	mid := geom.Point{X: (got[1].X + got[2].X) / 2, Y: (got[1].Y + got[2].Y) / 2}
	assert.Positive(t, core.Distance(got[0], mid), "apex must sit off the base")
}

// TestCanonicalize_Right verifies the legs at vertex 0 come out exactly
// perpendicular while keeping roughly the drawn lengths.
func TestCanonicalize_Right(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeRight

	got, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 4.1, Y: -0.05}, geom.Point{X: 0.05, Y: 3.9}), opts)
	require.NoError(t, err)

	leg1 := geom.Point{X: got[1].X - got[0].X, Y: got[1].Y - got[0].Y}
	leg2 := geom.Point{X: got[2].X - got[0].X, Y: got[2].Y - got[0].Y}
	assert.InDelta(t, 0, leg1.X*leg2.X+leg1.Y*leg2.Y, 1e-6, "legs must be perpendicular")
	assert.InDelta(t, 4.1, math.Hypot(leg1.X, leg1.Y), 0.1, "first leg keeps its drawn length")
}

// TestCanonicalize_RightIsosceles verifies perpendicular legs of equal
// length.
func TestCanonicalize_RightIsosceles(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeRightIsosceles

	got, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 1, Y: 1}, geom.Point{X: 4, Y: 1.2}, geom.Point{X: 1.2, Y: 4}), opts)
	require.NoError(t, err)

	lengths := sideLengths(got)
	assert.InDelta(t, lengths[0], lengths[2], 1e-6, "legs must be equal")
	leg1 := geom.Point{X: got[1].X - got[0].X, Y: got[1].Y - got[0].Y}
	leg2 := geom.Point{X: got[2].X - got[0].X, Y: got[2].Y - got[0].Y}
	assert.InDelta(t, 0, leg1.X*leg2.X+leg1.Y*leg2.Y, 1e-6, "legs must be perpendicular")
}

// TestCanonicalize_WrongVertexCount verifies duplicate or missing points
// are rejected after deduplication.
func TestCanonicalize_WrongVertexCount(t *testing.T) {
	opts := triangle.DefaultOptions()

	_, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 0}), opts)
	assert.ErrorIs(t, err, core.ErrWrongVertexCount, "duplicate collapses to two distinct points")

	_, err = triangle.Canonicalize(anyPoints(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}), opts)
	assert.ErrorIs(t, err, core.ErrWrongVertexCount)

	_, err = triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0},
		geom.Point{X: 2, Y: 2}, geom.Point{X: 0, Y: 2}), opts)
	assert.ErrorIs(t, err, core.ErrWrongVertexCount)
}

// TestCanonicalize_Collinear verifies near-zero area is rejected for
// every subtype.
func TestCanonicalize_Collinear(t *testing.T) {
	input := anyPoints(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2})
	for _, subtype := range []triangle.Subtype{
		triangle.SubtypeNone,
		triangle.SubtypeEquilateral,
		triangle.SubtypeIsosceles,
		triangle.SubtypeRight,
		triangle.SubtypeRightIsosceles,
	} {
		opts := triangle.DefaultOptions()
		opts.Subtype = subtype
		_, err := triangle.Canonicalize(input, opts)
		assert.ErrorIs(t, err, core.ErrDegenerateInput, "subtype %v", subtype)
	}
}

// TestCanonicalize_ScaleneRejected verifies the scalene classification
// parses but cannot be canonicalized.
func TestCanonicalize_ScaleneRejected(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeScalene

	_, err := triangle.Canonicalize(anyPoints(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1}), opts)
	assert.ErrorIs(t, err, core.ErrUnsupportedSubtype)
}

// TestCanonicalize_InvalidPoint verifies point coercion failures
// propagate as ErrInvalidPoint.
func TestCanonicalize_InvalidPoint(t *testing.T) {
	_, err := triangle.Canonicalize([]any{geom.Point{}, 42.0, geom.Point{X: 0, Y: 1}}, triangle.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidPoint)
}

// TestParseSubtype verifies wire-name normalization and the
// unsupported-value error.
func TestParseSubtype(t *testing.T) {
	cases := []struct {
		in   string
		want triangle.Subtype
	}{
		{"", triangle.SubtypeNone},
		{"none", triangle.SubtypeNone},
		{"Equilateral", triangle.SubtypeEquilateral},
		{"  isosceles ", triangle.SubtypeIsosceles},
		{"RIGHT", triangle.SubtypeRight},
		{"right-isosceles", triangle.SubtypeRightIsosceles},
		{"right isosceles", triangle.SubtypeRightIsosceles},
		{"scalene", triangle.SubtypeScalene},
	}
	for _, tc := range cases {
		got, err := triangle.ParseSubtype(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := triangle.ParseSubtype("obtuse")
	assert.ErrorIs(t, err, core.ErrUnsupportedSubtype)
}

// TestSubtype_String verifies wire names round-trip through ParseSubtype.
func TestSubtype_String(t *testing.T) {
	for _, subtype := range []triangle.Subtype{
		triangle.SubtypeNone,
		triangle.SubtypeEquilateral,
		triangle.SubtypeIsosceles,
		triangle.SubtypeRight,
		triangle.SubtypeRightIsosceles,
		triangle.SubtypeScalene,
	} {
		parsed, err := triangle.ParseSubtype(subtype.String())
		require.NoError(t, err)
		assert.Equal(t, subtype, parsed)
	}
}

// TestCanonicalize_EquilateralKeepsScale verifies the rebuilt side length
// equals the mean of the drawn side lengths.
func TestCanonicalize_EquilateralKeepsScale(t *testing.T) {
	opts := triangle.DefaultOptions()
	opts.Subtype = triangle.SubtypeEquilateral
	input := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0.2}, {X: 1.4, Y: 2.8}}

	got, err := triangle.Canonicalize(anyPoints(input...), opts)
	require.NoError(t, err)

	want := core.AverageSideLength(input)
	lengths := sideLengths(got)
	sort.Float64s(lengths[:])
	assert.InDelta(t, want, lengths[1], 1e-9, "side length equals the mean input side")
}
