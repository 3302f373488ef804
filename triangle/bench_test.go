package triangle_test

import (
	"testing"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/triangle"
)

// benchCanonicalize runs one subtype repeatedly over a fixed input.
func benchCanonicalize(b *testing.B, subtype triangle.Subtype) {
	b.Helper()
	opts := triangle.DefaultOptions()
	opts.Subtype = subtype
	input := []any{
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 4.1, Y: -0.05},
		geom.Point{X: 0.05, Y: 3.9},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := triangle.Canonicalize(input, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCanonicalize_None(b *testing.B)        { benchCanonicalize(b, triangle.SubtypeNone) }
func BenchmarkCanonicalize_Equilateral(b *testing.B) { benchCanonicalize(b, triangle.SubtypeEquilateral) }
func BenchmarkCanonicalize_Isosceles(b *testing.B)   { benchCanonicalize(b, triangle.SubtypeIsosceles) }
func BenchmarkCanonicalize_Right(b *testing.B)       { benchCanonicalize(b, triangle.SubtypeRight) }
func BenchmarkCanonicalize_RightIsosceles(b *testing.B) {
	benchCanonicalize(b, triangle.SubtypeRightIsosceles)
}
