package classify_test

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/classify"
)

// ExampleTriangleTypeFlags classifies a 3-4-5 triangle: no equal sides,
// one right angle.
func ExampleTriangleTypeFlags() {
	flags, err := classify.TriangleTypeFlags([]geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("scalene:", flags.Scalene)
	fmt.Println("right:", flags.Right)
	// Output:
	// scalene: true
	// right: true
}

// ExampleConvexHull drops interior points and returns the CCW hull.
func ExampleConvexHull() {
	hull := classify.ConvexHull([]geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
		{X: 2, Y: 1},
	})
	fmt.Println(hull)
	// Output:
	// [{0 0} {4 0} {4 3} {0 3}]
}
