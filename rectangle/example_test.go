package rectangle_test

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/polysnap/rectangle"
)

// ExampleCanonicalize_diagonal expands two opposite corners into the
// four corners of an axis-aligned rectangle.
//
// Scenario: a drag gesture records only where the pointer went down and
// where it was released; the rectangle is implied.
func ExampleCanonicalize_diagonal() {
	opts := rectangle.DefaultOptions()
	opts.Mode = rectangle.ModeDiagonal

	corners, err := rectangle.Canonicalize([]any{
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 4, Y: 3},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(corners)
	// Output:
	// [{0 0} {4 0} {4 3} {0 3}]
}

// ExampleCanonicalize_vertices snaps four hand-placed corners of a
// slightly crooked box onto an exact rectangle. The first and third
// input points are kept exactly where the user put them.
func ExampleCanonicalize_vertices() {
	opts := rectangle.DefaultOptions()
	opts.Tolerance = 1e-3

	corners, err := rectangle.Canonicalize([]any{
		geom.Point{X: 1, Y: 1},
		geom.Point{X: 5, Y: 1},
		geom.Point{X: 5, Y: 3},
		geom.Point{X: 1, Y: 3},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range corners {
		fmt.Printf("(%.0f,%.0f)\n", c.X, c.Y)
	}
	// Output:
	// (1,1)
	// (5,1)
	// (5,3)
	// (1,3)
}

// ExampleParseConstructionMode maps wire names onto construction modes,
// tolerating case and surrounding whitespace.
func ExampleParseConstructionMode() {
	mode, _ := rectangle.ParseConstructionMode("Diagonal")
	fmt.Println(mode)

	mode, _ = rectangle.ParseConstructionMode("")
	fmt.Println(mode)
	// Output:
	// diagonal
	// vertices
}
