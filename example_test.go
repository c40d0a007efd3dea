// Package mcb_test provides runnable examples for the SVA drivers.
package mcb_test

import (
	"fmt"

	"github.com/katalvlaran/mcb"
	"github.com/katalvlaran/mcb/graph"
)

// ExampleSVASigned computes the minimum cycle basis of a weighted square
// with one diagonal: the basis pairs the unit square with one triangle.
func ExampleSVASigned() {
	// 1) Build the square a-b-c-d with the heavy diagonal a-c.
	g, _ := graph.New(4)
	_, _ = g.AddEdge(0, 1, 1) // a-b
	_, _ = g.AddEdge(1, 2, 1) // b-c
	_, _ = g.AddEdge(2, 3, 1) // c-d
	_, _ = g.AddEdge(3, 0, 1) // d-a
	_, _ = g.AddEdge(0, 2, 3) // a-c

	// 2) Collect the basis and its total weight.
	var cycles []mcb.Cycle
	total, err := mcb.SVASigned(g, mcb.Collect(&cycles))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Two independent cycles span the space; the lightest pair is the
	// square (4) plus one triangle (5).
	fmt.Printf("cycles=%d total=%g\n", len(cycles), total)
	// Output: cycles=2 total=9
}

// ExampleSVATrees computes the minimum cycle basis of K4 from the Horton
// candidate pool: three unit triangles.
func ExampleSVATrees() {
	// 1) Build the complete graph on four vertices with unit weights.
	g, _ := graph.New(4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_, _ = g.AddEdge(u, v, 1)
		}
	}

	// 2) Run the trees driver with the sorted-candidate fast path.
	var cycles []mcb.Cycle
	total, err := mcb.SVATrees(g, mcb.Collect(&cycles), mcb.WithSortedCycles())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cycles=%d total=%g\n", len(cycles), total)
	// Output: cycles=3 total=9
}
