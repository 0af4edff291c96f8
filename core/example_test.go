package core_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ExampleGraph_AddEdge builds a small triangle and lists the neighbors of A.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("A", "C", 4)

	nbrs, _ := g.Neighbors("A")
	for i, n := range nbrs {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s:%g", n.ID, n.Weight)
	}
	fmt.Println()
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// B:2 C:4
	// 3 3
}

// ExampleGraph_ValidateSymmetry shows how hand-entered data is checked.
func ExampleGraph_ValidateSymmetry() {
	g, _ := core.FromAdjacency(map[string]map[string]float64{
		"Gate":    {"Library": 2},
		"Library": {"Gate": 3},
	})
	fmt.Println(g.ValidateSymmetry())
	// Output: core: edge has no matching reverse edge: Gate→Library weight 2 but Library→Gate weight 3
}
