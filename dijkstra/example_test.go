// Package dijkstra_test provides runnable examples for the route queries.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// ExampleShortestPath finds the cheapest route on the reference campus.
func ExampleShortestPath() {
	g := campus.Graph()

	res, err := dijkstra.ShortestPath(g, campus.FrontGate, campus.ResearchBlock)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [Front Gate Library Research Block] 5
}

// ExampleShortestPath_unreachable shows that "no path" is a value, not an error.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C")

	res, err := dijkstra.ShortestPath(g, "A", "C")
	fmt.Println(res.Found, res.Cost, err)
	// Output: false +Inf <nil>
}

// ExampleWithinBudget lists everything within 4 of the front gate.
func ExampleWithinBudget() {
	tree, err := dijkstra.Tree(campus.Graph(), campus.FrontGate)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	view, _ := dijkstra.WithinBudget(tree, 4)
	for _, r := range view.Vertices {
		fmt.Printf("%s=%g ", r.ID, r.Dist)
	}
	fmt.Println()
	// Output: Front Gate=0 Library=2 Admin=3 Canteen=4
}
