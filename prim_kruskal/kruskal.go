// Package prim_kruskal provides an implementation of Kruskal’s minimum spanning forest algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate g != nil.
//  2. Collect each undirected edge once via g.Edges() (orderless pair key).
//  3. Stable-sort edges by ascending weight.
//  4. Start with one singleton set per vertex.
//  5. Scan every edge; accept it iff its endpoints are in different sets, then union.
//  6. Report accepted edges, their total, and the number of remaining sets.
//
// Disconnected input yields a forest, not an error. The empty graph yields an
// empty forest with zero components.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (Forest, error) {
	// 1. Validate
	if g == nil {
		return Forest{}, ErrNilGraph
	}

	// 2. Edges, each unordered pair once, sorted by (From, To)
	edges := g.Edges()

	// 3. Ascending weight; the stable sort keeps (From, To) order within a weight
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Singletons
	ds := NewDisjointSet(g.Vertices())

	// 5. Scan all edges
	forest := Forest{Edges: make([]core.Edge, 0, len(edges))}
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			// same component: this edge would close a cycle
			continue
		}
		forest.Edges = append(forest.Edges, e)
		forest.Total += e.Weight
	}

	// 6. One tree per remaining set
	forest.Components = ds.Count()

	return forest, nil
}
