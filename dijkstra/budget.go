package dijkstra

import (
	"fmt"
	"math"
	"sort"
)

// WithinBudget derives the reachability view of a shortest-path tree: every
// reachable vertex whose distance from the source is at most budget, ordered by
// ascending distance (ties by ID), plus the parent→child tree edges whose
// endpoints are both inside the view. Unreachable vertices are never listed,
// even for budget == +Inf.
//
// Validating user input is the caller's job; the NaN/negative check here only
// guards against misuse and returns ErrBadBudget.
//
// Complexity: O(V log V).
func WithinBudget(t *TreeResult, budget float64) (BudgetView, error) {
	if t == nil {
		return BudgetView{}, ErrNilTree
	}
	if math.IsNaN(budget) || budget < 0 {
		return BudgetView{}, fmt.Errorf("%w: %v", ErrBadBudget, budget)
	}

	view := BudgetView{
		Source:   t.Source,
		Budget:   budget,
		Vertices: make([]Reachable, 0),
		Edges:    make([][2]string, 0),
	}
	in := make(map[string]bool)
	for id, d := range t.Dist {
		if d != Inf && d <= budget {
			view.Vertices = append(view.Vertices, Reachable{ID: id, Dist: d, Parent: t.Prev[id]})
			in[id] = true
		}
	}
	sort.Slice(view.Vertices, func(i, j int) bool {
		a, b := view.Vertices[i], view.Vertices[j]
		if a.Dist != b.Dist {
			return a.Dist < b.Dist
		}
		return a.ID < b.ID
	})

	for _, r := range view.Vertices {
		if r.Parent != "" && in[r.Parent] {
			view.Edges = append(view.Edges, [2]string{r.Parent, r.ID})
		}
	}

	return view, nil
}
