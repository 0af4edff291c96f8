package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ShortestPath finds a minimum-cost path from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be non-empty (ErrEmptySource, ErrEmptyTarget).
//  3. both must be vertices of g (ErrVertexNotFound).
//
// Behavior:
//   - start == goal returns the single-vertex path with cost 0 without searching.
//   - the search stops as soon as goal is popped from the frontier; with
//     non-negative weights its cost is final at that point.
//   - an unreachable goal yields PathResult{Found: false, Cost: +Inf} and a nil error.
//   - among several equal-cost paths, which one is returned is unspecified.
//
// Complexity: O((V + E) log V) worst case.
func ShortestPath(g *core.Graph, start, goal string) (PathResult, error) {
	if err := validate(g, start); err != nil {
		return PathResult{}, err
	}
	if goal == "" {
		return PathResult{}, ErrEmptyTarget
	}
	if !g.HasVertex(goal) {
		return PathResult{}, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}

	if start == goal {
		return PathResult{Path: []string{start}, Cost: 0, Found: true}, nil
	}

	r := newRunner(g, start, goal)
	if err := r.run(); err != nil {
		return PathResult{}, err
	}

	cost := r.dist[goal]
	if cost == Inf {
		return PathResult{Cost: Inf}, nil
	}
	path, err := r.pathTo(goal)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Path: path, Cost: cost, Found: true}, nil
}

// validate performs the checks shared by ShortestPath and Tree on the source vertex.
func validate(g *core.Graph, source string) error {
	if g == nil {
		return ErrNilGraph
	}
	if source == "" {
		return ErrEmptySource
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	return nil
}
