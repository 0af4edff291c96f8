package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Tree computes the shortest-path tree from source to every vertex of g.
//
// Every vertex appears in the returned Dist and Prev maps; unreachable ones
// keep Dist == +Inf and Prev == "". There is no early exit: the frontier is
// drained completely.
//
// Errors: ErrNilGraph, ErrEmptySource, ErrVertexNotFound.
// Complexity: O((V + E) log V).
func Tree(g *core.Graph, source string) (*TreeResult, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}

	r := newRunner(g, source, "")
	if err := r.run(); err != nil {
		return nil, err
	}

	return &TreeResult{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// Reachable reports whether v has a finite distance from the tree's source.
func (t *TreeResult) Reachable(v string) bool {
	d, ok := t.Dist[v]

	return ok && d != Inf
}

// PathTo reconstructs the tree path from Source to v.
//
// An unreachable v yields PathResult{Found: false, Cost: +Inf}; a v that was not
// part of the graph yields ErrVertexNotFound.
func (t *TreeResult) PathTo(v string) (PathResult, error) {
	d, ok := t.Dist[v]
	if !ok {
		return PathResult{}, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	if d == Inf {
		return PathResult{Cost: Inf}, nil
	}
	path, err := walkBack(t.Prev, t.Source, v)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Path: path, Cost: d, Found: true}, nil
}
