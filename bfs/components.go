package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// Components partitions the vertices of g into connected components.
//
// Each component is sorted by ID and components are ordered by their first ID.
// Edges are followed as stored; on data that violates the symmetry invariant a
// vertex reachable only through one-way edges may be grouped with its source.
// The traversal stops with ctx.Err() once ctx is done.
//
// Complexity: O(V + E).
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	comps := make([][]string, 0)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// ComponentCount returns the number of connected components of g.
func ComponentCount(ctx context.Context, g *core.Graph) (int, error) {
	comps, err := Components(ctx, g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
