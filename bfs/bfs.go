package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// BFS walks g outward from start one hop layer at a time, ignoring weights.
//
// Steps:
//  1. Validate graph, options and start.
//  2. The frontier starts as {start} at depth 0.
//  3. For each frontier vertex, in order, claim every allowed unseen neighbor
//     for the next layer; neighbors come sorted by ID.
//  4. Stop when the frontier is empty or the depth limit is reached.
//
// Errors: ErrGraphNil, ErrBadDepth, ErrStartVertexNotFound, ErrStartAvoided,
// ErrNeighbors, or the context's error.
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSettings(opts)
	if s.err != nil {
		return nil, s.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if s.avoided[start] {
		return nil, fmt.Errorf("%w: %q", ErrStartAvoided, start)
	}

	// 2. Seed
	res := &Result{
		Start:  start,
		Order:  []string{start},
		Depth:  map[string]int{start: 0},
		Parent: map[string]string{},
	}
	frontier := []string{start}

	// 3-4. Expand layer by layer
	for depth := 1; len(frontier) > 0; depth++ {
		if s.maxDepth > 0 && depth > s.maxDepth {
			break
		}
		var next []string
		for _, u := range frontier {
			if err := s.ctx.Err(); err != nil {
				return nil, err
			}
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, u, err)
			}
			for _, n := range nbrs {
				if res.Reached(n.ID) || !s.allowed(u, n.ID) {
					continue
				}
				res.Depth[n.ID] = depth
				res.Parent[n.ID] = u
				res.Order = append(res.Order, n.ID)
				next = append(next, n.ID)
			}
		}
		frontier = next
	}

	return res, nil
}
