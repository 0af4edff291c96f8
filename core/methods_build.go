// File: methods_build.go
// Role: Build-phase operations: AddVertex, AddEdge, FromAdjacency.
// Concurrency:
//   - Mutations under mu write lock.
// Policy:
//   - Weights are validated once here so the algorithms can trust them.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex with no neighbors. Adding an existing vertex is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}

	return nil
}

// AddEdge adds the undirected edge a—b with the given weight, creating missing
// endpoints. Both directions are stored with the same weight.
//
// Steps:
//  1. Validate IDs, loop, weight.
//  2. Under lock: ensure endpoints, reject an existing a→b.
//  3. Store a→b and b→a.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrNegativeWeight, ErrBadWeight,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if err := checkWeight(a, b, weight); err != nil {
		return err
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(a)
	g.ensureVertex(b)
	if _, dup := g.adjacency[a][b]; dup {
		return fmt.Errorf("%w: %s—%s", ErrMultiEdgeNotAllowed, a, b)
	}

	// 3) Mirror
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight

	return nil
}

// FromAdjacency builds a Graph from a map-of-maps, copying forward edges
// exactly as given. Symmetry is not enforced; use ValidateSymmetry for that.
//
// Every neighbor must also appear as a top-level key: a neighbor with no entry
// of its own would be a vertex whose adjacency is unknown, and treating it as
// empty would silently change reachability results.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrNegativeWeight, ErrBadWeight,
// ErrVertexNotFound (dangling neighbor).
// Complexity: O(V+E).
func FromAdjacency(m map[string]map[string]float64) (*Graph, error) {
	g := NewGraph()
	for from, nbrs := range m {
		if from == "" {
			return nil, ErrEmptyVertexID
		}
		inner := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			if to == "" {
				return nil, ErrEmptyVertexID
			}
			if to == from {
				return nil, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
			}
			if _, ok := m[to]; !ok {
				return nil, fmt.Errorf("%w: %q (neighbor of %q)", ErrVertexNotFound, to, from)
			}
			if err := checkWeight(from, to, w); err != nil {
				return nil, err
			}
			inner[to] = w
		}
		g.adjacency[from] = inner
	}

	return g, nil
}

// ensureVertex creates an empty adjacency entry for id. Caller holds mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}

// checkWeight rejects NaN, infinite and negative weights.
func checkWeight(from, to string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, w)
	}

	return nil
}
