// File: methods_query.go
// Role: Read-only queries used by the algorithm packages.
// Determinism:
//   - Vertices(), Neighbors() and Edges() return sorted results.
// Concurrency:
//   - All queries run under mu read lock and never mutate state.

package core

import (
	"fmt"
	"sort"
)

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Neighbors returns the outgoing (neighbor, weight) pairs of id, sorted by neighbor ID.
// An isolated vertex yields an empty, non-nil slice; an absent vertex yields ErrVertexNotFound.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Neighbor, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Weight returns the weight of the forward edge from→to.
//
// Errors: ErrVertexNotFound if from is absent, ErrEdgeNotFound if the edge is.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	w, ok := nbrs[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Edges returns every undirected edge exactly once, keyed by the orderless pair
// {a,b} and reported with From < To. When the stored data is asymmetric in
// weight, the weight of the lexicographically first direction wins.
// The result is sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type pairKey struct{ a, b string }
	seen := make(map[pairKey]struct{})
	edges := make([]Edge, 0)

	froms := make([]string, 0, len(g.adjacency))
	for from := range g.adjacency {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	for _, from := range froms {
		tos := make([]string, 0, len(g.adjacency[from]))
		for to := range g.adjacency[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			k := pairKey{from, to}
			if to < from {
				k = pairKey{to, from}
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, Edge{From: k.a, To: k.b, Weight: g.adjacency[from][to]})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of undirected edges (unordered pairs).
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}

// Adjacency returns a deep copy of the adjacency map.
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.adjacency))
	for from, nbrs := range g.adjacency {
		inner := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}

// ValidateSymmetry checks that every forward edge A→B (weight w) has a reverse
// edge B→A with the same weight. It reports the first violation in sorted order.
// Complexity: O(V·log V + E·log d).
func (g *Graph) ValidateSymmetry() error {
	for _, from := range g.Vertices() {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			back, err := g.Weight(n.ID, from)
			if err != nil {
				return fmt.Errorf("%w: %s→%s (weight %v) has no reverse", ErrAsymmetric, from, n.ID, n.Weight)
			}
			if back != n.Weight {
				return fmt.Errorf("%w: %s→%s weight %v but %s→%s weight %v",
					ErrAsymmetric, from, n.ID, n.Weight, n.ID, from, back)
			}
		}
	}

	return nil
}
