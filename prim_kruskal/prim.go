// Package prim_kruskal provides an implementation of Prim’s minimum spanning forest algorithm.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Prim computes the minimum spanning forest of g by growing one tree at a time
// with a min-heap of crossing edges.
//
// Steps:
//  1. Validate g != nil and, when given, that root exists.
//  2. Order the start vertices: root first (if any), then all vertices by ID.
//  3. For each start not yet visited, grow a tree:
//     a. mark it visited and push its edges to unvisited neighbors,
//     b. pop the lightest edge; skip it if its far end is visited,
//     c. otherwise accept it, mark the far end, push its edges.
//  4. Each grown tree adds one component.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) (Forest, error) {
	// 1. Validate
	if g == nil {
		return Forest{}, ErrNilGraph
	}
	if root != "" && !g.HasVertex(root) {
		return Forest{}, fmt.Errorf("%w: %q", ErrVertexNotFound, root)
	}

	// 2. Start order
	vertices := g.Vertices()
	starts := vertices
	if root != "" {
		starts = append([]string{root}, vertices...)
	}

	visited := make(map[string]bool, len(vertices))
	forest := Forest{Edges: make([]core.Edge, 0, len(vertices))}
	pq := &edgePQ{}

	push := func(u string) error {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			if !visited[n.ID] {
				heap.Push(pq, primEdge{from: u, to: n.ID, weight: n.Weight})
			}
		}
		return nil
	}

	// 3. Grow a tree from every unvisited start
	for _, s := range starts {
		if visited[s] {
			continue
		}
		visited[s] = true
		forest.Components++
		if err := push(s); err != nil {
			return Forest{}, err
		}
		for pq.Len() > 0 {
			e := heap.Pop(pq).(primEdge)
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			forest.Edges = append(forest.Edges, e.edge())
			forest.Total += e.weight
			if err := push(e.to); err != nil {
				return Forest{}, err
			}
		}
	}

	return forest, nil
}

// primEdge is a directed crossing edge from the tree (from) to outside (to).
type primEdge struct {
	from, to string
	weight   float64
}

// edge reports the crossing edge with From < To.
func (e primEdge) edge() core.Edge {
	if e.to < e.from {
		return core.Edge{From: e.to, To: e.from, Weight: e.weight}
	}
	return core.Edge{From: e.from, To: e.to, Weight: e.weight}
}

// edgePQ implements heap.Interface for a min-heap of crossing edges, ordered by weight.
type edgePQ []primEdge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(primEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
