package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrStartAvoided is returned when the start vertex is itself on the avoid list.
	ErrStartAvoided = errors.New("bfs: start vertex is avoided")

	// ErrBadDepth is returned for a negative depth limit.
	ErrBadDepth = errors.New("bfs: depth limit must not be negative")

	// ErrNeighbors wraps a failure to read a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: reading neighbors failed")
)

// Result is a breadth-first spanning tree of the part of the graph reached
// from Start.
type Result struct {
	Start string
	// Order lists reached vertices by hop count, ties in neighbor (ID) order.
	Order []string
	// Depth is the hop count of every reached vertex; Start has 0.
	Depth map[string]int
	// Parent links every reached vertex except Start to the vertex it was found from.
	Parent map[string]string
}

// Reached reports whether id was reached.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// Layers groups Order by hop count: Layers()[d] holds the vertices d hops away.
func (r *Result) Layers() [][]string {
	var layers [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}

	return layers
}

// PathTo returns the fewest-hop route from Start to dest along Parent links.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %q not reached from %q", dest, r.Start)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
