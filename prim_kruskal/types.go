// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/campusnav/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither Prim nor Kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrVertexNotFound indicates a Prim root that is not in the graph.
var ErrVertexNotFound = errors.New("prim_kruskal: root vertex not found")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Forest is a minimum spanning forest.
//
// Edges are reported with From < To. Total is the summed weight. Components is
// the number of trees, so a connected graph has Components == 1 and
// len(Edges) == |V|-1. The empty graph has zero components.
type Forest struct {
	Edges      []core.Edge
	Total      float64
	Components int
}

// Spanning reports whether the forest is a single spanning tree.
func (f Forest) Spanning() bool { return f.Components <= 1 }

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	// Empty means the smallest vertex ID.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute applies opts on top of DefaultOptions and runs the selected algorithm.
func Compute(g *core.Graph, opts ...Option) (Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return Forest{}, ErrUnknownMethod
	}
}
