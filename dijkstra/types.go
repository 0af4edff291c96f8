package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the start/source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the goal vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrVertexNotFound indicates that a requested vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBrokenPredecessor indicates that a predecessor chain does not lead back
	// to the source. It can only happen if the graph changed during a query.
	ErrBrokenPredecessor = errors.New("dijkstra: predecessor chain does not reach source")

	// ErrBadBudget indicates a NaN or negative reachability budget.
	ErrBadBudget = errors.New("dijkstra: budget must be a non-negative number")

	// ErrNilTree indicates that WithinBudget received a nil tree.
	ErrNilTree = errors.New("dijkstra: shortest-path tree is nil")
)

// Inf is the distance of an unreachable vertex and the cost of a missing path.
var Inf = math.Inf(1)

// PathResult is the outcome of ShortestPath.
//
// Found == false means the goal is unreachable: Path is nil and Cost is +Inf.
// Otherwise Path runs from start to goal inclusive and Cost is its total weight.
type PathResult struct {
	Path  []string
	Cost  float64
	Found bool
}

// TreeResult is the shortest-path tree rooted at Source.
//
// Dist and Prev contain every vertex of the graph. Unreachable vertices have
// Dist == +Inf and Prev == "". Prev[Source] is always "".
type TreeResult struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Reachable is one vertex of a BudgetView.
type Reachable struct {
	ID     string
	Dist   float64
	Parent string // "" for the source
}

// BudgetView is the part of a shortest-path tree within Budget of Source.
//
// Vertices are ordered by ascending distance, ties by ID. Edges holds the
// parent→child tree edges whose both endpoints are in Vertices.
type BudgetView struct {
	Source   string
	Budget   float64
	Vertices []Reachable
	Edges    [][2]string
}

// IDs returns the vertex IDs of the view in view order.
func (v BudgetView) IDs() []string {
	ids := make([]string, len(v.Vertices))
	for i, r := range v.Vertices {
		ids[i] = r.ID
	}

	return ids
}
