// Package core provides the weighted, undirected location graph shared by every
// query in campusnav.
//
// The Graph G = (V,E) is stored as a nested adjacency map:
//
//	adjacency[from][to] = weight
//
// so that neighbor lookup is a direct keyed access rather than a scan.
//
// Lifecycle:
//
//   - Build phase: NewGraph + AddVertex/AddEdge, or FromAdjacency for a ready
//     map-of-maps. AddEdge mirrors the edge in both directions; FromAdjacency
//     copies forward edges exactly as given.
//   - Read phase: every algorithm package (dijkstra, prim_kruskal, bfs) only
//     reads the graph. Reads take a shared lock, so many queries may run
//     concurrently against one instance as long as nobody keeps building it.
//
// Symmetry:
//
//	The graph is logically undirected: if A→B has weight w then B→A is expected
//	to exist with the same w. Algorithms never enforce this; they walk forward
//	edges as stored. Call ValidateSymmetry to assert the invariant on data that
//	did not come through AddEdge.
//
// Core Methods:
//
//	// Build
//	AddVertex(id string) error                        // O(1)
//	AddEdge(a, b string, weight float64) error        // O(1), mirrored
//	FromAdjacency(m map[string]map[string]float64)    // O(V+E)
//
//	// Query
//	HasVertex(id string) bool                         // O(1)
//	Neighbors(id string) ([]Neighbor, error)          // O(d·log d), sorted by ID
//	Weight(from, to string) (float64, error)          // O(1)
//	Vertices() []string                               // O(V·log V)
//	Edges() []Edge                                    // O(E·log E), each pair once
//	VertexCount(), EdgeCount() int
//	Adjacency() map[string]map[string]float64         // deep copy
//	ValidateSymmetry() error                          // O(E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex (absent is not the same as "no neighbors")
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeWeight      – weight < 0
//	ErrBadWeight           – NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same pair
//	ErrAsymmetric          – A→B present without a matching B→A
package core
