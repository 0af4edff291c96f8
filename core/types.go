// Package core defines the Graph, Neighbor and Edge types and the sentinel
// errors returned by graph construction and lookup.
//
// This file declares the types, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetric indicates a forward edge without a matching reverse edge.
	ErrAsymmetric = errors.New("core: edge has no matching reverse edge")
)

// Neighbor is one outgoing adjacency entry of a vertex.
type Neighbor struct {
	// ID is the neighbor vertex.
	ID string

	// Weight is the cost of traversing to ID.
	Weight float64
}

// Edge is an undirected edge reported once per unordered pair.
// From < To lexicographically.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a weighted, undirected adjacency map of named vertices.
//
// mu guards adjacency. A vertex with no neighbors is present with an empty
// inner map, which keeps "absent" and "isolated" distinguishable.
type Graph struct {
	mu sync.RWMutex

	// adjacency[from][to] = weight
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]float64),
	}
}
