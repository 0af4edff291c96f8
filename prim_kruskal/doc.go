// Package prim_kruskal computes the minimum spanning forest of a weighted,
// undirected *core.Graph.
//
// What & Why
//
//   - A minimum spanning tree connects every vertex with the cheapest possible set
//     of edges. When the graph has several connected components no tree exists;
//     the result is then a minimum spanning forest, one tree per component. This
//     is a normal outcome here, never an error: Forest.Components tells the caller
//     how many trees were built, and len(Forest.Edges) == |V| - Components.
//
// Algorithms Provided
//
//   - Kruskal(g) (Forest, error)
//
//   - Strategy: take every undirected edge once (core.Graph.Edges dedupes the
//     mirrored pairs), stable-sort by weight, and accept an edge iff its endpoints
//     are in different sets of a DisjointSet, then union them. Every edge is
//     scanned; the loop does not stop at |V|-1 because the graph may be disconnected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g, root) (Forest, error)
//
//   - Strategy: grow a tree from root with a min-heap of crossing edges; when the
//     heap empties, restart from the smallest unvisited vertex. Used as an
//     independent cross-check of Kruskal's total weight.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Ties
//
//	Equal-weight edges keep the order of core.Graph.Edges (sorted by endpoint
//	names) under the stable sort, but which of several equal-weight edges ends up
//	in the forest is not part of the contract. Only the total weight and the edge
//	count are guaranteed.
//
// DisjointSet
//
//	Union-find over string IDs with iterative path compression and union by rank,
//	exported for callers that need component bookkeeping of their own.
package prim_kruskal
