// Package campusnav is an in-memory campus navigator: a thread-safe weighted
// graph of named locations plus the queries a visitor needs.
//
// Subpackages:
//
//	core/         — undirected weighted Graph with symmetric adjacency under an RWMutex
//	dijkstra/     — point-to-point shortest path, shortest-path tree, reachability within a budget
//	prim_kruskal/ — minimum spanning forest (Kruskal, Prim cross-check) and union-find
//	bfs/          — hop-order traversal and connected components
//	graphio/      — YAML/JSON graph documents and a Neo4j graph source
//	campus/       — the embedded reference campus
//
// The campusnav command (cmd/campusnav) wires these to SQLite-backed accounts
// and saved routes.
package campusnav
