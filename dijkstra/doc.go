// Package dijkstra answers the route queries of campusnav on a weighted,
// undirected *core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, goal): best path between two vertices, with full
//     path reconstruction and early exit once the goal is settled.
//   - Tree(g, source): distances and predecessors from one source to every
//     vertex of the graph (the shortest-path tree).
//   - WithinBudget(tree, budget): the vertices whose distance is within a budget,
//     ordered by distance, together with the tree edges among them.
//
// ShortestPath is a uniform-cost search. The original navigator labelled it
// "A*", but it has never used a heuristic; a zero heuristic reduces A* to
// Dijkstra with an early exit, and that is exactly what is implemented here.
// Adding a heuristic would change which of several equal-cost paths is
// returned, so it is deliberately left out.
//
// Frontier:
//
//   - container/heap min-heap keyed by tentative cost.
//   - No decrease-key: an improved vertex is pushed again, and a popped entry whose
//     cost is above the recorded best is stale and skipped. The skip is what makes
//     the lazy heap correct, not an optimization.
//   - Equal-cost entries leave the heap in whatever order the heap yields.
//     Callers must not rely on which of several equal-cost paths is reported.
//
// Outcomes:
//
//   - No path, unreachable vertices and empty budget views are ordinary values
//     (Found == false, +Inf distance, empty slices), never errors.
//   - Errors are reserved for contract violations: nil graph, empty ID, a vertex
//     that is not in the graph, or a NaN/negative budget.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E stale entries.
//
// Thread safety:
//
//   - Every query only reads the graph and allocates its own state, so queries
//     may run concurrently on one graph as long as nobody mutates it.
package dijkstra
