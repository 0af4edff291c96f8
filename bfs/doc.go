// Package bfs answers "fewest stops" questions over a core.Graph: hop counts,
// hop layers, fewest-hop routes and connected components. Weights are ignored.
//
// BFS expands one layer at a time. Neighbors come from core.Graph.Neighbors,
// which sorts them by ID, so Order and Parent are reproducible.
//
// Options:
//
//   - WithContext(ctx):     stop with ctx.Err() once ctx is done.
//   - WithMaxDepth(d):      do not expand past d hops; 0 means no limit.
//   - Avoid(ids...):        never enter the listed vertices.
//   - WithEdgeFilter(keep): follow only the edges keep approves.
//
// Components runs BFS from every not-yet-seen vertex; a spanning forest over c
// components has exactly |V| - c edges, which the MST tests rely on.
package bfs
