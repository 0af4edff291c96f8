// Package render formats query results as the plain text the CLI prints.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/internal/store"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// Route joins a vertex sequence as "A -> B -> C".
func Route(path []string) string {
	return strings.Join(path, " -> ")
}

// Path describes a shortest-path answer, including the no-path case.
func Path(from, to string, r dijkstra.PathResult) string {
	if !r.Found {
		return fmt.Sprintf("No path from %s to %s.", from, to)
	}

	return fmt.Sprintf("Shortest path: %s\nTotal distance: %g", Route(r.Path), r.Cost)
}

// MST lists forest edges as "u - v (w)" followed by the total weight.
func MST(f prim_kruskal.Forest) string {
	var b strings.Builder
	if f.Spanning() {
		fmt.Fprintf(&b, "Minimum spanning tree (%d edges):\n", len(f.Edges))
	} else {
		fmt.Fprintf(&b, "Minimum spanning forest (%d components, %d edges):\n", f.Components, len(f.Edges))
	}
	for _, e := range f.Edges {
		fmt.Fprintf(&b, "%s - %s (%g)\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(&b, "\nTotal weight: %g", f.Total)

	return b.String()
}

// Reachability lists the vertices of a budget view with their distances.
func Reachability(v dijkstra.BudgetView) string {
	if len(v.Vertices) == 0 {
		return fmt.Sprintf("No locations reachable within %g from %s.", v.Budget, v.Source)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Reachable within %g from %s:", v.Budget, v.Source)
	for _, r := range v.Vertices {
		fmt.Fprintf(&b, "\n• %s (dist %g)", r.ID, r.Dist)
	}

	return b.String()
}

// Tree lists every vertex of a shortest-path tree by distance, then ID.
// Unreachable vertices come last.
func Tree(t *dijkstra.TreeResult) string {
	ids := make([]string, 0, len(t.Dist))
	for id := range t.Dist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		di, dj := t.Dist[ids[i]], t.Dist[ids[j]]
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Distances from %s:", t.Source)
	for _, id := range ids {
		if !t.Reachable(id) {
			fmt.Fprintf(&b, "\n%s: unreachable", id)
			continue
		}
		p, err := t.PathTo(id)
		if err != nil {
			fmt.Fprintf(&b, "\n%s: %g", id, t.Dist[id])
			continue
		}
		fmt.Fprintf(&b, "\n%s: %g via %s", id, t.Dist[id], Route(p.Path))
	}

	return b.String()
}

// Components prints one connected component per line.
func Components(comps [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d connected component(s):", len(comps))
	for i, c := range comps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, strings.Join(c, ", "))
	}

	return b.String()
}

// Hops prints one line per hop count: "d: A, B".
func Hops(res *bfs.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hops from %s:", res.Start)
	for d, layer := range res.Layers() {
		fmt.Fprintf(&b, "\n%d: %s", d, strings.Join(layer, ", "))
	}

	return b.String()
}

// HopRoute describes the fewest-stop route to dest, or that there is none.
func HopRoute(res *bfs.Result, dest string) string {
	path, err := res.PathTo(dest)
	if err != nil {
		return fmt.Sprintf("No route from %s to %s.", res.Start, dest)
	}

	return fmt.Sprintf("Fewest stops: %s (%d hops)", Route(path), len(path)-1)
}

// SavedRoutes lists a user's saved routes, numbered in the order given.
func SavedRoutes(username string, routes []store.SavedRoute) string {
	if len(routes) == 0 {
		return fmt.Sprintf("No saved routes for %s.", username)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Saved routes for %s:", username)
	for i, r := range routes {
		fmt.Fprintf(&b, "\n%d. %s → %s (%g)\n   saved %s\n   Path: %s",
			i+1, r.Source, r.Destination, r.Cost, r.SavedAt.Format(time.DateTime), r.RouteText)
	}

	return b.String()
}
