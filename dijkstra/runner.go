package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// runner holds the mutable state for a single search.
type runner struct {
	g      *core.Graph        // read-only input
	source string             // start vertex
	target string             // goal vertex; "" runs to exhaustion
	dist   map[string]float64 // vertex ID → best known cost from source
	prev   map[string]string  // vertex ID → predecessor on the best path
	pq     nodePQ             // lazy min-heap of frontier entries
}

// newRunner initializes dist[v] = +Inf and prev[v] = "" for every vertex,
// dist[source] = 0, and seeds the frontier with (0, source).
func newRunner(g *core.Graph, source, target string) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:      g,
		source: source,
		target: target,
		dist:   make(map[string]float64, len(vertices)),
		prev:   make(map[string]string, len(vertices)),
		pq:     make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Inf
		r.prev[v] = ""
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// run pops the cheapest frontier entry until the heap is empty or the target
// is popped. Entries whose cost differs from the recorded best are stale.
func (r *runner) run() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist != r.dist[item.id] {
			continue
		}
		if r.target != "" && item.id == r.target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves every neighbor v of u for which dist[u] + w < dist[v].
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, n := range neighbors {
		best, known := r.dist[n.ID]
		if !known {
			// neighbor added after the vertex snapshot was taken
			best = Inf
		}
		nd := du + n.Weight
		if nd >= best {
			continue
		}
		r.dist[n.ID] = nd
		r.prev[n.ID] = u
		heap.Push(&r.pq, &nodeItem{id: n.ID, dist: nd})
	}

	return nil
}

// pathTo walks prev from goal back to the source and reverses the result.
// The walk is bounded by the number of recorded vertices so a corrupted chain
// cannot loop forever.
func (r *runner) pathTo(goal string) ([]string, error) {
	return walkBack(r.prev, r.source, goal)
}

func walkBack(prev map[string]string, source, goal string) ([]string, error) {
	path := []string{goal}
	for cur := goal; cur != source; {
		p := prev[cur]
		if p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: stuck at %q walking %q→%q", ErrBrokenPredecessor, cur, source, goal)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem is a frontier entry: a vertex and the tentative cost it was pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Stale entries stay in the
// heap and are discarded on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
