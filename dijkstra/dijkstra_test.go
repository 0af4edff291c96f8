// Package dijkstra_test contains unit tests for ShortestPath, Tree and WithinBudget.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

// buildTriangle returns A—B(1), B—C(2), A—C(5) and an isolated vertex Z.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddVertex("Z"))

	return g
}

// buildRandom returns a graph with n vertices and roughly m random edges with
// integer weights in [0,9]. The generator is seeded for reproducibility.
func buildRandom(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// duplicates are rejected by core and simply skipped here
		_ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(r.Intn(10)))
	}

	return g
}

// floydWarshall computes all-pairs distances by brute force.
func floydWarshall(g *core.Graph) map[string]map[string]float64 {
	vs := g.Vertices()
	d := make(map[string]map[string]float64, len(vs))
	for _, a := range vs {
		d[a] = make(map[string]float64, len(vs))
		for _, b := range vs {
			d[a][b] = math.Inf(1)
		}
		d[a][a] = 0
	}
	for _, e := range g.Edges() {
		d[e.From][e.To] = e.Weight
		d[e.To][e.From] = e.Weight
	}
	for _, k := range vs {
		for _, i := range vs {
			for _, j := range vs {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// pathCost sums the edge weights along p, failing if an edge is missing.
func pathCost(t *testing.T, g *core.Graph, p []string) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		require.NoError(t, err, "path step %s→%s", p[i-1], p[i])
		sum += w
	}

	return sum
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_Validation(t *testing.T) {
	g := buildTriangle(t)

	_, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(g, "", "B")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPath(g, "A", "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptyTarget)

	_, err = dijkstra.ShortestPath(g, "X", "B")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	// start == goal still requires the vertex to exist
	_, err = dijkstra.ShortestPath(g, "X", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestTree_Validation(t *testing.T) {
	_, err := dijkstra.Tree(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Tree(buildTriangle(t), "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Tree(buildTriangle(t), "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestWithinBudget_Validation(t *testing.T) {
	_, err := dijkstra.WithinBudget(nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilTree)

	tree, err := dijkstra.Tree(buildTriangle(t), "A")
	require.NoError(t, err)

	_, err = dijkstra.WithinBudget(tree, -1)
	assert.ErrorIs(t, err, dijkstra.ErrBadBudget)

	_, err = dijkstra.WithinBudget(tree, math.NaN())
	assert.ErrorIs(t, err, dijkstra.ErrBadBudget)
}

// ------------------------------------------------------------------------
// 2. Small graphs
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	g := buildTriangle(t)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := buildTriangle(t)
	for _, v := range g.Vertices() {
		res, err := dijkstra.ShortestPath(g, v, v)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.PathResult{Path: []string{v}, Cost: 0, Found: true}, res)
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	g := buildTriangle(t)

	res, err := dijkstra.ShortestPath(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
}

func TestShortestPath_StaleEntriesSkipped(t *testing.T) {
	// S reaches T directly for 10 and through A, B for 3; T is pushed twice
	// and the first (stale, cost 10) entry must not win.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "T", 10))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "T", 1))

	res, err := dijkstra.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "T"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	tree, err := dijkstra.Tree(g, "S")
	require.NoError(t, err)
	assert.Equal(t, 3.0, tree.Dist["T"])
	assert.Equal(t, "B", tree.Prev["T"])
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestShortestPath_WalksForwardEdgesOnly(t *testing.T) {
	// one-directional data: A→B exists, B→A does not
	g, err := core.FromAdjacency(map[string]map[string]float64{
		"A": {"B": 1},
		"B": {},
	})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = dijkstra.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestTree_Triangle(t *testing.T) {
	tree, err := dijkstra.Tree(buildTriangle(t), "A")
	require.NoError(t, err)

	assert.Equal(t, "A", tree.Source)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "Z": math.Inf(1)}, tree.Dist)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B", "Z": ""}, tree.Prev)
	assert.True(t, tree.Reachable("C"))
	assert.False(t, tree.Reachable("Z"))
	assert.False(t, tree.Reachable("nope"))

	p, err := tree.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Path)

	p, err = tree.PathTo("Z")
	require.NoError(t, err)
	assert.False(t, p.Found)

	_, err = tree.PathTo("nope")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestTree_BrokenPredecessor(t *testing.T) {
	tree := &dijkstra.TreeResult{
		Source: "A",
		Dist:   map[string]float64{"A": 0, "B": 1, "C": 2},
		Prev:   map[string]string{"A": "", "B": "C", "C": "B"},
	}
	_, err := tree.PathTo("C")
	assert.ErrorIs(t, err, dijkstra.ErrBrokenPredecessor)

	tree.Prev["B"] = ""
	_, err = tree.PathTo("C")
	assert.ErrorIs(t, err, dijkstra.ErrBrokenPredecessor)
}

func TestWithinBudget_Triangle(t *testing.T) {
	tree, err := dijkstra.Tree(buildTriangle(t), "A")
	require.NoError(t, err)

	view, err := dijkstra.WithinBudget(tree, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, view.IDs())
	assert.Equal(t, [][2]string{{"A", "B"}}, view.Edges)

	view, err = dijkstra.WithinBudget(tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, view.IDs())
	assert.Empty(t, view.Edges)

	// an infinite budget still leaves the unreachable Z out
	view, err = dijkstra.WithinBudget(tree, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, view.IDs())
	for _, r := range view.Vertices {
		assert.True(t, tree.Reachable(r.ID), r.ID)
	}
}

// ------------------------------------------------------------------------
// 3. Reference campus graph
// ------------------------------------------------------------------------

func TestCampus_FrontGateToLab(t *testing.T) {
	g := campus.Graph()

	res, err := dijkstra.ShortestPath(g, campus.FrontGate, campus.Lab)
	require.NoError(t, err)
	// Library—Lab (4) makes Front Gate → Library → Lab the unique minimum,
	// cheaper than both → Canteen → Lab (7) and → Library → Hostel → Lab (7).
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, []string{campus.FrontGate, campus.Library, campus.Lab}, res.Path)
	assert.Equal(t, res.Cost, pathCost(t, g, res.Path))
}

func TestCampus_TreeFromFrontGate(t *testing.T) {
	tree, err := dijkstra.Tree(campus.Graph(), campus.FrontGate)
	require.NoError(t, err)

	assert.Equal(t, 5.0, tree.Dist[campus.ResearchBlock])
	assert.Equal(t, campus.Library, tree.Prev[campus.ResearchBlock])
	assert.Equal(t, map[string]float64{
		campus.FrontGate:      0,
		campus.Library:        2,
		campus.Admin:          3,
		campus.Canteen:        4,
		campus.Hostel:         5,
		campus.ResearchBlock:  5,
		campus.Lab:            6,
		campus.Auditorium:     7,
		campus.CulturalCenter: 8,
		campus.SportsComplex:  10,
		campus.Parking:        11,
		campus.Ground:         11,
		campus.BackGate:       14,
	}, tree.Dist)
}

func TestCampus_WithinBudgetFour(t *testing.T) {
	g := campus.Graph()
	tree, err := dijkstra.Tree(g, campus.FrontGate)
	require.NoError(t, err)

	view, err := dijkstra.WithinBudget(tree, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{campus.FrontGate, campus.Library, campus.Admin, campus.Canteen}, view.IDs())
	assert.Equal(t, [][2]string{
		{campus.FrontGate, campus.Library},
		{campus.FrontGate, campus.Admin},
		{campus.FrontGate, campus.Canteen},
	}, view.Edges)

	// exactly the vertices whose true distance is within budget
	truth := floydWarshall(g)[campus.FrontGate]
	want := 0
	for _, d := range truth {
		if d <= 4 {
			want++
		}
	}
	assert.Len(t, view.Vertices, want)
	for _, r := range view.Vertices {
		assert.Equal(t, truth[r.ID], r.Dist, r.ID)
	}
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

func TestProperty_PathMatchesTreeAndBruteForce(t *testing.T) {
	graphs := map[string]*core.Graph{
		"campus": campus.Graph(),
		"random": buildRandom(t, 7, 25, 60),
		"sparse": buildRandom(t, 11, 30, 25),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			truth := floydWarshall(g)
			for _, s := range g.Vertices() {
				tree, err := dijkstra.Tree(g, s)
				require.NoError(t, err)
				for _, goal := range g.Vertices() {
					res, err := dijkstra.ShortestPath(g, s, goal)
					require.NoError(t, err)
					assert.Equal(t, truth[s][goal], res.Cost, "%s→%s", s, goal)
					assert.Equal(t, tree.Dist[goal], res.Cost, "%s→%s", s, goal)
					assert.Equal(t, !math.IsInf(truth[s][goal], 1), res.Found)
					if res.Found {
						assert.Equal(t, s, res.Path[0])
						assert.Equal(t, goal, res.Path[len(res.Path)-1])
						assert.Equal(t, res.Cost, pathCost(t, g, res.Path))
					}
				}
			}
		})
	}
}

func TestProperty_TriangleInequality(t *testing.T) {
	g := campus.Graph()
	dist := make(map[string]map[string]float64)
	for _, v := range g.Vertices() {
		tree, err := dijkstra.Tree(g, v)
		require.NoError(t, err)
		dist[v] = tree.Dist
	}
	for _, a := range g.Vertices() {
		for _, b := range g.Vertices() {
			for _, c := range g.Vertices() {
				assert.LessOrEqual(t, dist[a][c], dist[a][b]+dist[b][c], "%s %s %s", a, b, c)
			}
		}
	}
}

func TestProperty_Idempotent(t *testing.T) {
	g := campus.Graph()

	first, err := dijkstra.ShortestPath(g, campus.FrontGate, campus.BackGate)
	require.NoError(t, err)
	second, err := dijkstra.ShortestPath(g, campus.FrontGate, campus.BackGate)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t1, err := dijkstra.Tree(g, campus.Hostel)
	require.NoError(t, err)
	t2, err := dijkstra.Tree(g, campus.Hostel)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)
}

func TestProperty_ConcurrentQueries(t *testing.T) {
	g := campus.Graph()
	want, err := dijkstra.Tree(g, campus.FrontGate)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := dijkstra.Tree(g, campus.FrontGate)
			assert.NoError(t, err)
			assert.Equal(t, want.Dist, got.Dist)
			res, err := dijkstra.ShortestPath(g, campus.FrontGate, campus.ResearchBlock)
			assert.NoError(t, err)
			assert.Equal(t, 5.0, res.Cost)
		}()
	}
	wg.Wait()
}
