package prim_kruskal

// DisjointSet implements union-find with path compression and union by rank.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	count  int
}

// NewDisjointSet creates a DisjointSet where each id is its own singleton set.
func NewDisjointSet(ids []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := ds.parent[id]; ok {
			continue
		}
		ds.parent[id] = id
		ds.rank[id] = 0
		ds.count++
	}

	return ds
}

// Find returns the representative of the set containing u, compressing the path.
// An unknown u is its own representative and is not added.
func (ds *DisjointSet) Find(u string) string {
	if _, ok := ds.parent[u]; !ok {
		return u
	}
	for ds.parent[u] != u {
		// point u at its grandparent (path halving)
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// Union merges the sets containing u and v. It reports false when they were
// already in the same set or when either ID was never added.
func (ds *DisjointSet) Union(u, v string) bool {
	if !ds.Has(u) || !ds.Has(v) {
		return false
	}
	rootU, rootV := ds.Find(u), ds.Find(v)
	if rootU == rootV {
		return false
	}
	if ds.rank[rootU] < ds.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	ds.parent[rootV] = rootU
	if ds.rank[rootU] == ds.rank[rootV] {
		ds.rank[rootU]++
	}
	ds.count--

	return true
}

// Connected reports whether u and v are in the same set. IDs that were never
// added are connected to nothing, not even themselves.
func (ds *DisjointSet) Connected(u, v string) bool {
	if !ds.Has(u) || !ds.Has(v) {
		return false
	}

	return ds.Find(u) == ds.Find(v)
}

// Has reports whether id was added to the set.
func (ds *DisjointSet) Has(id string) bool {
	_, ok := ds.parent[id]

	return ok
}

// Count returns the current number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }
