// Package core: read-only Graph query methods.
//
// All methods here are safe for concurrent use: a Graph never changes after
// Build, so no locks are needed.
package core

import "sort"

// NodeCount returns the number of distinct nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// EdgeCount returns the total number of edge occurrences, counting each
// parallel edge separately. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns all node IDs in internal-index order (first appearance).
// The returned slice is a copy; callers may reorder it freely.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// HasNode reports whether id names a node of the graph. O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the dense internal index of id.
// Returns ErrNodeNotFound for unknown IDs. O(1).
func (g *Graph) IndexOf(id string) (int, error) {
	idx, ok := g.index[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return idx, nil
}

// IDOf returns the node ID at internal index idx.
// Returns ErrNodeNotFound when idx is outside [0, NodeCount). O(1).
func (g *Graph) IDOf(idx int) (string, error) {
	if idx < 0 || idx >= len(g.ids) {
		return "", ErrNodeNotFound
	}

	return g.ids[idx], nil
}

// HasArc reports whether at least one directed edge from→to exists. O(1).
func (g *Graph) HasArc(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}

	return g.out[u][v] > 0
}

// Connected reports whether a and b are adjacent in either direction.
// This is the bidirectional adjacency test used for clique analysis. O(1).
func (g *Graph) Connected(a, b string) bool {
	return g.HasArc(a, b) || g.HasArc(b, a)
}

// Multiplicity returns the number of parallel edges from→to.
// Unknown endpoints yield 0. O(1).
func (g *Graph) Multiplicity(from, to string) int {
	u, ok := g.index[from]
	if !ok {
		return 0
	}
	v, ok := g.index[to]
	if !ok {
		return 0
	}

	return g.out[u][v]
}

// Degree returns the combined degree of id: in-degree plus out-degree, with
// every parallel edge occurrence contributing 1 per incident endpoint.
// Under this convention the sum of all degrees equals 2×EdgeCount.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(distinct neighbors).
func (g *Graph) Degree(id string) (int, error) {
	u, ok := g.index[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	var deg int
	for _, m := range g.out[u] {
		deg += m
	}
	for _, m := range g.in[u] {
		deg += m
	}

	return deg, nil
}

// OutNeighbors returns the IDs reachable from id by a directed edge,
// in ascending lexicographic order.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(d log d).
func (g *Graph) OutNeighbors(id string) ([]string, error) {
	u, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.collect(g.out[u]), nil
}

// InNeighbors returns the IDs with a directed edge into id,
// in ascending lexicographic order.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) ([]string, error) {
	u, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.collect(g.in[u]), nil
}

// UndirectedNeighbors returns every ID adjacent to id in either direction,
// deduplicated and in ascending lexicographic order. This is the collapsed
// view used by eigenvector, coreness, and clique analysis.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(d log d).
func (g *Graph) UndirectedNeighbors(id string) ([]string, error) {
	u, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	seen := make(map[int]struct{}, len(g.out[u])+len(g.in[u]))
	for v := range g.out[u] {
		seen[v] = struct{}{}
	}
	for v := range g.in[u] {
		seen[v] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, g.ids[v])
	}
	sort.Strings(ids)

	return ids, nil
}

// Edges returns every edge occurrence, expanded from multiplicities, ordered
// by source index, then target index. The slice is freshly allocated.
// Complexity: O(E + P log P) where P is the number of distinct pairs.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	var targets []int
	for u := range g.ids {
		targets = targets[:0]
		for v := range g.out[u] {
			targets = append(targets, v)
		}
		sort.Ints(targets)
		for _, v := range targets {
			for k := 0; k < g.out[u][v]; k++ {
				out = append(out, Edge{From: g.ids[u], To: g.ids[v]})
			}
		}
	}

	return out
}

// collect materializes a neighbor map's IDs in sorted order.
func (g *Graph) collect(adj map[int]int) []string {
	ids := make([]string, 0, len(adj))
	for v := range adj {
		ids = append(ids, g.ids[v])
	}
	sort.Strings(ids)

	return ids
}
