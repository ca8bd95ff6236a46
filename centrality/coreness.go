// Package centrality: k-core coreness via degeneracy peeling.
package centrality

import "github.com/katalvlaran/corenet/core"

// Coreness computes the k-core index of every node over the undirected
// collapsed graph: nodes of minimum current degree are removed one at a time,
// each receiving the highest minimum degree observed so far as its coreness.
//
// Tie-break (fixed, tested): among nodes sharing the minimum degree, the one
// with the lexicographically smallest NodeID is removed first, making the
// peel order — and therefore the result — fully reproducible.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V² + E); V is expected to be small post-ranking.
func Coreness(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	n := len(nodes)

	// Undirected collapsed adjacency and live degrees, by dense index.
	var (
		adj     = make([][]int, n)
		degree  = make([]int, n)
		removed = make([]bool, n)
	)
	for i, id := range nodes {
		nbrs, _ := g.UndirectedNeighbors(id)
		adj[i] = make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, _ := g.IndexOf(nbr)
			adj[i] = append(adj[i], j)
		}
		degree[i] = len(adj[i])
	}

	var (
		coreness = make([]int, n)
		level    int // current peel level, never decreases
		victim   int
	)
	for peeled := 0; peeled < n; peeled++ {
		// Select the minimum-degree survivor, smallest NodeID on ties.
		victim = -1
		for i := 0; i < n; i++ {
			if removed[i] {
				continue
			}
			if victim < 0 ||
				degree[i] < degree[victim] ||
				(degree[i] == degree[victim] && nodes[i] < nodes[victim]) {
				victim = i
			}
		}
		if degree[victim] > level {
			level = degree[victim]
		}
		coreness[victim] = level
		removed[victim] = true
		for _, j := range adj[victim] {
			if !removed[j] {
				degree[j]--
			}
		}
	}

	out := make(map[string]int, n)
	for i, id := range nodes {
		out[id] = coreness[i]
	}

	return out, nil
}
