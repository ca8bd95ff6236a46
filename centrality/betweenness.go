// Package centrality: betweenness via Brandes' algorithm.
//
// The directed graph is traversed with parallel edges collapsed to a single
// unit arc: three messages along the same arc open no extra shortest paths.
package centrality

import (
	"github.com/katalvlaran/corenet/core"
)

// Betweenness computes betweenness centrality for every node: the number of
// shortest directed (s,t) paths passing through it, accumulated over all
// ordered source/target pairs with Brandes' dependency back-propagation.
//
// Disconnected graphs are handled naturally — unreachable pairs contribute
// zero. With WithNormalized, scores are divided by (n−1)(n−2) when n ≥ 3.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V·E) time, O(V + E) memory.
func Betweenness(g *core.Graph, opts ...BetweennessOption) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o betweennessOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	adj := indexAdjacency(g)
	cb := make([]float64, n)

	// Reusable per-source state.
	var (
		dist  = make([]int, n)
		sigma = make([]float64, n)
		delta = make([]float64, n)
		pred  = make([][]int, n)
		stack = make([]int, 0, n)
		queue = make([]int, 0, n)
	)
	for s := 0; s < n; s++ {
		// Phase 1: BFS from s, counting shortest paths.
		stack = stack[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		dist[s] = 0
		sigma[s] = 1
		queue = append(queue, s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		// Phase 2: back-propagate pair dependencies in reverse BFS order.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	if o.normalized && n >= 3 {
		norm := float64((n - 1) * (n - 2))
		for i := range cb {
			cb[i] /= norm
		}
	}

	out := make(map[string]float64, n)
	for i, id := range g.Nodes() {
		out[id] = cb[i]
	}

	return out, nil
}

// indexAdjacency flattens the graph's collapsed out-neighbor relation to
// dense index slices, in index order, for tight traversal loops.
func indexAdjacency(g *core.Graph) [][]int {
	nodes := g.Nodes()
	adj := make([][]int, len(nodes))
	for i, id := range nodes {
		nbrs, _ := g.OutNeighbors(id)
		adj[i] = make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, _ := g.IndexOf(nbr)
			adj[i] = append(adj[i], j)
		}
	}

	return adj
}
