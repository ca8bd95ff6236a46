// Package centrality: eigenvector centrality via power iteration.
//
// The adjacency is treated as undirected presence/absence: a reply-heavy pair
// and a one-sided pair weigh the same here; multiplicity is degree's job.
package centrality

import (
	"math"

	"github.com/katalvlaran/corenet/core"
)

// Eigenvector computes eigenvector centrality: each node's score is
// proportional to the sum of its neighbors' scores, i.e. the principal
// eigenvector of the undirected collapsed adjacency matrix.
//
// Power iteration runs on the shifted operator A+I — same principal
// eigenvector as A, but immune to the sign-flip oscillation plain iteration
// exhibits on bipartite graphs — until the max component delta between
// successive normalized iterates falls below the tolerance, or the iteration
// cap is reached. The cap is not an error: the best estimate is returned
// with Converged=false. Final scores are scaled so the maximum component is
// 1 (all-zero when the graph has no edges).
// Returns ErrGraphNil or ErrOptionViolation.
// Complexity: O(iter·(V + E)).
func Eigenvector(g *core.Graph, opts ...EigenOption) (EigenResult, error) {
	if g == nil {
		return EigenResult{}, ErrGraphNil
	}
	o := defaultEigenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return EigenResult{}, o.err
	}

	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return EigenResult{Scores: map[string]float64{}, Converged: true}, nil
	}

	// Undirected collapsed adjacency as index slices.
	adj := make([][]int, n)
	for i, id := range nodes {
		nbrs, _ := g.UndirectedNeighbors(id)
		adj[i] = make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, _ := g.IndexOf(nbr)
			adj[i] = append(adj[i], j)
		}
	}

	// Power iteration from the uniform vector.
	var (
		x         = make([]float64, n)
		next      = make([]float64, n)
		norm      float64
		diff      float64
		converged bool
		iter      int
	)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	edgeless := true
	for i := range adj {
		if len(adj[i]) > 0 {
			edgeless = false
			break
		}
	}
	if edgeless {
		// The zero vector is the only meaningful fixed point.
		scores := make(map[string]float64, n)
		for _, id := range nodes {
			scores[id] = 0
		}

		return EigenResult{Scores: scores, Converged: true}, nil
	}
	for iter = 0; iter < o.maxIter; iter++ {
		norm = 0
		for i := range next {
			next[i] = x[i] // identity shift
			for _, j := range adj[i] {
				next[i] += x[j]
			}
			norm += next[i] * next[i]
		}
		norm = math.Sqrt(norm)
		diff = 0
		for i := range next {
			next[i] /= norm
			if d := math.Abs(next[i] - x[i]); d > diff {
				diff = d
			}
		}
		x, next = next, x
		if diff < o.tol {
			converged = true
			iter++
			break
		}
	}

	// Scale so the maximum component is 1.
	var maxC float64
	for _, v := range x {
		if v > maxC {
			maxC = v
		}
	}
	scores := make(map[string]float64, n)
	for i, id := range nodes {
		if maxC > 0 {
			scores[id] = x[i] / maxC
		} else {
			scores[id] = 0
		}
	}

	return EigenResult{Scores: scores, Converged: converged, Iterations: iter}, nil
}
