// Package centrality: combined degree.
package centrality

import "github.com/katalvlaran/corenet/core"

// Degree returns the combined in+out degree of every node, with each parallel
// edge occurrence contributing 1 per incident endpoint.
//
// Convention (fixed, tested): Σ over all nodes of Degree == 2 × g.EdgeCount().
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V + E).
func Degree(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(map[string]int, g.NodeCount())
	for _, id := range g.Nodes() {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}

	return out, nil
}
