// Package rank: the selection itself.
package rank

import (
	"sort"

	"github.com/katalvlaran/corenet/core"
)

// SelectTopK ranks g's nodes by metric (descending, NodeID-ascending ties)
// and returns the induced subgraph of the first k together with its Mapping.
//
// Nodes absent from metric rank as 0. The subgraph preserves edge
// multiplicities and keeps selected nodes even when they have no internal
// edges; its internal index order is exactly the rank order.
//
// Returns ErrGraphNil, ErrBadK (k ≤ 0), or ErrInsufficientNodes (k > nodes).
// Complexity: O(V log V + E).
func SelectTopK(g *core.Graph, metric map[string]float64, k int) (*core.Graph, *Mapping, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if k <= 0 {
		return nil, nil, ErrBadK
	}
	nodes := g.Nodes()
	if k > len(nodes) {
		return nil, nil, ErrInsufficientNodes
	}

	// 1) Total order: metric descending, NodeID ascending on ties.
	sort.SliceStable(nodes, func(i, j int) bool {
		mi, mj := metric[nodes[i]], metric[nodes[j]]
		if mi != mj {
			return mi > mj
		}

		return nodes[i] < nodes[j]
	})
	selected := nodes[:k]

	// 2) Induce: keep every edge occurrence with both endpoints selected.
	chosen := make(map[string]struct{}, k)
	for _, id := range selected {
		chosen[id] = struct{}{}
	}
	var kept []core.Edge
	for _, e := range g.Edges() {
		if _, okF := chosen[e.From]; !okF {
			continue
		}
		if _, okT := chosen[e.To]; !okT {
			continue
		}
		kept = append(kept, e)
	}

	sub, err := core.BuildWithNodes(selected, kept)
	if err != nil {
		return nil, nil, err
	}

	return sub, newMapping(selected), nil
}
