// Package core: Graph construction.
//
// Build is the only way to obtain a Graph; after it returns, the Graph is
// read-only by contract.
package core

import "fmt"

// Build constructs an immutable directed multigraph from a sanitized edge
// list.
//
// Node indices are assigned in first-appearance order over the edge sequence,
// source endpoint before target, so the same input always produces the same
// indexing. Every node referenced by at least one edge appears exactly once;
// isolated nodes cannot occur by construction.
//
// Returns ErrEmptyNodeID or ErrSelfLoop (wrapped with the offending edge and
// its position) when an unsanitized record slips through.
// Complexity: O(V + E) time.
func Build(edges []Edge) (*Graph, error) {
	g := &Graph{
		index: make(map[string]int),
	}

	var (
		e      Edge
		u, v   int
		pos    int
		exists bool
	)
	for pos, e = range edges {
		// 1) Validate: sanitize should have removed these already.
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d (%q→%q)", ErrEmptyNodeID, pos, e.From, e.To)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge #%d (%q)", ErrSelfLoop, pos, e.From)
		}

		// 2) Intern endpoints in first-appearance order.
		if u, exists = g.index[e.From]; !exists {
			u = g.intern(e.From)
		}
		if v, exists = g.index[e.To]; !exists {
			v = g.intern(e.To)
		}

		// 3) Record the occurrence in both adjacency directions.
		g.out[u][v]++
		g.in[v][u]++
		g.edgeCount++
	}

	return g, nil
}

// BuildWithNodes constructs a Graph whose node set is given explicitly, in
// the supplied order, independent of the edge list. Unlike Build, nodes that
// no edge touches are retained — induced subgraphs of a ranked selection may
// legitimately contain members with no internal traffic.
//
// Node indices follow the nodes slice exactly. Every edge endpoint must name
// a listed node; a stray endpoint fails with ErrNodeNotFound. Empty entries
// in nodes fail with ErrEmptyNodeID, repeated ones with ErrDuplicateNode.
// Complexity: O(V + E) time.
func BuildWithNodes(nodes []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		index: make(map[string]int, len(nodes)),
	}
	for _, id := range nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		g.intern(id)
	}

	var (
		e      Edge
		u, v   int
		pos    int
		exists bool
	)
	for pos, e = range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge #%d (%q)", ErrSelfLoop, pos, e.From)
		}
		if u, exists = g.index[e.From]; !exists {
			return nil, fmt.Errorf("%w: edge #%d endpoint %q", ErrNodeNotFound, pos, e.From)
		}
		if v, exists = g.index[e.To]; !exists {
			return nil, fmt.Errorf("%w: edge #%d endpoint %q", ErrNodeNotFound, pos, e.To)
		}
		g.out[u][v]++
		g.in[v][u]++
		g.edgeCount++
	}

	return g, nil
}

// intern registers a new node ID and returns its fresh dense index.
func (g *Graph) intern(id string) int {
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.out = append(g.out, make(map[int]int))
	g.in = append(g.in, make(map[int]int))

	return idx
}
