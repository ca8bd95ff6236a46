// Package core provides the immutable directed-multigraph value every other
// corenet package operates on.
//
// What
//
//   - Build a Graph once from a sanitized edge list; read it forever after.
//   - Nodes are opaque string IDs; each also receives a dense internal index
//     in [0, n), assigned in first-appearance order over the edge list
//     (source before target). The ID↔index lookup is exposed in both
//     directions via IndexOf and IDOf.
//   - Parallel edges between the same ordered pair are preserved as
//     multiplicities: each occurrence is one communication event.
//   - Self-loops and empty IDs never enter a Graph; Build rejects them
//     (they are filtered upstream by the sanitize package).
//
// Why
//
//   - Downstream analyses (centrality, ranking, cliques) need a single
//     read-only structure they can share across goroutines without locks.
//   - Deterministic indexing makes every later ordering reproducible: the
//     same edge list always yields the same indices, so ranked selections
//     and peel orders agree between runs.
//
// Determinism
//
//	Node indices follow first appearance in the input edge sequence.
//	Nodes() returns IDs in index order; UndirectedNeighbors returns IDs in
//	ascending lexicographic order. No map-iteration order ever leaks into
//	results.
//
// Complexity (V = |nodes|, E = |edge occurrences|)
//
//   - Build:   O(V + E) time, O(V + distinct pairs) memory
//   - Queries: O(1) for HasArc/Connected/Multiplicity/Degree,
//     O(d log d) for UndirectedNeighbors
//
// Usage
//
//	g, err := core.Build([]core.Edge{
//	    {From: "ann", To: "bob"},
//	    {From: "bob", To: "ann"},
//	    {From: "ann", To: "bob"}, // second message, kept as multiplicity 2
//	})
//	if err != nil {
//	    // ErrEmptyNodeID or ErrSelfLoop, wrapped with the offending edge
//	}
//	g.Degree("ann") // 3
package core
