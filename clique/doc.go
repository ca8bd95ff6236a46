// Package clique enumerates maximal cliques of a graph, builds a size
// census, and derives the "core set": the union of the largest cliques'
// members.
//
// What
//
//   - MaximalCliques: Bron–Kerbosch with pivoting over bidirectional
//     adjacency (two nodes are adjacent when an edge exists in either
//     direction). Output order is deterministic: cliques sorted by size
//     descending, then lexicographically; members sorted ascending.
//   - Census: histogram of clique sizes; Σ counts = number of cliques.
//   - DeriveCoreSet: union of members of cliques matching a size policy,
//     Exactly(n) or Largest(topN) for the topN largest observed sizes.
//     No matching cliques is a valid outcome (empty set), not an error.
//
// Why
//
//	The densely interlocked heart of a communication network shows up as
//	overlapping large cliques. Unioning them yields the core group the
//	whole pipeline exists to find.
//
// Performance caveat
//
//	Maximal-clique enumeration is exponential in the worst case, an
//	inherent property of the problem. Run it on a ranked
//	subgraph, not the raw graph, and bound it when unsure:
//	WithMaxNodes skips enumeration outright on oversized inputs, and
//	WithContext / WithTimeBudget cut a running enumeration short. Both
//	produce Result.Partial=true rather than an error; whatever cliques were
//	already complete are returned.
//
// Usage
//
//	res, err := clique.MaximalCliques(sub, clique.WithTimeBudget(5*time.Second))
//	if err != nil {
//	    // ErrGraphNil or ErrOptionViolation
//	}
//	if res.Partial {
//	    // enumeration was cut short; res.Cliques is a usable prefix
//	}
//	core, _ := clique.DeriveCoreSet(res.Cliques, clique.Largest(2))
package clique
