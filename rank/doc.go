// Package rank selects the top-K nodes of a graph by a metric and extracts
// their induced subgraph, without ever losing track of who is who.
//
// What
//
//   - Sort nodes by metric descending; break ties by NodeID ascending —
//     a fixed, documented total order, so selection is deterministic.
//   - Keep the first K; induce the subgraph containing exactly those nodes
//     and every original edge (multiplicity preserved) with both endpoints
//     inside the selection. Members with no internal traffic stay in.
//   - Return the subgraph together with an explicit Mapping: new internal
//     index ↔ original NodeID, both directions. The subgraph's index i is
//     rank position i, so Mapping.ID(0) is the top-ranked node.
//
// Why
//
//	Reindexing a subgraph and then reporting results against positions is a
//	classic source of silent misattribution. The Mapping makes the
//	identity contract explicit instead of positional: every downstream
//	result stays reportable against original identifiers.
//
// Usage
//
//	sub, m, err := rank.SelectTopK(g, metric, 50)
//	if err != nil {
//	    // ErrGraphNil, ErrBadK, or ErrInsufficientNodes
//	}
//	top, _ := m.ID(0) // the highest-ranked original NodeID
package rank
