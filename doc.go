// Package corenet is an in-memory toolkit for distilling the "core" of a
// communication network: who talks to whom, and which densely connected
// group sits in the middle of it all.
//
// 🚀 What is corenet?
//
//	A batch graph-analytics pipeline that brings together:
//		• Sanitization: filter sentinel endpoints & self-loops from raw edge streams
//		• Core primitives: immutable directed multigraphs with stable dense indexing
//		• Centrality: degree, betweenness (Brandes), eigenvector, k-core coreness
//		• Ranking: top-K induced-subgraph extraction with ID↔index round-tripping
//		• Cliques: Bron–Kerbosch maximal cliques, size census, core-set derivation
//		• Pipeline: one call from raw edges to the full metric & clique report
//
// ✨ Why choose corenet?
//
//   - Deterministic – every ordering (ranking ties, peel order, clique output)
//     is fixed and documented, so two runs over the same data agree byte-for-byte
//   - Honest about identity – subgraphs carry an explicit NodeID↔index mapping;
//     results are always reportable against the original identifiers
//   - Pure functions – graphs are immutable after construction; every analysis
//     step is a side-effect-free function over its inputs
//
// Under the hood, everything is organized in per-concern subpackages:
//
//	sanitize/   — raw edge-stream filtering with drop-count reporting
//	core/       — directed multigraph, first-appearance dense indexing
//	centrality/ — degree, betweenness, eigenvector, coreness
//	rank/       — metric-ranked top-K induced-subgraph selection
//	clique/     — maximal cliques, census, core-set derivation
//	pipeline/   — end-to-end orchestration with concurrent metric fan-out
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲ ╲ │
//	    │  ╲▼
//	    C◀──D
//
//	four mailboxes, five messages: a multigraph the pipeline reduces to
//	metrics, cliques, and a core group.
//
//	go get github.com/katalvlaran/corenet
package corenet
