// Package centrality computes the structural metric suite over an immutable
// core.Graph: degree, betweenness, eigenvector centrality, and k-core
// coreness.
//
// What
//
//   - Degree: in-degree + out-degree per node; every parallel edge occurrence
//     counts 1 per incident endpoint, so Σ degree = 2×|edges|.
//   - Betweenness: Brandes' algorithm over the directed graph, parallel edges
//     collapsed to a single unit arc for shortest-path purposes; unreachable
//     pairs contribute zero; optional (n−1)(n−2) normalization.
//   - Eigenvector: power iteration on the undirected presence/absence
//     adjacency, scores scaled so the maximum component is 1. Hitting the
//     iteration cap is not an error: the best estimate is returned with
//     Converged=false.
//   - Coreness: iterative degeneracy peeling over the undirected collapsed
//     graph; minimum-degree ties are removed in ascending NodeID order.
//
// Why
//
//	These four metrics together separate the merely loud (high degree) from
//	the structurally central (betweenness, eigenvector) and the densely
//	embedded (coreness) — the signals used to pick and characterize a
//	network's core group.
//
// Determinism
//
//	Every function is pure and every internal ordering is fixed (node index
//	order for iteration, NodeID order for peel ties), so repeated runs over
//	the same Graph return identical results.
//
// Independence
//
//	The four computations share nothing but the read-only Graph; callers may
//	run them concurrently over the same value (see pipeline).
//
// Complexity (V = |nodes|, E = |distinct arcs|)
//
//   - Degree:      O(V + E)
//   - Betweenness: O(V·E) time, O(V + E) memory (Brandes, unweighted)
//   - Eigenvector: O(iter·(V + E))
//   - Coreness:    O(V² + E) (simple selection scan; V is small post-ranking)
package centrality
