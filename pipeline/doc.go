// Package pipeline runs the whole corenet analysis in one call: raw edge
// records in, core-group report out.
//
// What
//
//	Run executes the batch flow:
//	  1. sanitize — filter sentinel endpoints and self-loops, log the tallies;
//	  2. build    — materialize the immutable directed multigraph;
//	  3. rank     — degree-rank all nodes, induce the top-K subgraph with its
//	     NodeID mapping;
//	  4. analyze  — betweenness, eigenvector, coreness, and maximal cliques
//	     over the subgraph, computed concurrently (the subgraph is immutable,
//	     so the four computations share it without locks);
//	  5. report   — assemble per-node metrics keyed by original NodeID, the
//	     clique census, and the derived core set.
//
// Why
//
//	Each stage is an independently tested pure function; the pipeline only
//	wires them, injects the configuration surface (K, clique policy,
//	eigenvector tolerance and cap, budgets), and reports progress through a
//	structured logger (zap; a no-op logger by default).
//
// Degraded outcomes
//
//	Non-convergent eigenvector iteration and budget-limited clique
//	enumeration are not failures: they surface as Result.EigenConverged and
//	Result.CliquesPartial flags while the rest of the report stays intact.
//
// Usage
//
//	res, err := pipeline.Run(ctx, records,
//	    pipeline.WithTopK(50),
//	    pipeline.WithCorePolicy(clique.Largest(2)),
//	    pipeline.WithLogger(logger),
//	)
//	if err != nil {
//	    // sanitize.ErrMalformedInput, rank.ErrInsufficientNodes, …
//	}
//	for id, m := range res.Metrics {
//	    fmt.Println(id, m.Degree, m.Betweenness, m.Eigenvector, m.Coreness)
//	}
package pipeline
