// Package pipeline: the orchestration itself.
package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/corenet/centrality"
	"github.com/katalvlaran/corenet/clique"
	"github.com/katalvlaran/corenet/core"
	"github.com/katalvlaran/corenet/rank"
	"github.com/katalvlaran/corenet/sanitize"
)

// Run executes the full analysis over raw edge records and returns the
// assembled report.
//
// Stage errors (malformed input, K exceeding the node count, invalid
// options) propagate immediately with their package sentinels. Degraded
// metric outcomes (eigenvector non-convergence, budget-cut clique
// enumeration) are flags on the Result, never errors.
//
// The ctx bounds the whole run; cancelling it aborts Run with ctx.Err().
// Clique time budgets, by contrast, degrade to a partial result.
func Run(ctx context.Context, records []sanitize.RawEdge, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.logger

	// Stage 1: sanitize.
	var sanOpts []sanitize.Option
	if o.sentinel != "" {
		sanOpts = append(sanOpts, sanitize.WithSentinel(o.sentinel))
	}
	edges, report, err := sanitize.Sanitize(records, sanOpts...)
	if err != nil {
		return nil, err
	}
	log.Info("sanitized edge stream",
		zap.Int("input", report.Input),
		zap.Int("kept", report.Kept),
		zap.Int("dropped_sentinel", report.DroppedSentinel),
		zap.Int("dropped_self_loop", report.DroppedSelfLoop),
	)

	// Stage 2: build the full graph.
	g, err := core.Build(edges)
	if err != nil {
		return nil, err
	}
	log.Info("graph built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	// Stage 3: degree-rank and induce the top-K subgraph.
	deg, err := centrality.Degree(g)
	if err != nil {
		return nil, err
	}
	metric := make(map[string]float64, len(deg))
	for id, d := range deg {
		metric[id] = float64(d)
	}
	sub, mapping, err := rank.SelectTopK(g, metric, o.topK)
	if err != nil {
		return nil, err
	}
	log.Info("top-K subgraph selected",
		zap.Int("k", o.topK),
		zap.Int("edges", sub.EdgeCount()),
	)

	// Stage 4: the metric suite and clique enumeration, concurrently over
	// the immutable subgraph.
	var (
		subDeg   map[string]int
		between  map[string]float64
		eigen    centrality.EigenResult
		coreness map[string]int
		cliques  clique.Result
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var gErr error
		subDeg, gErr = centrality.Degree(sub)
		return gErr
	})
	eg.Go(func() error {
		var gErr error
		between, gErr = centrality.Betweenness(sub, centrality.WithNormalized())
		return gErr
	})
	eg.Go(func() error {
		var eigenOpts []centrality.EigenOption
		if o.eigenTol > 0 {
			eigenOpts = append(eigenOpts, centrality.WithTolerance(o.eigenTol))
		}
		if o.eigenMaxIter > 0 {
			eigenOpts = append(eigenOpts, centrality.WithMaxIterations(o.eigenMaxIter))
		}
		var gErr error
		eigen, gErr = centrality.Eigenvector(sub, eigenOpts...)
		return gErr
	})
	eg.Go(func() error {
		var gErr error
		coreness, gErr = centrality.Coreness(sub)
		return gErr
	})
	eg.Go(func() error {
		cliqueOpts := []clique.Option{clique.WithContext(egCtx)}
		if o.cliqueMaxN > 0 {
			cliqueOpts = append(cliqueOpts, clique.WithMaxNodes(o.cliqueMaxN))
		}
		if o.cliqueBudget > 0 {
			cliqueOpts = append(cliqueOpts, clique.WithTimeBudget(o.cliqueBudget))
		}
		var gErr error
		cliques, gErr = clique.MaximalCliques(sub, cliqueOpts...)
		return gErr
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if !eigen.Converged {
		log.Warn("eigenvector centrality did not converge",
			zap.Int("iterations", eigen.Iterations),
		)
	}
	log.Info("subgraph analyzed",
		zap.Int("cliques", len(cliques.Cliques)),
		zap.Bool("cliques_partial", cliques.Partial),
	)

	// Stage 5: assemble per-node records and the core set.
	metrics := make(map[string]NodeMetrics, sub.NodeCount())
	for _, id := range mapping.IDs() {
		metrics[id] = NodeMetrics{
			Degree:      subDeg[id],
			Betweenness: between[id],
			Eigenvector: eigen.Scores[id],
			Coreness:    coreness[id],
		}
	}
	coreSet, err := clique.DeriveCoreSet(cliques.Cliques, o.policy)
	if err != nil {
		return nil, err
	}

	return &Result{
		Graph:           g,
		Subgraph:        sub,
		Mapping:         mapping,
		Metrics:         metrics,
		Cliques:         cliques.Cliques,
		Census:          clique.Census(cliques.Cliques),
		CoreSet:         coreSet,
		Report:          report,
		EigenConverged:  eigen.Converged,
		EigenIterations: eigen.Iterations,
		CliquesPartial:  cliques.Partial,
	}, nil
}
