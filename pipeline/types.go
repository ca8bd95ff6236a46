// Package pipeline: configuration surface, result types, and errors.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/corenet/clique"
	"github.com/katalvlaran/corenet/core"
	"github.com/katalvlaran/corenet/rank"
	"github.com/katalvlaran/corenet/sanitize"
)

// DefaultTopK is the ranked-subgraph size used when WithTopK is absent.
const DefaultTopK = 50

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pipeline: invalid option supplied")

// Option configures Run via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*options)

type options struct {
	topK         int
	policy       clique.CorePolicy
	sentinel     string
	eigenTol     float64
	eigenMaxIter int
	cliqueMaxN   int
	cliqueBudget time.Duration
	logger       *zap.Logger
	err          error
}

func defaultOptions() options {
	return options{
		topK:   DefaultTopK,
		policy: clique.Largest(2),
		logger: zap.NewNop(),
	}
}

// WithTopK sets how many of the highest-degree nodes form the analyzed
// subgraph. Must be positive.
func WithTopK(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: top-K must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.topK = k
	}
}

// WithCorePolicy sets the clique-size policy feeding the core set.
// Default: clique.Largest(2), members of the two largest clique sizes.
// A malformed policy is rejected before any stage runs.
func WithCorePolicy(p clique.CorePolicy) Option {
	return func(o *options) {
		if vErr := p.Validate(); vErr != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, vErr)
			return
		}
		o.policy = p
	}
}

// WithSentinel forwards a custom sentinel endpoint value to sanitization.
func WithSentinel(v string) Option {
	return func(o *options) { o.sentinel = v }
}

// WithEigenTolerance forwards the eigenvector convergence threshold.
func WithEigenTolerance(tol float64) Option {
	return func(o *options) { o.eigenTol = tol }
}

// WithEigenMaxIterations forwards the eigenvector iteration cap.
func WithEigenMaxIterations(n int) Option {
	return func(o *options) { o.eigenMaxIter = n }
}

// WithCliqueMaxNodes forwards the enumeration node-count budget.
func WithCliqueMaxNodes(n int) Option {
	return func(o *options) { o.cliqueMaxN = n }
}

// WithCliqueTimeBudget forwards the enumeration time budget.
func WithCliqueTimeBudget(d time.Duration) Option {
	return func(o *options) { o.cliqueBudget = d }
}

// WithLogger sets the structured logger for stage progress reporting.
// Default: a no-op logger, keeping the library silent unless asked.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NodeMetrics bundles every computed metric for one node of the analyzed
// subgraph, keyed in Result.Metrics by the node's original NodeID.
type NodeMetrics struct {
	// Degree is the combined in+out degree inside the subgraph.
	Degree int

	// Betweenness is normalized by (n−1)(n−2).
	Betweenness float64

	// Eigenvector is scaled so the subgraph's maximum component is 1.
	Eigenvector float64

	// Coreness is the k-core index within the subgraph.
	Coreness int
}

// Result is the complete pipeline report.
type Result struct {
	// Graph is the full sanitized multigraph.
	Graph *core.Graph

	// Subgraph is the induced top-K subgraph the metric suite ran on.
	Subgraph *core.Graph

	// Mapping ties Subgraph's internal indices back to original NodeIDs,
	// in rank order.
	Mapping *rank.Mapping

	// Metrics holds per-node metric records, keyed by original NodeID.
	Metrics map[string]NodeMetrics

	// Cliques are the maximal cliques of the subgraph.
	Cliques [][]string

	// Census is the clique-size histogram.
	Census map[int]int

	// CoreSet is the union of clique members selected by the core policy.
	CoreSet map[string]struct{}

	// Report carries the sanitize drop tallies.
	Report sanitize.Report

	// EigenConverged is false when the power iteration hit its cap; the
	// eigenvector scores are then a flagged best estimate.
	EigenConverged bool

	// EigenIterations is the number of power-iteration steps performed.
	EigenIterations int

	// CliquesPartial is true when a clique budget cut enumeration short.
	CliquesPartial bool
}
