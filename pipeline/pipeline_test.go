// Package pipeline_test: end-to-end runs over small, hand-checkable
// networks.
package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/corenet/clique"
	"github.com/katalvlaran/corenet/pipeline"
	"github.com/katalvlaran/corenet/rank"
	"github.com/katalvlaran/corenet/sanitize"
)

// records is the canonical noisy exchange: a tight 1/2/3 triangle, a quiet
// 4/5 pair, one sentinel record, one self-loop.
func records() []sanitize.RawEdge {
	return []sanitize.RawEdge{
		{"1", "2"}, {"2", "1"}, {"1", "3"}, {"2", "3"}, {"3", "1"},
		{"4", "5"}, {"5", "4"},
		{"0", "2"}, // sentinel sender
		{"4", "4"}, // self-loop
	}
}

// TestRun_EndToEnd pins the whole report for the canonical network.
func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()
	res, err := pipeline.Run(context.Background(), records(),
		pipeline.WithTopK(3),
		pipeline.WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)

	// Sanitization tallies.
	require.Equal(t, 9, res.Report.Input)
	require.Equal(t, 7, res.Report.Kept)
	require.Equal(t, 1, res.Report.DroppedSentinel)
	require.Equal(t, 1, res.Report.DroppedSelfLoop)

	// Full graph vs analyzed subgraph.
	require.Equal(t, 5, res.Graph.NodeCount())
	require.Equal(t, 7, res.Graph.EdgeCount())
	require.Equal(t, []string{"1", "2", "3"}, res.Mapping.IDs())
	require.Equal(t, 5, res.Subgraph.EdgeCount())

	// Metric records, keyed by original NodeID.
	require.Len(t, res.Metrics, 3)
	m1 := res.Metrics["1"]
	require.Equal(t, 4, m1.Degree)
	// "1" relays the only 3→2 shortest path: 1 of (n−1)(n−2)=2 pairs.
	require.InDelta(t, 0.5, m1.Betweenness, 1e-9)
	require.InDelta(t, 1.0, m1.Eigenvector, 1e-6)
	require.Equal(t, 2, m1.Coreness)
	require.Equal(t, 3, res.Metrics["2"].Degree)
	require.InDelta(t, 0.0, res.Metrics["2"].Betweenness, 1e-9)

	// The triangle is the single maximal clique and the whole core set.
	require.Equal(t, [][]string{{"1", "2", "3"}}, res.Cliques)
	require.Equal(t, map[int]int{3: 1}, res.Census)
	require.Equal(t, map[string]struct{}{"1": {}, "2": {}, "3": {}}, res.CoreSet)

	require.True(t, res.EigenConverged)
	require.False(t, res.CliquesPartial)
}

// TestRun_MappingRoundTrip: every reported node maps index↔ID cleanly.
func TestRun_MappingRoundTrip(t *testing.T) {
	t.Parallel()
	res, err := pipeline.Run(context.Background(), records(), pipeline.WithTopK(5))
	require.NoError(t, err)
	for id := range res.Metrics {
		idx, err := res.Mapping.Index(id)
		require.NoError(t, err)
		back, err := res.Mapping.ID(idx)
		require.NoError(t, err)
		require.Equal(t, id, back)
	}
}

// TestRun_Errors verifies option validation and stage-error propagation.
func TestRun_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := pipeline.Run(ctx, records(), pipeline.WithTopK(0))
	require.ErrorIs(t, err, pipeline.ErrOptionViolation)

	_, err = pipeline.Run(ctx, []sanitize.RawEdge{{"lonely"}})
	require.ErrorIs(t, err, sanitize.ErrMalformedInput)

	_, err = pipeline.Run(ctx, records(), pipeline.WithTopK(99))
	require.ErrorIs(t, err, rank.ErrInsufficientNodes)

	// A zero-value policy is rejected before any stage runs, so no other
	// option (such as a fitting top-K) is needed to reach the failure.
	_, err = pipeline.Run(ctx, records(), pipeline.WithCorePolicy(clique.CorePolicy{}))
	require.ErrorIs(t, err, pipeline.ErrOptionViolation)
	require.ErrorIs(t, err, clique.ErrBadPolicy)

	_, err = pipeline.Run(ctx, records(),
		pipeline.WithTopK(3),
		pipeline.WithCorePolicy(clique.CorePolicy{}),
	)
	require.ErrorIs(t, err, clique.ErrBadPolicy)
}

// TestRun_Cancelled: a dead context aborts the run.
func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pipeline.Run(ctx, records(), pipeline.WithTopK(3))
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_NonConvergenceIsFlaggedNotFatal: a starved eigenvector cap still
// produces a full report.
func TestRun_NonConvergenceIsFlaggedNotFatal(t *testing.T) {
	t.Parallel()
	res, err := pipeline.Run(context.Background(), records(),
		pipeline.WithTopK(5),
		pipeline.WithEigenMaxIterations(1),
		pipeline.WithEigenTolerance(1e-15),
	)
	require.NoError(t, err)
	require.False(t, res.EigenConverged)
	require.Len(t, res.Metrics, 5)
}

// TestRun_CliqueBudgetDegrades: an over-tight node budget skips enumeration
// and empties the clique-derived artifacts without failing the run.
func TestRun_CliqueBudgetDegrades(t *testing.T) {
	t.Parallel()
	res, err := pipeline.Run(context.Background(), records(),
		pipeline.WithTopK(3),
		pipeline.WithCliqueMaxNodes(2),
	)
	require.NoError(t, err)
	require.True(t, res.CliquesPartial)
	require.Empty(t, res.Cliques)
	require.Empty(t, res.CoreSet)
	// The metric suite is unaffected by the clique budget.
	require.Len(t, res.Metrics, 3)
}
