// Package sanitize_test exercises the raw-record filter: arity failures,
// sentinel and self-loop drops, multiplicity preservation, and the Report
// tallies, using table-driven tests.
package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corenet/core"
	"github.com/katalvlaran/corenet/sanitize"
)

func TestSanitize_TableDriven(t *testing.T) {
	t.Parallel()

	type scenario struct {
		name       string
		records    []sanitize.RawEdge
		opts       []sanitize.Option
		wantEdges  []core.Edge
		wantReport sanitize.Report
		wantErr    error
	}

	tests := []scenario{
		{
			name:       "Empty",
			records:    nil,
			wantEdges:  []core.Edge{},
			wantReport: sanitize.Report{},
		},
		{
			name: "CleanPassThrough",
			records: []sanitize.RawEdge{
				{"1", "2"}, {"2", "3"},
			},
			wantEdges: []core.Edge{
				{From: "1", To: "2"}, {From: "2", To: "3"},
			},
			wantReport: sanitize.Report{Input: 2, Kept: 2},
		},
		{
			name: "SentinelAndEmptyDropped",
			records: []sanitize.RawEdge{
				{"0", "2"}, {"2", "0"}, {"", "2"}, {"1", "2"},
			},
			wantEdges:  []core.Edge{{From: "1", To: "2"}},
			wantReport: sanitize.Report{Input: 4, Kept: 1, DroppedSentinel: 3},
		},
		{
			name: "SelfLoopsDropped",
			records: []sanitize.RawEdge{
				{"7", "7"}, {"7", "8"},
			},
			wantEdges:  []core.Edge{{From: "7", To: "8"}},
			wantReport: sanitize.Report{Input: 2, Kept: 1, DroppedSelfLoop: 1},
		},
		{
			name: "MultiplicityPreserved",
			records: []sanitize.RawEdge{
				{"a", "b"}, {"a", "b"}, {"a", "b"},
			},
			wantEdges: []core.Edge{
				{From: "a", To: "b"}, {From: "a", To: "b"}, {From: "a", To: "b"},
			},
			wantReport: sanitize.Report{Input: 3, Kept: 3},
		},
		{
			name: "CustomSentinel",
			records: []sanitize.RawEdge{
				{"nil", "b"}, {"0", "b"},
			},
			opts:       []sanitize.Option{sanitize.WithSentinel("nil")},
			wantEdges:  []core.Edge{{From: "0", To: "b"}},
			wantReport: sanitize.Report{Input: 2, Kept: 1, DroppedSentinel: 1},
		},
		{
			name:    "MalformedArity",
			records: []sanitize.RawEdge{{"a", "b"}, {"only-one"}},
			wantErr: sanitize.ErrMalformedInput,
		},
		{
			name:    "BadOption",
			records: []sanitize.RawEdge{{"a", "b"}},
			opts:    []sanitize.Option{sanitize.WithSentinel("")},
			wantErr: sanitize.ErrOptionViolation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges, rep, err := sanitize.Sanitize(tc.records, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantEdges, edges)
			require.Equal(t, tc.wantReport, rep)
		})
	}
}

// TestSanitize_PostconditionFeedsBuild asserts the contract between the two
// stages: whatever Sanitize emits, core.Build accepts.
func TestSanitize_PostconditionFeedsBuild(t *testing.T) {
	t.Parallel()
	records := []sanitize.RawEdge{
		{"1", "2"}, {"2", "1"}, {"0", "9"}, {"3", "3"}, {"1", "3"},
	}
	edges, rep, err := sanitize.Sanitize(records)
	require.NoError(t, err)
	require.Equal(t, 3, rep.Kept)

	g, err := core.Build(edges)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.InDelta(t, 2.0/5.0, rep.DropRate(), 1e-12)
}

// TestSanitize_ReportOnError ensures tallies up to the failure point survive.
func TestSanitize_ReportOnError(t *testing.T) {
	t.Parallel()
	_, rep, err := sanitize.Sanitize([]sanitize.RawEdge{
		{"1", "2"}, {"0", "2"}, {"bad"},
	})
	require.ErrorIs(t, err, sanitize.ErrMalformedInput)
	require.Equal(t, 3, rep.Input)
	require.Equal(t, 1, rep.Kept)
	require.Equal(t, 1, rep.DroppedSentinel)
}
