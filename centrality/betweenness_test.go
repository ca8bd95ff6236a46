package centrality_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/corenet/centrality"
)

const eps = 1e-12

// TestBetweenness_NilGraph verifies the nil-graph sentinel.
func TestBetweenness_NilGraph(t *testing.T) {
	if _, err := centrality.Betweenness(nil); !errors.Is(err, centrality.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestBetweenness_DirectedPath checks the middle of a→b→c mediates exactly
// the one (a,c) pair.
func TestBetweenness_DirectedPath(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}})
	cb, err := centrality.Betweenness(g)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"a": 0, "b": 1, "c": 0}
	for id, w := range want {
		if math.Abs(cb[id]-w) > eps {
			t.Errorf("Betweenness[%s] = %g; want %g", id, cb[id], w)
		}
	}
}

// TestBetweenness_NormalizedStar checks a bidirectional star: the hub lies on
// every ordered leaf pair, so its normalized score is exactly 1.
func TestBetweenness_NormalizedStar(t *testing.T) {
	g := build(t, [][2]string{
		{"hub", "l1"}, {"l1", "hub"},
		{"hub", "l2"}, {"l2", "hub"},
		{"hub", "l3"}, {"l3", "hub"},
	})
	cb, err := centrality.Betweenness(g, centrality.WithNormalized())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cb["hub"]-1) > eps {
		t.Errorf("Betweenness[hub] = %g; want 1", cb["hub"])
	}
	for _, leaf := range []string{"l1", "l2", "l3"} {
		if cb[leaf] != 0 {
			t.Errorf("Betweenness[%s] = %g; want 0", leaf, cb[leaf])
		}
	}
}

// TestBetweenness_Disconnected ensures unreachable pairs contribute zero
// rather than erroring.
func TestBetweenness_Disconnected(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"p", "q"}})
	cb, err := centrality.Betweenness(g)
	if err != nil {
		t.Fatal(err)
	}
	for id, v := range cb {
		if v != 0 {
			t.Errorf("Betweenness[%s] = %g; want 0", id, v)
		}
	}
}

// TestBetweenness_ParallelEdgesCollapse checks multiplicity does not open
// additional shortest paths.
func TestBetweenness_ParallelEdgesCollapse(t *testing.T) {
	single := build(t, [][2]string{{"a", "b"}, {"b", "c"}})
	multi := build(t, [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}, {"b", "c"}})
	cbS, _ := centrality.Betweenness(single)
	cbM, _ := centrality.Betweenness(multi)
	for id := range cbS {
		if math.Abs(cbS[id]-cbM[id]) > eps {
			t.Errorf("parallel edges changed Betweenness[%s]: %g vs %g", id, cbS[id], cbM[id])
		}
	}
}

// TestBetweenness_SplitPaths checks fractional credit: with two disjoint
// 2-hop routes from s to t, each midpoint carries half a path.
func TestBetweenness_SplitPaths(t *testing.T) {
	g := build(t, [][2]string{
		{"s", "m1"}, {"m1", "t"},
		{"s", "m2"}, {"m2", "t"},
	})
	cb, err := centrality.Betweenness(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, mid := range []string{"m1", "m2"} {
		if math.Abs(cb[mid]-0.5) > eps {
			t.Errorf("Betweenness[%s] = %g; want 0.5", mid, cb[mid])
		}
	}
}
