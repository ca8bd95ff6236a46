// Package clique: Bron–Kerbosch maximal-clique enumeration with pivoting.
package clique

import (
	"sort"
	"time"

	"github.com/katalvlaran/corenet/core"
)

// budgetStop is an internal signal: a budget fired mid-enumeration.
// It never escapes MaximalCliques; it becomes Result.Partial instead.
type budgetStop struct{}

func (budgetStop) Error() string { return "clique: budget exhausted" }

// MaximalCliques enumerates every maximal clique of g under bidirectional
// adjacency: a and b are clique-adjacent when at least one edge connects
// them in either direction (parallel edges are irrelevant here).
//
// The enumeration is Bron–Kerbosch with greedy pivoting. Budgets
// (WithMaxNodes, WithTimeBudget, WithContext) turn an over-long run into a
// partial result rather than an error. Output order is deterministic.
// Returns ErrGraphNil or ErrOptionViolation.
// Complexity: O(3^(V/3)) worst case, inherent to the problem.
func MaximalCliques(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	n := g.NodeCount()
	if n == 0 {
		return Result{}, nil
	}
	if o.maxNodes > 0 && n > o.maxNodes {
		return Result{Partial: true}, nil
	}

	// Bidirectional adjacency as boolean rows over dense indices.
	nodes := g.Nodes()
	adj := make([][]bool, n)
	for i, id := range nodes {
		adj[i] = make([]bool, n)
		nbrs, _ := g.UndirectedNeighbors(id)
		for _, nbr := range nbrs {
			j, _ := g.IndexOf(nbr)
			adj[i][j] = true
		}
	}

	e := &enumerator{
		nodes: nodes,
		adj:   adj,
		opts:  o,
	}
	if o.budget > 0 {
		e.deadline = time.Now().Add(o.budget)
	}

	// P starts as all indices; R and X empty.
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	partial := false
	if err := e.expand(nil, p, nil); err != nil {
		partial = true // budget fired; keep what completed
	}

	sortCliques(e.found)

	return Result{Cliques: e.found, Partial: partial}, nil
}

// enumerator carries the recursion's shared state.
type enumerator struct {
	nodes    []string
	adj      [][]bool
	opts     options
	deadline time.Time
	found    [][]string
}

// expand is the classic BK recursion over (R, P, X) index sets.
func (e *enumerator) expand(r, p, x []int) error {
	if err := e.checkBudget(); err != nil {
		return err
	}
	if len(p) == 0 {
		if len(x) == 0 {
			e.record(r)
		}
		// X non-empty: R is contained in an already-explored clique.
		return nil
	}

	// Pivot: the member of P∪X covering the most of P prunes best.
	pivot := e.pickPivot(p, x)

	// Iterate P \ N(pivot); P and X are rebuilt per branch.
	candidates := make([]int, 0, len(p))
	for _, v := range p {
		if !e.adj[pivot][v] {
			candidates = append(candidates, v)
		}
	}
	for _, v := range candidates {
		nextP := intersectAdj(p, e.adj[v])
		nextX := intersectAdj(x, e.adj[v])
		// append(r, v) and remove(p, v) reuse backing arrays across sibling
		// branches. Safe only because each recursion completes before the
		// next append and record copies r; keep it that way.
		if err := e.expand(append(r, v), nextP, nextX); err != nil {
			return err
		}
		p = remove(p, v)
		x = append(x, v)
	}

	return nil
}

// pickPivot returns the index in P∪X with the most neighbors inside P.
func (e *enumerator) pickPivot(p, x []int) int {
	best, bestCover := p[0], -1
	for _, cand := range [][]int{p, x} {
		for _, u := range cand {
			cover := 0
			for _, v := range p {
				if e.adj[u][v] {
					cover++
				}
			}
			if cover > bestCover {
				best, bestCover = u, cover
			}
		}
	}

	return best
}

// record materializes R as a sorted NodeID clique.
func (e *enumerator) record(r []int) {
	ids := make([]string, len(r))
	for i, idx := range r {
		ids[i] = e.nodes[idx]
	}
	sort.Strings(ids)
	e.found = append(e.found, ids)
}

// checkBudget reports a budgetStop when the context is done or the time
// budget has elapsed.
func (e *enumerator) checkBudget() error {
	select {
	case <-e.opts.ctx.Done():
		return budgetStop{}
	default:
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		return budgetStop{}
	}

	return nil
}

// intersectAdj returns the members of set adjacent under row.
func intersectAdj(set []int, row []bool) []int {
	out := make([]int, 0, len(set))
	for _, v := range set {
		if row[v] {
			out = append(out, v)
		}
	}

	return out
}

// remove returns set without v, preserving order.
func remove(set []int, v int) []int {
	out := set[:0]
	for _, w := range set {
		if w != v {
			out = append(out, w)
		}
	}

	return out
}

// sortCliques fixes the output order: size descending, then lexicographic.
func sortCliques(cs [][]string) {
	sort.Slice(cs, func(i, j int) bool {
		if len(cs[i]) != len(cs[j]) {
			return len(cs[i]) > len(cs[j])
		}
		for k := range cs[i] {
			if cs[i][k] != cs[j][k] {
				return cs[i][k] < cs[j][k]
			}
		}

		return false
	})
}
