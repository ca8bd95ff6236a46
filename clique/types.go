// Package clique: options, result, core-set policies, and errors.
package clique

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for clique analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")

	// ErrBadPolicy is returned by DeriveCoreSet for a malformed CorePolicy.
	ErrBadPolicy = errors.New("clique: invalid core-set policy")
)

// Option configures MaximalCliques via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when MaximalCliques is invoked.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxNodes int           // 0 = unbounded
	budget   time.Duration // 0 = unbounded
	err      error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext lets a caller cancel a long enumeration. Cancellation yields
// a partial Result, not an error.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxNodes skips enumeration entirely (Partial=true, no cliques) when
// the graph has more than n nodes, a guard against combinatorial blow-up.
// n must be positive.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max nodes must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxNodes = n
	}
}

// WithTimeBudget cuts the enumeration short after d, returning whatever
// cliques completed by then with Partial=true. d must be positive.
func WithTimeBudget(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: time budget must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.budget = d
	}
}

// Result holds the outcome of a maximal-clique enumeration.
type Result struct {
	// Cliques are the maximal cliques found: members sorted ascending,
	// cliques ordered by size descending then lexicographically.
	Cliques [][]string

	// Partial reports that enumeration was skipped or cut short by a
	// budget; Cliques then holds only what completed in time.
	Partial bool
}

// CorePolicy selects which clique sizes feed DeriveCoreSet.
type CorePolicy struct {
	exact int // >0: union cliques of exactly this size
	topN  int // >0: union cliques of the topN largest observed sizes
}

// Exactly unions the members of every clique whose size is exactly n.
func Exactly(n int) CorePolicy {
	return CorePolicy{exact: n}
}

// Largest unions the members of every clique whose size is among the topN
// largest observed sizes. Largest(1) is the classic "largest cliques only";
// Largest(2) reproduces the traditional two-top-tiers core group.
func Largest(topN int) CorePolicy {
	return CorePolicy{topN: topN}
}

// Validate reports whether the policy is well-formed: exactly one of
// Exactly(n>0) or Largest(topN>0). A zero-value or mixed policy yields
// ErrBadPolicy, letting callers reject it before any work is done.
func (p CorePolicy) Validate() error {
	wellFormed := (p.exact > 0 && p.topN == 0) || (p.topN > 0 && p.exact == 0)
	if !wellFormed {
		return ErrBadPolicy
	}

	return nil
}
