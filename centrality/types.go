// Package centrality: shared errors, functional options, and result types.
package centrality

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Eigenvector iteration defaults.
const (
	// DefaultTolerance is the convergence threshold on the max component
	// delta between successive normalized iterates.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the power-iteration loop.
	DefaultMaxIterations = 1000
)

// BetweennessOption configures Betweenness via functional arguments.
type BetweennessOption func(*betweennessOptions)

type betweennessOptions struct {
	normalized bool
}

// WithNormalized divides each betweenness score by (n−1)(n−2), the number of
// ordered (s,t) pairs a node can mediate in a directed graph. Graphs with
// fewer than three nodes are left unscaled (the factor would be zero).
func WithNormalized() BetweennessOption {
	return func(o *betweennessOptions) { o.normalized = true }
}

// EigenOption configures Eigenvector via functional arguments.
// An invalid option is recorded internally and surfaced as
// ErrOptionViolation when Eigenvector is invoked.
type EigenOption func(*eigenOptions)

type eigenOptions struct {
	tol     float64
	maxIter int
	err     error
}

func defaultEigenOptions() eigenOptions {
	return eigenOptions{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
}

// WithTolerance sets the convergence threshold. Must be positive.
func WithTolerance(tol float64) EigenOption {
	return func(o *eigenOptions) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.tol = tol
	}
}

// WithMaxIterations caps the power-iteration loop. Must be at least 1.
func WithMaxIterations(n int) EigenOption {
	return func(o *eigenOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIter = n
	}
}

// EigenResult holds the outcome of an eigenvector-centrality computation.
//
// When Converged is false the Scores are the best estimate at the iteration
// cap — usable, but flagged, per the degrade-don't-abort policy.
type EigenResult struct {
	// Scores maps node ID → centrality, scaled so the max component is 1.
	Scores map[string]float64

	// Converged reports whether the iteration met the tolerance before the
	// cap.
	Converged bool

	// Iterations is the number of power-iteration steps performed.
	Iterations int
}
