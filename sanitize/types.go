// Package sanitize: record type, drop report, options, and error definitions.
package sanitize

import (
	"errors"
	"fmt"
)

// DefaultSentinel is the reserved endpoint value treated as "no such node".
// Records touching it are dropped; the empty string is always dropped too.
const DefaultSentinel = "0"

// Sentinel errors for sanitization.
var (
	// ErrMalformedInput is returned when a raw record cannot be parsed into
	// exactly two identifiers.
	ErrMalformedInput = errors.New("sanitize: malformed input record")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sanitize: invalid option supplied")
)

// RawEdge is one record as yielded by the upstream reader collaborator.
// A well-formed record has exactly two fields: from, to.
type RawEdge []string

// Report tallies what Sanitize kept and dropped. Purely informational.
type Report struct {
	// Input is the total number of raw records seen.
	Input int

	// Kept is the number of records that survived all filters.
	Kept int

	// DroppedSentinel counts records with a sentinel or empty endpoint.
	DroppedSentinel int

	// DroppedSelfLoop counts records whose endpoints were identical.
	DroppedSelfLoop int
}

// DropRate returns the dropped fraction in [0,1]; 0 for empty input.
func (r Report) DropRate() float64 {
	if r.Input == 0 {
		return 0
	}

	return float64(r.Input-r.Kept) / float64(r.Input)
}

// Option configures Sanitize via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when Sanitize is invoked.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	sentinel string
	err      error
}

// defaultOptions returns the documented defaults: sentinel "0".
func defaultOptions() options {
	return options{sentinel: DefaultSentinel}
}

// WithSentinel replaces the reserved sentinel endpoint value.
// The empty string is rejected: empty endpoints are always dropped anyway,
// and an empty sentinel would make the option a no-op.
func WithSentinel(v string) Option {
	return func(o *options) {
		if v == "" {
			o.err = fmt.Errorf("%w: sentinel cannot be empty", ErrOptionViolation)
			return
		}
		o.sentinel = v
	}
}
