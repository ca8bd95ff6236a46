// Package sanitize: the filter itself.
package sanitize

import (
	"fmt"

	"github.com/katalvlaran/corenet/core"
)

// Sanitize filters raw records into a valid, order-preserving edge list.
//
// Filters, applied per record in order:
//  1. arity: a record without exactly two fields fails the whole call with
//     ErrMalformedInput (wrapped with the record's position and content);
//  2. sentinel: either endpoint equal to the configured sentinel, or empty,
//     drops the record (counted in Report.DroppedSentinel);
//  3. self-loop: identical endpoints drop the record
//     (counted in Report.DroppedSelfLoop).
//
// Multiplicity is preserved: duplicate surviving records yield duplicate
// edges. The Report is valid even on error (tallies up to the failure point).
// Complexity: O(records) time.
func Sanitize(records []RawEdge, opts ...Option) ([]core.Edge, Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var rep Report
	if o.err != nil {
		return nil, rep, o.err
	}

	edges := make([]core.Edge, 0, len(records))
	var (
		rec      RawEdge
		pos      int
		from, to string
	)
	for pos, rec = range records {
		rep.Input++
		if len(rec) != 2 {
			return nil, rep, fmt.Errorf("%w: record #%d has %d fields (%v)", ErrMalformedInput, pos, len(rec), rec)
		}
		from, to = rec[0], rec[1]
		if from == o.sentinel || to == o.sentinel || from == "" || to == "" {
			rep.DroppedSentinel++
			continue
		}
		if from == to {
			rep.DroppedSelfLoop++
			continue
		}
		rep.Kept++
		edges = append(edges, core.Edge{From: from, To: to})
	}

	return edges, rep, nil
}
