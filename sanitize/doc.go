// Package sanitize filters a raw communication edge stream into a valid edge
// list ready for core.Build.
//
// What
//
//   - Accepts raw records from an external reader collaborator: each record
//     should carry exactly two identifier fields, (from, to).
//   - Drops records where either endpoint is the reserved sentinel value
//     (default "0") or empty.
//   - Drops self-loops (from == to).
//   - Never deduplicates: multiplicity is analytical signal downstream.
//   - Counts what it dropped at each stage and reports the tallies;
//     informational, never fatal.
//
// Why
//
//	Real mailbox exports are noisy: placeholder senders, system loopbacks,
//	truncated rows. Filtering them once, up front, with an auditable Report,
//	keeps every later stage free of defensive re-checking.
//
// Determinism
//
//	Sanitize is a pure, order-preserving filter: surviving edges appear in
//	exactly their input order, which in turn fixes core.Build's indexing.
//
// Usage
//
//	edges, report, err := sanitize.Sanitize(records)
//	if err != nil {
//	    // ErrMalformedInput, wrapped with the offending record
//	}
//	log.Printf("kept %d of %d (%.1f%% dropped)", report.Kept, report.Input, 100*report.DropRate())
package sanitize
