// Package core: central Edge and Graph types plus sentinel errors.
//
// This file declares the Edge value, the immutable Graph structure, and the
// errors Build and the query methods can return.
package core

import "errors"

// Sentinel errors for core graph construction and queries.
var (
	// ErrEmptyNodeID indicates an edge endpoint was the empty string.
	// Sentinel endpoints are expected to be filtered by sanitize before Build.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrSelfLoop indicates an edge with identical endpoints reached Build.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates an explicit node list named an ID twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")
)

// Edge is one directed communication event from one node to another.
//
// Multiple Edge values with the same endpoints are meaningful: each occurrence
// contributes 1 to the pair's multiplicity and to both endpoints' degree.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string
}

// Graph is an immutable directed multigraph.
//
// A Graph is produced by Build and never mutated afterwards, so it may be
// shared freely across goroutines without locking. Nodes carry both their
// original string ID and a dense internal index assigned in first-appearance
// order; both directions of the lookup are exposed.
type Graph struct {
	// ids maps internal index → node ID, in first-appearance order.
	ids []string

	// index maps node ID → internal index.
	index map[string]int

	// out[u][v] is the number of parallel edges u→v (multiplicity ≥ 1).
	out []map[int]int

	// in[v][u] mirrors out for incoming-edge queries.
	in []map[int]int

	// edgeCount is the total number of edge occurrences (not distinct pairs).
	edgeCount int
}
