// Package rank: errors and the Mapping identity table.
package rank

import "errors"

// Sentinel errors for top-K selection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rank: graph is nil")

	// ErrBadK is returned when k is zero or negative.
	ErrBadK = errors.New("rank: k must be positive")

	// ErrInsufficientNodes is returned when k exceeds the node count.
	ErrInsufficientNodes = errors.New("rank: k exceeds available nodes")

	// ErrNotInSelection is returned by Mapping lookups for IDs or indices
	// outside the selected set.
	ErrNotInSelection = errors.New("rank: not in selection")
)

// Mapping is the bidirectional table between a subgraph's dense internal
// indices and the original NodeIDs, in rank order (index 0 = highest rank).
//
// It is immutable after SelectTopK returns and safe for concurrent reads.
type Mapping struct {
	ids   []string
	index map[string]int
}

// newMapping builds the table from the rank-ordered selection.
func newMapping(ids []string) *Mapping {
	m := &Mapping{
		ids:   ids,
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		m.index[id] = i
	}

	return m
}

// Len returns the number of selected nodes. O(1).
func (m *Mapping) Len() int {
	return len(m.ids)
}

// ID returns the original NodeID at internal index idx.
// Returns ErrNotInSelection when idx is outside [0, Len). O(1).
func (m *Mapping) ID(idx int) (string, error) {
	if idx < 0 || idx >= len(m.ids) {
		return "", ErrNotInSelection
	}

	return m.ids[idx], nil
}

// Index returns the internal index of the original NodeID id.
// Returns ErrNotInSelection for unselected IDs. O(1).
func (m *Mapping) Index(id string) (int, error) {
	idx, ok := m.index[id]
	if !ok {
		return 0, ErrNotInSelection
	}

	return idx, nil
}

// IDs returns the selected NodeIDs in rank order. The slice is a copy.
// Complexity: O(K).
func (m *Mapping) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}
