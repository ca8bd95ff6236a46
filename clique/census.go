// Package clique: size census and core-set derivation.
package clique

import "sort"

// Census returns the histogram of clique sizes: size → number of cliques of
// that size. The sum of all counts equals len(cliques).
// Complexity: O(cliques).
func Census(cliques [][]string) map[int]int {
	out := make(map[int]int)
	for _, c := range cliques {
		out[len(c)]++
	}

	return out
}

// DeriveCoreSet unions the members of every clique whose size matches the
// policy: Exactly(n) takes size == n; Largest(topN) takes the topN largest
// observed sizes. Zero matching cliques is a valid outcome: the empty set
// is returned without error.
// Returns ErrBadPolicy for a policy that is neither Exactly(n>0) nor
// Largest(topN>0).
// Complexity: O(cliques·members + sizes log sizes).
func DeriveCoreSet(cliques [][]string, policy CorePolicy) (map[string]struct{}, error) {
	match, err := policy.sizeFilter(cliques)
	if err != nil {
		return nil, err
	}

	core := make(map[string]struct{})
	for _, c := range cliques {
		if !match[len(c)] {
			continue
		}
		for _, id := range c {
			core[id] = struct{}{}
		}
	}

	return core, nil
}

// sizeFilter resolves the policy into the set of admissible clique sizes.
func (p CorePolicy) sizeFilter(cliques [][]string) (map[int]bool, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	match := make(map[int]bool)
	if p.exact > 0 {
		match[p.exact] = true

		return match, nil
	}

	seen := make(map[int]struct{})
	for _, c := range cliques {
		seen[len(c)] = struct{}{}
	}
	sizes := make([]int, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) > p.topN {
		sizes = sizes[:p.topN]
	}
	for _, s := range sizes {
		match[s] = true
	}

	return match, nil
}
