// SPDX-License-Identifier: MIT

package unionfind

import "fmt"

// New returns a Partition of n singleton sets {1}, {2}, ..., {n}.
// n <= 0 yields an empty Partition with zero sets.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *Partition {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 {
		n = 0
	}

	p := &Partition{
		parent:   make([]int, n),
		weight:   make([]int, n),
		compress: o.PathCompression,
	}
	for i := range p.parent {
		p.parent[i] = i
		p.weight[i] = 1
	}

	return p
}

// Find returns the representative of the set containing e.
// An element that was never unioned is its own representative.
//
// Errors: ErrInvalidElement if e is outside [1, Len()].
// Complexity: O(log N).
func (p *Partition) Find(e int) (int, error) {
	i, err := p.index(e)
	if err != nil {
		return 0, err
	}

	return p.root(i) + 1, nil
}

// Union merges the sets containing i and j.
//
// The root of the smaller set is attached under the root of the larger one;
// on equal sizes the root of i survives. Both ids are validated before any
// mutation, so a failed call leaves p unchanged.
//
// Errors: ErrInvalidElement if i or j is outside [1, Len()].
// Complexity: O(log N).
func (p *Partition) Union(i, j int) error {
	a, err := p.index(i)
	if err != nil {
		return err
	}
	b, err := p.index(j)
	if err != nil {
		return err
	}

	r1, r2 := p.root(a), p.root(b)
	if r1 == r2 {
		return nil
	}
	if p.weight[r1] >= p.weight[r2] {
		p.weight[r1] += p.weight[r2]
		p.parent[r2] = r1
	} else {
		p.weight[r2] += p.weight[r1]
		p.parent[r1] = r2
	}

	return nil
}

// IsInSameSet reports whether i and j belong to the same set.
//
// Errors: ErrInvalidElement if i or j is outside [1, Len()].
func (p *Partition) IsInSameSet(i, j int) (bool, error) {
	ri, err := p.Find(i)
	if err != nil {
		return false, err
	}
	rj, err := p.Find(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// IsDisjoint reports whether i and j belong to different sets.
//
// Errors: ErrInvalidElement if i or j is outside [1, Len()].
func (p *Partition) IsDisjoint(i, j int) (bool, error) {
	same, err := p.IsInSameSet(i, j)
	if err != nil {
		return false, err
	}

	return !same, nil
}

// index maps a 1-based element id to its slot, checking the range on every call.
func (p *Partition) index(e int) (int, error) {
	if e < 1 || e > len(p.parent) {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidElement, e, len(p.parent))
	}

	return e - 1, nil
}

// root walks parent links from slot i to its root.
func (p *Partition) root(i int) int {
	for p.parent[i] != i {
		if p.compress {
			// path halving: point i at its grandparent.
			p.parent[i] = p.parent[p.parent[i]]
		}
		i = p.parent[i]
	}

	return i
}
