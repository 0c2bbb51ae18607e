// SPDX-License-Identifier: MIT

package unionfind

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Len returns N, the number of elements in the Partition.
func (p *Partition) Len() int {
	return len(p.parent)
}

// SizeOf returns the number of elements in the set containing e.
//
// Errors: ErrInvalidElement if e is outside [1, Len()].
// Complexity: O(log N).
func (p *Partition) SizeOf(e int) (int, error) {
	i, err := p.index(e)
	if err != nil {
		return 0, err
	}

	return p.weight[p.root(i)], nil
}

// CountSets returns the number of distinct sets.
// It is recomputed on every call by marking each element's root in a bitmap.
//
// Complexity: O(N log N) time, O(N) bits of scratch space.
func (p *Partition) CountSets() int {
	seen := bitset.New(uint(len(p.parent)))
	for i := range p.parent {
		seen.Set(uint(p.root(i)))
	}

	return int(seen.Count())
}

// Sets returns the partition as one slice of element ids per set.
// No ordering is guaranteed, neither between sets nor within one.
//
// Complexity: O(N log N) time, O(N) memory.
func (p *Partition) Sets() [][]int {
	slot := make(map[int]int) // root -> position in out
	var out [][]int
	for i := range p.parent {
		r := p.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i+1)
	}

	return out
}

// String formats p for debugging: its address, the set count and every set.
// The format is not stable.
func (p *Partition) String() string {
	return fmt.Sprintf("unionfind.Partition@%p %d sets %v", p, p.CountSets(), p.Sets())
}
