// Package unionfind provides a disjoint-set (union-find) structure over the
// contiguous element range 1..N.
//
// What & Why
//
//   - A Partition starts as N singleton sets {1}, {2}, ..., {N}.
//   - Union merges two sets; Find returns a set's representative element.
//   - IsInSameSet / IsDisjoint answer connectivity queries.
//   - CountSets and Sets enumerate the current partition.
//
// Typical uses are Kruskal's spanning forest, connected components over an
// edge list and equivalence-class merging.
//
// Algorithm
//
//   - Union-by-size: the root of the smaller set is attached under the root of
//     the larger one, so no tree is taller than log2(N).
//   - On equal sizes the root of the first argument survives, which keeps the
//     reported representatives reproducible.
//   - No path compression by default. WithPathCompression() enables path
//     halving; representatives are identical in both modes.
//
// Element ids
//
//	Callers use 1-based ids in [1, N]; storage is 0-based. Every call checks
//	its arguments, so Find(0) and Find(N+1) fail even though N is fixed.
//
// Complexity
//
//   - New:         O(N) time and memory.
//   - Find, Union: O(log N).
//   - CountSets:   O(N log N), O(N) bits scratch.
//   - Sets:        O(N log N), O(N) memory.
//
// Errors
//
//   - ErrInvalidElement: an element id outside [1, N]. The structure is left
//     unchanged.
//
// Concurrency
//
//	A Partition holds no locks. Guard it with one exclusive lock when shared;
//	with path compression even Find writes.
package unionfind
