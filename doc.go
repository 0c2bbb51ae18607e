// Package partition is a small library for set partitions over the integer
// range 1..N.
//
// Under the hood, everything lives in one subpackage:
//
//	unionfind/ — Partition: union-by-size disjoint sets with Find, Union,
//	             IsInSameSet, IsDisjoint, CountSets and Sets
//
// Quick example:
//
//	p := unionfind.New(10)
//	_ = p.Union(1, 2)
//	_ = p.Union(2, 8)
//	same, _ := p.IsInSameSet(1, 8) // true
//	n := p.CountSets()             // 8
//
//	go get github.com/katalvlaran/partition/unionfind
package partition
