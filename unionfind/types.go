// SPDX-License-Identifier: MIT

// Package unionfind defines the Partition type, its options and sentinel errors.
package unionfind

import "errors"

// ErrInvalidElement indicates an element id outside [1, N].
// Returned errors wrap it with the offending id; test with errors.Is.
var ErrInvalidElement = errors.New("unionfind: invalid element")

// Partition is a disjoint-set forest over the elements 1..N.
//
// Internally element e lives at index e-1. parent[i] == i iff i is a root;
// weight[i] is the size of the set rooted at i and is meaningful only for roots.
// Sets only ever merge. A Partition is not safe for concurrent use.
type Partition struct {
	parent []int
	weight []int

	compress bool
}

// Options holds construction parameters for a Partition.
type Options struct {
	// PathCompression enables path halving while walking to a root.
	// Representatives are unaffected; only tree height changes.
	PathCompression bool
}

// Option configures Options.
type Option func(*Options)

// WithPathCompression returns an Option that enables path halving in Find and Union.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// DefaultOptions returns Options with path compression disabled,
// so Find never writes and tree height is bounded only by union-by-size.
func DefaultOptions() Options {
	return Options{
		PathCompression: false,
	}
}
