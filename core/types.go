// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Core types (Graph, Edge, GraphStats), sentinel errors, constructor
//       and the canonical pair-key helper.
// Policy:
//   - The Graph is a weighted undirected simple graph; loops and parallel
//     edges cannot be represented at all (keys collapse, self-pairs reject).
//   - All snapshots are deterministic; see methods.go.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyArtistName indicates an empty string was passed as an artist name.
	ErrEmptyArtistName = errors.New("core: artist name is empty")

	// ErrSelfCollab indicates both endpoints of a collaboration are the same name.
	ErrSelfCollab = errors.New("core: self-collaboration is not allowed")

	// ErrBadCount indicates a non-positive co-occurrence count.
	ErrBadCount = errors.New("core: count must be positive")
)

// Edge is one aggregated collaboration between two distinct artists.
//
// Invariant: A < B lexicographically (canonical order), Weight >= 1.
// Zero-weight edges never materialize — a pair is present only if it
// co-occurred on at least one track.
type Edge struct {
	// A is the lexicographically smaller artist name.
	A string

	// B is the lexicographically larger artist name.
	B string

	// Weight counts the distinct tracks on which A and B co-appeared.
	Weight int64
}

// pairKey is the canonical map key for an unordered pair: lo < hi always.
type pairKey struct {
	lo, hi string
}

// canonicalKey orders two distinct names into a pairKey.
// Callers must have validated a != b and both non-empty.
// Complexity: O(min(len(a), len(b))) for the comparison.
func canonicalKey(a, b string) pairKey {
	if a < b {
		return pairKey{lo: a, hi: b}
	}

	return pairKey{lo: b, hi: a}
}

// GraphStats is a read-only snapshot of scalar graph summaries.
//
// AverageDegree and Density use unweighted simple-graph definitions:
//
//	AverageDegree = 2·E / N
//	Density       = E / (N·(N−1)/2)
//
// Both are 0 (never NaN or ±Inf) when the graph is too small for the
// formula to apply.
type GraphStats struct {
	// NodeCount is the number of artists that appear in at least one edge.
	NodeCount int

	// EdgeCount is the number of distinct collaborating pairs.
	EdgeCount int

	// TotalWeight is the sum of all edge weights.
	TotalWeight int64

	// MaxWeight is the largest single edge weight (0 on an empty graph).
	MaxWeight int64

	// AverageDegree is the mean distinct-neighbor count per node.
	AverageDegree float64

	// Density is EdgeCount relative to the maximum possible for NodeCount.
	Density float64
}

// Graph is the in-memory collaboration network accumulator.
//
// It is safe for concurrent accumulation (one RWMutex guards both maps),
// but the intended lifecycle is: build once in a single pass, then treat
// the value as immutable and hand it to analysis.
type Graph struct {
	mu sync.RWMutex // guards weights and adjacency

	// weights maps a canonical pair to its aggregated co-occurrence count.
	weights map[pairKey]int64

	// adjacency[name] is the set of distinct neighbors of name.
	// A name is present iff it participates in at least one edge.
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty collaboration graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		weights:   make(map[pairKey]int64),
		adjacency: make(map[string]map[string]struct{}),
	}
}
