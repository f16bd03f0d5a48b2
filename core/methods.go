// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Accumulation and deterministic read access for the collaboration Graph.
// Determinism:
//   - Nodes() sorted ascending; Edges() sorted by (A, B); Neighbors() sorted.
// Concurrency:
//   - Mutation under write lock; every query under read lock.

package core

import "sort"

// AddCollab records count co-occurrences between artists a and b.
//
// The pair is canonicalized internally, so argument order never matters:
// AddCollab("B","A",1) and AddCollab("A","B",1) hit the same edge.
//
// Steps:
//  1. Validate names (non-empty) and count (>= 1).
//  2. Reject self-pairs: an artist cannot collaborate with itself.
//  3. Increment the canonical pair weight and mirror adjacency both ways.
//
// Errors: ErrEmptyArtistName, ErrSelfCollab, ErrBadCount.
// Complexity: O(1) amortized (hash-map updates).
func (g *Graph) AddCollab(a, b string, count int64) error {
	// 1) Input validation: empty names can never be nodes.
	if a == "" || b == "" {
		return ErrEmptyArtistName
	}
	// 2) Self-pairs are impossible in this model (unique-before-pairing
	//    upstream should already have removed them; reject defensively).
	if a == b {
		return ErrSelfCollab
	}
	// 3) Weight must move the edge forward; zero-weight edges never exist.
	if count < 1 {
		return ErrBadCount
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Accumulate under the canonical key so (a,b) and (b,a) collapse.
	g.weights[canonicalKey(a, b)] += count

	// Mirror adjacency both ways; sets make repeats idempotent.
	g.link(a, b)
	g.link(b, a)

	return nil
}

// link inserts to into from's neighbor set, creating the set lazily.
// Caller must hold the write lock.
func (g *Graph) link(from, to string) {
	set, ok := g.adjacency[from]
	if !ok {
		set = make(map[string]struct{})
		g.adjacency[from] = set
	}
	set[to] = struct{}{}
}

// Weight returns the aggregated co-occurrence count for the pair (a, b),
// in either argument order, or 0 if the pair never collaborated.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) int64 {
	if a == "" || b == "" || a == b {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[canonicalKey(a, b)]
}

// HasNode reports whether name participates in at least one edge.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[name]

	return ok
}

// HasEdge reports whether the pair (a, b) collaborated at least once.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	return g.Weight(a, b) > 0
}

// Degree returns the number of distinct neighbors of name (unweighted;
// see package docs for why this is the reference degree semantics).
// Unknown names have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(name string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[name])
}

// Strength returns the weighted degree of name: the sum of the weights of
// all incident edges. Unknown names have strength 0.
// Complexity: O(deg(name)).
func (g *Graph) Strength(name string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for neighbor := range g.adjacency[name] {
		total += g.weights[canonicalKey(name, neighbor)]
	}

	return total
}

// Neighbors returns the distinct collaborators of name, sorted ascending.
// Unknown names yield an empty (non-nil) slice.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(name string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency[name]))
	for neighbor := range g.adjacency[name] {
		out = append(out, neighbor)
	}
	sort.Strings(out)

	return out
}

// Nodes returns every artist participating in at least one edge,
// sorted ascending for stable logs and goldens.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Edges returns every aggregated collaboration, sorted by (A, B) ascending.
// Each Edge satisfies A < B and Weight >= 1.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.weights))
	for key, weight := range g.weights {
		out = append(out, Edge{A: key.lo, B: key.hi, Weight: weight})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of distinct collaborating pairs. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.weights)
}

// Stats produces a deterministic scalar snapshot of the graph.
//
// Degenerate graphs are well defined: with fewer than one node the average
// degree is 0, with fewer than two nodes the density is 0 — never NaN.
//
// Complexity: O(E) for the weight scan; O(1) space beyond the result.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.adjacency),
		EdgeCount: len(g.weights),
	}

	// Single pass over the edge catalog for weight aggregates.
	for _, weight := range g.weights {
		stats.TotalWeight += weight
		if weight > stats.MaxWeight {
			stats.MaxWeight = weight
		}
	}

	// Guarded derived scalars; see GraphStats docs for the formulas.
	if stats.NodeCount > 0 {
		stats.AverageDegree = 2 * float64(stats.EdgeCount) / float64(stats.NodeCount)
	}
	if stats.NodeCount > 1 {
		possible := float64(stats.NodeCount) * float64(stats.NodeCount-1) / 2
		stats.Density = float64(stats.EdgeCount) / possible
	}

	return &stats
}
