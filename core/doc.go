// Package core defines the collaboration Graph value: a weighted, undirected,
// simple graph over artist names, accumulated from per-track co-appearances.
//
// Overview:
//
//   - A node is an artist name, kept verbatim (the input layer trims
//     surrounding whitespace; no further normalization is ever applied, so
//     two spellings of the same real-world artist are two nodes).
//   - An edge is an unordered pair of distinct names with an integer Weight:
//     the number of distinct tracks on which the pair co-appeared.
//   - Nodes exist only through edges. An artist who never co-appears with
//     anyone has no node here.
//
// Canonical pair ordering:
//
//	Every edge is stored under a canonical key with the lexicographically
//	smaller name first, so AddCollab("B","A",1) and AddCollab("A","B",1)
//	accumulate into the same edge. The Edge value exposed by Edges() always
//	satisfies A < B.
//
// Determinism:
//
//   - Nodes() returns names sorted ascending.
//   - Edges() returns edges sorted by (A, B) ascending.
//   - Neighbors(name) returns neighbor names sorted ascending.
//
// Degree semantics (reference behavior, documented on purpose):
//
//	Degree(name) counts distinct neighbors, ignoring weights. The weighted
//	variant is a separate method, Strength(name), so neither meaning hides
//	behind the other. Stats().AverageDegree and Stats().Density use the
//	unweighted simple-graph definitions and are 0 on degenerate graphs.
//
// Concurrency:
//
//	A single sync.RWMutex guards the accumulator, so concurrent AddCollab
//	calls are safe. The intended lifecycle is simpler: build once, then
//	treat the value as immutable and share it freely.
//
// Errors (sentinel):
//
//	ErrEmptyArtistName – an empty name was passed where a node is required.
//	ErrSelfCollab      – both names of a pair are identical (self-edges are
//	                     impossible in this model and always rejected).
//	ErrBadCount        – a non-positive co-occurrence count was passed.
package core
