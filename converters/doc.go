// Package converters provides one-way adapters from the collaboration
// core.Graph to gonum graph representations, so that all network analytics
// (centrality, community detection, components, layout) run on gonum's
// implementations instead of in-house code.
//
// Node numbering:
//
//	gonum identifies nodes by int64. The adapter numbers nodes by the sorted
//	order of their names (0..n−1) and returns an Index translating both
//	ways. Because core.Graph snapshots are sorted, the numbering — and
//	therefore every downstream analytics result — is deterministic.
//
// Weights:
//
//	Edge weights are co-occurrence counts (int64) widened to float64, the
//	weight type gonum expects.
//
// Errors (sentinel):
//
//	ErrNilGraph – a nil *core.Graph was passed.
package converters
