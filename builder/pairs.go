// SPDX-License-Identifier: MIT
//
// File: pairs.go
// Role: Per-track pair derivation: unique-before-pairing, canonical order.

package builder

import (
	"sort"

	"github.com/katalvlaran/collabnet/core"
)

// TrackPairs derives the set of unordered artist pairs co-occurring on one
// track, from that track's parsed artist-name sequence.
//
// Rules:
//  1. Deduplicate names first (case-sensitive exact match), so a repeated
//     name neither self-pairs nor double-counts.
//  2. Fewer than two distinct names ⇒ empty result (no edges contributed).
//  3. Pairs are emitted with the lexicographically smaller name first, and
//     the pair list itself is sorted — fully deterministic output.
//
// Each returned Edge carries Weight 1: one track, one count per pair.
// A track with k distinct artists yields exactly k·(k−1)/2 pairs.
//
// Complexity: O(k log k + k²) for k distinct names (the pair set is
// quadratic by definition; chart tracks keep k tiny).
func TrackPairs(artists []string) []core.Edge {
	// 1) Unique-before-pairing. Empty names cannot occur after parsing,
	//    but guard anyway: they could never become nodes.
	seen := make(map[string]struct{}, len(artists))
	unique := make([]string, 0, len(artists))
	for _, name := range artists {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	// 2) Single-artist and empty tracks contribute nothing.
	if len(unique) < 2 {
		return nil
	}

	// 3) Sorting first makes every emitted pair canonical (unique[i] <
	//    unique[j] for i < j) and the overall order reproducible.
	sort.Strings(unique)

	pairs := make([]core.Edge, 0, len(unique)*(len(unique)-1)/2)
	for i := 0; i < len(unique)-1; i++ {
		for j := i + 1; j < len(unique); j++ {
			pairs = append(pairs, core.Edge{A: unique[i], B: unique[j], Weight: 1})
		}
	}

	return pairs
}
