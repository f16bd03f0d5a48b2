// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The single public orchestrator, sequential and partitioned paths.
// Determinism: worker count never changes the resulting graph — partial
//              accumulators merge by summing weights (commutative,
//              associative), so partitioning strategy is irrelevant.

package builder

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/collabnet/core"
	"github.com/katalvlaran/collabnet/tracks"
)

// Build consumes the full record sequence in one pass and produces the
// aggregated collaboration graph.
//
// Steps:
//  1. Resolve options (delimiter, worker count).
//  2. Filter records failing the completeness check (silently skipped).
//  3. Per surviving record: parse artists, derive canonical pairs,
//     increment each pair's weight by 1.
//  4. With workers > 1: partition records across independent accumulators,
//     then merge by summing weights for matching canonical pairs.
//
// The function is purely functional over its input: records are never
// mutated, and the same input with any options yields an identical graph.
//
// Errors:
//   - Accumulation failures are wrapped with "Build:" context and preserve
//     core sentinels for errors.Is; the pairing rules make them
//     unreachable for pair sets produced by TrackPairs.
//
// Complexity: O(Σ per-track parse + Σ C(k,2)) time; O(V + E) space.
func Build(records []tracks.Record, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	// Small inputs gain nothing from fan-out; keep the simple path.
	if cfg.workers == 1 || len(records) < cfg.workers {
		g := core.NewGraph()
		if err := accumulate(g, records, cfg.delimiter); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}

		return g, nil
	}

	return buildPartitioned(records, cfg)
}

// buildPartitioned splits records into cfg.workers contiguous chunks, runs
// one accumulator per chunk (no shared mutable state) and merges the
// partial graphs by edge-weight summation.
func buildPartitioned(records []tracks.Record, cfg config) (*core.Graph, error) {
	partials := make([]*core.Graph, cfg.workers)
	chunk := (len(records) + cfg.workers - 1) / cfg.workers

	var eg errgroup.Group
	for w := 0; w < cfg.workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(records) {
			hi = len(records)
		}
		if lo >= hi {
			continue
		}

		part := core.NewGraph()
		partials[w] = part
		slice := records[lo:hi]
		eg.Go(func() error {
			return accumulate(part, slice, cfg.delimiter)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Merge: each partial edge re-applies its full weight onto the result.
	// Summation order is irrelevant, so chunk boundaries never show.
	g := core.NewGraph()
	for _, part := range partials {
		if part == nil {
			continue
		}
		for _, e := range part.Edges() {
			if err := g.AddCollab(e.A, e.B, e.Weight); err != nil {
				return nil, fmt.Errorf("Build: merge: %w", err)
			}
		}
	}

	return g, nil
}

// accumulate folds one record slice into g: filter, parse, pair, count.
func accumulate(g *core.Graph, records []tracks.Record, delimiter string) error {
	for _, record := range records {
		// Expected data noise: skip, never fail.
		if !record.Valid() {
			continue
		}
		for _, pair := range TrackPairs(tracks.SplitArtists(record.Artists, delimiter)) {
			if err := g.AddCollab(pair.A, pair.B, pair.Weight); err != nil {
				return fmt.Errorf("track %s: %w", record.ID, err)
			}
		}
	}

	return nil
}
