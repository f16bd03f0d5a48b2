// SPDX-License-Identifier: MIT
//
// File: analyze.go
// Role: The single public pipeline entry-point producing the Result value.
// Determinism: identical graph + options ⇒ identical Result (seeded
//              delegates, sorted snapshots throughout).

package analysis

import (
	"fmt"

	"github.com/katalvlaran/collabnet/converters"
	"github.com/katalvlaran/collabnet/core"
)

// Analyze runs the whole delegated-analytics pipeline over g and returns
// one Result value for all downstream reporting.
//
// Steps:
//  1. Resolve options (sampling guard, seed, resolution).
//  2. Snapshot scalar summary; an empty graph short-circuits to a zeroed
//     Result — defined behavior, not an error.
//  3. Degree from core adjacency; betweenness (guarded) and eigenvector
//     via gonum; Louvain partition + modularity; connected components;
//     centrality correlation matrix.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrEigenFailed (wrapped with "Analyze:") if the eigendecomposition
//     does not converge.
//
// Complexity: dominated by betweenness on the guarded (sub)graph and the
// dense eigendecomposition; everything else is near-linear.
func Analyze(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)

	res := &Result{
		Summary:     *g.Stats(),
		Degree:      make(map[string]int),
		Betweenness: BetweennessResult{Scores: make(map[string]float64)},
		Eigenvector: make(map[string]float64),
	}

	// Degenerate empty graph: zero everywhere, empty tables downstream.
	if res.Summary.NodeCount == 0 {
		return res, nil
	}

	res.Degree = degreeCentrality(g)

	betweenness, err := betweennessCentrality(g, o)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	res.Betweenness = betweenness

	eigenvector, err := eigenvectorCentrality(g)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	res.Eigenvector = eigenvector

	wg, ix, err := converters.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	res.Communities, res.Modularity = detectCommunities(wg, ix, o)
	res.Components = componentStats(wg)

	res.Correlation = correlate(res)

	return res, nil
}
