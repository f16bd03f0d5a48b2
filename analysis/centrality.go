// SPDX-License-Identifier: MIT
//
// File: centrality.go
// Role: Degree, betweenness (with the large-graph sampling guard) and
//       eigenvector centrality. All heavy lifting is delegated to gonum.

package analysis

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/collabnet/converters"
	"github.com/katalvlaran/collabnet/core"
)

// degreeCentrality reads distinct-neighbor counts straight off the core
// adjacency (the documented unweighted degree semantics).
// Complexity: O(V log V) for the sorted node snapshot.
func degreeCentrality(g *core.Graph) map[string]int {
	names := g.Nodes()
	out := make(map[string]int, len(names))
	for _, name := range names {
		out[name] = g.Degree(name)
	}

	return out
}

// betweennessCentrality delegates to gonum network.Betweenness.
//
// Guard: above o.sampleThreshold nodes the computation runs on the subgraph
// induced by a seeded uniform sample of at most o.sampleCap nodes, and the
// result is labeled Sampled. The full graph is never silently used above
// the threshold, and an estimate is never passed off as exact.
//
// Scores are normalized into [0,1] by (n−1)(n−2), n being the node count of
// the graph actually computed on (gonum's undirected Brandes accumulates
// from every source, hence the ordered-pair denominator).
//
// Complexity: O(n·e) on the computed (sub)graph — the reason the guard exists.
func betweennessCentrality(g *core.Graph, o options) (BetweennessResult, error) {
	res := BetweennessResult{Scores: make(map[string]float64, g.NodeCount())}

	names := g.Nodes()
	if len(names) == 0 {
		return res, nil
	}

	subset := names
	if len(names) > o.sampleThreshold {
		res.Sampled = true
		subset = sampleNames(names, o.sampleCap, o.seed)
	}
	res.SampleSize = len(subset)

	wg, ix, err := converters.InducedSubgraph(g, subset)
	if err != nil {
		return res, err
	}

	raw := network.Betweenness(wg)
	denominator := float64(ix.Len()-1) * float64(ix.Len()-2)
	for i, name := range ix.Names {
		var score float64
		if denominator > 0 {
			score = raw[int64(i)] / denominator // absent keys read as 0
		}
		res.Scores[name] = score
	}

	return res, nil
}

// sampleNames picks a uniform sample of at most limit names, seeded for
// reproducibility. The input slice is never mutated.
// Complexity: O(len(names)).
func sampleNames(names []string, limit int, seed uint64) []string {
	if len(names) <= limit {
		return names
	}

	rnd := rand.New(rand.NewPCG(seed, seed))
	perm := rnd.Perm(len(names))

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = names[perm[i]]
	}

	return out
}

// eigenvectorCentrality delegates to gonum's symmetric eigendecomposition:
// the score vector is the principal eigenvector of the weighted adjacency
// matrix, components taken non-negative and scaled so the maximum is 1.
//
// On disconnected graphs the principal eigenvector concentrates on the
// dominant component; peripheral components score near zero. That matches
// the conventional report-level reading of eigenvector centrality.
//
// Graphs with fewer than two nodes yield zero scores (nothing to rank).
// Complexity: O(V³) worst case for the dense decomposition; collaboration
// graphs stay far below the sizes where this bites before the betweenness
// guard would anyway.
func eigenvectorCentrality(g *core.Graph) (map[string]float64, error) {
	names := g.Nodes()
	out := make(map[string]float64, len(names))
	if len(names) < 2 {
		for _, name := range names {
			out[name] = 0
		}

		return out, nil
	}

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	// Weighted adjacency as a symmetric dense matrix.
	adjacency := mat.NewSymDense(len(names), nil)
	for _, e := range g.Edges() {
		adjacency.SetSym(ids[e.A], ids[e.B], float64(e.Weight))
	}

	var es mat.EigenSym
	if !es.Factorize(adjacency, true) {
		return nil, ErrEigenFailed
	}

	// Eigenvalues come back ascending: the principal vector is the last column.
	var vectors mat.Dense
	es.VectorsTo(&vectors)
	principal := len(names) - 1

	// Fix the sign so the dominant component is positive, then clamp the
	// numerical dust below zero and scale the maximum to 1.
	var peak float64
	for i := range names {
		if v := vectors.At(i, principal); abs(v) > abs(peak) {
			peak = v
		}
	}
	if peak == 0 {
		for _, name := range names {
			out[name] = 0
		}

		return out, nil
	}

	sign := 1.0
	if peak < 0 {
		sign = -1.0
	}
	scale := sign / abs(peak)
	for i, name := range names {
		score := vectors.At(i, principal) * scale
		if score < 0 {
			score = 0
		}
		out[name] = score
	}

	return out, nil
}

// abs avoids importing math for one float operation.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
