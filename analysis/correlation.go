// SPDX-License-Identifier: MIT
//
// File: correlation.go
// Role: Pearson correlation among the centrality measures, delegated to
//       gonum/stat.

package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Measure names used by the correlation matrix and report tables.
const (
	MeasureDegree      = "degree"
	MeasureBetweenness = "betweenness"
	MeasureEigenvector = "eigenvector"
)

// correlate builds the 3×3 Pearson matrix across the centrality vectors,
// aligned on the nodes every measure scored. When betweenness was sampled,
// the alignment shrinks to the sampled nodes — correlating a measure
// against nodes it never scored would be fiction.
//
// A constant vector (every node the same score, e.g. a clique's degrees)
// has an undefined correlation; such cells are reported as 0, diagonal
// cells as 1. Fewer than two aligned nodes yield nil: nothing to correlate.
//
// Complexity: O(V log V) alignment + O(V) per matrix cell.
func correlate(res *Result) *CorrelationMatrix {
	// Alignment: nodes present in every measure's score map.
	names := make([]string, 0, len(res.Betweenness.Scores))
	for name := range res.Betweenness.Scores {
		if _, ok := res.Degree[name]; !ok {
			continue
		}
		if _, ok := res.Eigenvector[name]; !ok {
			continue
		}
		names = append(names, name)
	}
	if len(names) < 2 {
		return nil
	}
	sort.Strings(names)

	vectors := [][]float64{
		make([]float64, len(names)),
		make([]float64, len(names)),
		make([]float64, len(names)),
	}
	for i, name := range names {
		vectors[0][i] = float64(res.Degree[name])
		vectors[1][i] = res.Betweenness.Scores[name]
		vectors[2][i] = res.Eigenvector[name]
	}

	matrix := &CorrelationMatrix{
		Measures: []string{MeasureDegree, MeasureBetweenness, MeasureEigenvector},
		Values:   make([][]float64, len(vectors)),
	}
	for i := range vectors {
		matrix.Values[i] = make([]float64, len(vectors))
		for j := range vectors {
			if i == j {
				matrix.Values[i][j] = 1
				continue
			}
			r := stat.Correlation(vectors[i], vectors[j], nil)
			if math.IsNaN(r) {
				r = 0 // constant vector: correlation undefined by convention
			}
			matrix.Values[i][j] = r
		}
	}

	return matrix
}
