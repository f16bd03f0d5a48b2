// Package analysis_test verifies the delegated pipeline end to end on
// small graphs with hand-checkable analytics.
package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabnet/analysis"
	"github.com/katalvlaran/collabnet/core"
)

// pathABC builds the 3-node path Alpha—Beta—Gamma (unit weights).
func pathABC(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCollab("Alpha", "Beta", 1))
	require.NoError(t, g.AddCollab("Beta", "Gamma", 1))

	return g
}

func TestAnalyze_NilGraph(t *testing.T) {
	t.Parallel()

	_, err := analysis.Analyze(nil)
	require.ErrorIs(t, err, analysis.ErrNilGraph)
}

func TestAnalyze_EmptyGraph(t *testing.T) {
	t.Parallel()

	// Degenerate input: zero summary, empty maps, no communities, nil
	// correlation — defined behavior, never an error or NaN.
	res, err := analysis.Analyze(core.NewGraph())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Summary.NodeCount)
	assert.Equal(t, 0, res.Summary.EdgeCount)
	assert.Equal(t, 0.0, res.Summary.Density)
	assert.Empty(t, res.Degree)
	assert.Empty(t, res.Betweenness.Scores)
	assert.False(t, res.Betweenness.Sampled)
	assert.Empty(t, res.Eigenvector)
	assert.Empty(t, res.Communities)
	assert.Equal(t, 0.0, res.Modularity)
	assert.Equal(t, 0, res.Components.Count)
	assert.Nil(t, res.Correlation)
}

func TestAnalyze_PathGraph(t *testing.T) {
	t.Parallel()

	res, err := analysis.Analyze(pathABC(t))
	require.NoError(t, err)

	// Summary.
	assert.Equal(t, 3, res.Summary.NodeCount)
	assert.Equal(t, 2, res.Summary.EdgeCount)

	// Degree: the middle node bridges the other two.
	assert.Equal(t, map[string]int{"Alpha": 1, "Beta": 2, "Gamma": 1}, res.Degree)

	// Betweenness: exact (no sampling), Beta carries the single shortest
	// path Alpha↔Gamma, normalized to exactly 1.
	assert.False(t, res.Betweenness.Sampled)
	assert.Equal(t, 3, res.Betweenness.SampleSize)
	assert.InDelta(t, 1.0, res.Betweenness.Scores["Beta"], 1e-9)
	assert.InDelta(t, 0.0, res.Betweenness.Scores["Alpha"], 1e-9)
	assert.InDelta(t, 0.0, res.Betweenness.Scores["Gamma"], 1e-9)

	// Eigenvector: principal eigenvector of the path is (1, √2, 1)/‖·‖,
	// scaled so Beta is 1 and the endpoints are 1/√2.
	assert.InDelta(t, 1.0, res.Eigenvector["Beta"], 1e-9)
	assert.InDelta(t, 0.70710678, res.Eigenvector["Alpha"], 1e-6)
	assert.InDelta(t, 0.70710678, res.Eigenvector["Gamma"], 1e-6)

	// One connected component of size 3.
	assert.Equal(t, 1, res.Components.Count)
	assert.Equal(t, 3, res.Components.LargestSize)

	// All three measures rank the path identically: correlations are 1.
	require.NotNil(t, res.Correlation)
	for i := range res.Correlation.Values {
		for j := range res.Correlation.Values[i] {
			assert.InDelta(t, 1.0, res.Correlation.Values[i][j], 1e-9,
				"corr(%s,%s)", res.Correlation.Measures[i], res.Correlation.Measures[j])
		}
	}
}

func TestAnalyze_TriangleEigenvectorUniform(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddCollab("A", "B", 1))
	require.NoError(t, g.AddCollab("B", "C", 1))
	require.NoError(t, g.AddCollab("A", "C", 1))

	res, err := analysis.Analyze(g)
	require.NoError(t, err)

	// Perfect symmetry: every node maxes the scaled score.
	for _, name := range []string{"A", "B", "C"} {
		assert.InDelta(t, 1.0, res.Eigenvector[name], 1e-9, name)
		assert.InDelta(t, 0.0, res.Betweenness.Scores[name], 1e-9, name)
	}

	// Constant vectors make correlation undefined: reported as 0 off the
	// diagonal, 1 on it.
	require.NotNil(t, res.Correlation)
	assert.Equal(t, 1.0, res.Correlation.Values[0][0])
	assert.Equal(t, 0.0, res.Correlation.Values[0][1])
}

func TestAnalyze_Deterministic(t *testing.T) {
	t.Parallel()

	g := pathABC(t)
	first, err := analysis.Analyze(g, analysis.WithSeed(42))
	require.NoError(t, err)
	second, err := analysis.Analyze(g, analysis.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { analysis.WithSampleThreshold(0) })
	assert.Panics(t, func() { analysis.WithSampleCap(1) })
	assert.Panics(t, func() { analysis.WithResolution(0) })
	assert.Panics(t, func() { analysis.WithResolution(-1) })
	assert.Panics(t, func() { analysis.WithLayoutUpdates(0) })
}
