// Package report_test renders a small analyzed graph through every output
// format and checks the contract-bearing fragments.
package report_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabnet/analysis"
	"github.com/katalvlaran/collabnet/core"
	"github.com/katalvlaran/collabnet/report"
)

// pathGraph builds Alpha—Beta—Gamma with weights 2 and 1.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCollab("Alpha", "Beta", 2))
	require.NoError(t, g.AddCollab("Beta", "Gamma", 1))

	return g
}

func analyzed(t *testing.T, g *core.Graph, opts ...analysis.Option) *analysis.Result {
	t.Helper()
	res, err := analysis.Analyze(g, opts...)
	require.NoError(t, err)

	return res
}

func TestWrite_RendersAllSections(t *testing.T) {
	t.Parallel()

	g := pathGraph(t)
	res := analyzed(t, g)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))
	out := buf.String()

	// Every section is present.
	assert.Contains(t, out, "# Collaboration Network Report")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## Top artists by degree")
	assert.Contains(t, out, "## Top artists by betweenness")
	assert.Contains(t, out, "## Top artists by eigenvector centrality")
	assert.Contains(t, out, "## Communities")
	assert.Contains(t, out, "## Centrality correlation")

	// Beta leads every centrality ranking on a path graph.
	assert.Contains(t, out, "| 1 | Beta | 2 |")
	assert.Contains(t, out, "| 1 | Beta | 1.000000 |")

	// Exact computation carries no estimate disclaimer.
	assert.NotContains(t, out, "estimate")

	// Summary scalars.
	assert.Contains(t, out, "| Artists (nodes) | 3 |")
	assert.Contains(t, out, "| Collaborations (edges) | 2 |")
	assert.Contains(t, out, "| Strongest pair weight | 2 |")
}

func TestWrite_LabelsSampledBetweenness(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
		{"E", "F"}, {"F", "G"}, {"G", "H"},
	} {
		require.NoError(t, g.AddCollab(pair[0], pair[1], 1))
	}
	res := analyzed(t, g,
		analysis.WithSampleThreshold(4),
		analysis.WithSampleCap(3),
	)
	require.True(t, res.Betweenness.Sampled)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))

	assert.Contains(t, buf.String(), "Sample-based estimate over 3 nodes")
}

func TestWrite_IsDeterministic(t *testing.T) {
	t.Parallel()

	res := analyzed(t, pathGraph(t))

	var first, second bytes.Buffer
	require.NoError(t, report.Write(&first, res))
	require.NoError(t, report.Write(&second, res))

	assert.Equal(t, first.String(), second.String())
}

func TestWrite_TopNAndTitle(t *testing.T) {
	t.Parallel()

	res := analyzed(t, pathGraph(t))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res,
		report.WithTopN(1),
		report.WithTitle("Weekly Chart Network"),
	))
	out := buf.String()

	assert.Contains(t, out, "# Weekly Chart Network")
	assert.Contains(t, out, "| 1 | Beta |")

	// With topN=1 the runner-up rows never render.
	assert.NotContains(t, out, "| 2 | Alpha |")
	assert.NotContains(t, out, "| 2 | Gamma |")
}

func TestWrite_EmptyResultAndNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, report.Write(&bytes.Buffer{}, nil), report.ErrNilResult)

	res := analyzed(t, core.NewGraph())
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))

	assert.Contains(t, buf.String(), "| Artists (nodes) | 0 |")
	assert.Contains(t, buf.String(), "Not enough scored nodes to correlate.")
}

func TestWrite_OptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { report.WithTopN(0) })
}

func TestExportJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	g := pathGraph(t)
	res := analyzed(t, g)

	var buf bytes.Buffer
	require.NoError(t, report.ExportJSON(&buf, g, res))

	var doc struct {
		Summary struct {
			NodeCount int `json:"node_count"`
			EdgeCount int `json:"edge_count"`
		} `json:"summary"`
		Nodes []string `json:"nodes"`
		Edges []struct {
			A      string `json:"a"`
			B      string `json:"b"`
			Weight int64  `json:"weight"`
		} `json:"edges"`
		Degree []struct {
			Artist string  `json:"artist"`
			Score  float64 `json:"score"`
		} `json:"degree"`
		Sampled     bool    `json:"betweenness_sampled"`
		SampleSize  int     `json:"betweenness_sample_size"`
		Modularity  float64 `json:"modularity"`
		Communities []struct {
			ID      int      `json:"id"`
			Members []string `json:"members"`
		} `json:"communities"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.Summary.NodeCount)
	assert.Equal(t, 2, doc.Summary.EdgeCount)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, doc.Nodes)

	require.Len(t, doc.Edges, 2)
	assert.Equal(t, "Alpha", doc.Edges[0].A)
	assert.Equal(t, "Beta", doc.Edges[0].B)
	assert.Equal(t, int64(2), doc.Edges[0].Weight)

	// Scores arrive sorted by value descending.
	require.NotEmpty(t, doc.Degree)
	assert.Equal(t, "Beta", doc.Degree[0].Artist)
	assert.Equal(t, 2.0, doc.Degree[0].Score)

	assert.False(t, doc.Sampled)
	assert.Equal(t, 3, doc.SampleSize)
	assert.NotEmpty(t, doc.Communities)
}

func TestExportJSON_NilArguments(t *testing.T) {
	t.Parallel()

	res := analyzed(t, core.NewGraph())
	require.ErrorIs(t, report.ExportJSON(&bytes.Buffer{}, nil, res), report.ErrNilGraph)
	require.ErrorIs(t, report.ExportJSON(&bytes.Buffer{}, core.NewGraph(), nil), report.ErrNilResult)
}

func TestExportDOT_SubsetWithPositions(t *testing.T) {
	t.Parallel()

	g := pathGraph(t)
	pos := map[string]analysis.XY{
		"Alpha": {X: 0.5, Y: 1.25},
		"Beta":  {X: -1, Y: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, report.ExportDOT(&buf, g, []string{"Alpha", "Beta", "Ghost"}, pos))
	out := buf.String()

	// Only known artists survive; the subgraph keeps their edge.
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Ghost")
	assert.NotContains(t, out, "Gamma")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "weight=2")
	assert.Contains(t, out, `pos="0.5000,1.2500"`)

	// Determinism.
	var again bytes.Buffer
	require.NoError(t, report.ExportDOT(&again, g, []string{"Beta", "Alpha", "Alpha", "Ghost"}, pos))
	assert.Equal(t, out, again.String())
}

func TestExportDOT_NilGraph(t *testing.T) {
	t.Parallel()

	err := report.ExportDOT(&bytes.Buffer{}, nil, []string{"A"}, nil)
	require.ErrorIs(t, err, report.ErrNilGraph)
}

func TestExportDOT_OmitsPosWhenAbsent(t *testing.T) {
	t.Parallel()

	g := pathGraph(t)

	var buf bytes.Buffer
	require.NoError(t, report.ExportDOT(&buf, g, g.Nodes(), nil))

	out := buf.String()
	assert.NotContains(t, out, "pos=")

	// simple.WeightedUndirectedGraph marshals as a strict graph.
	assert.True(t, strings.HasPrefix(out, "strict graph collabnet {"))
}
