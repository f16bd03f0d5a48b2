// Package converters_test verifies the gonum export: deterministic
// numbering, weight widening and induced-subset semantics.
package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabnet/converters"
	"github.com/katalvlaran/collabnet/core"
)

// pathGraph builds Alpha—Beta (w=2), Beta—Gamma (w=1).
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCollab("Alpha", "Beta", 2))
	require.NoError(t, g.AddCollab("Beta", "Gamma", 1))

	return g
}

func TestToGonum_NilGraph(t *testing.T) {
	t.Parallel()

	_, _, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	_, _, err = converters.InducedSubgraph(nil, []string{"Alpha"})
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestToGonum_DeterministicIndex(t *testing.T) {
	t.Parallel()

	wg, ix, err := converters.ToGonum(pathGraph(t))
	require.NoError(t, err)

	// IDs follow sorted name order.
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, ix.Names)
	assert.Equal(t, 3, ix.Len())

	alpha, ok := ix.ID("Alpha")
	require.True(t, ok)
	assert.Equal(t, int64(0), alpha)
	assert.Equal(t, "Gamma", ix.Name(2))
	assert.Equal(t, "", ix.Name(99))

	_, ok = ix.ID("Delta")
	assert.False(t, ok)

	assert.Equal(t, 3, wg.Nodes().Len())
	assert.Equal(t, 2, wg.Edges().Len())
}

func TestToGonum_WeightsWidened(t *testing.T) {
	t.Parallel()

	wg, ix, err := converters.ToGonum(pathGraph(t))
	require.NoError(t, err)

	alpha, _ := ix.ID("Alpha")
	beta, _ := ix.ID("Beta")
	gamma, _ := ix.ID("Gamma")

	// Undirected: both orientations resolve to the same weighted edge.
	w, ok := wg.Weight(alpha, beta)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	w, ok = wg.Weight(beta, alpha)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	// Non-adjacent pair has no edge.
	assert.Nil(t, wg.WeightedEdge(alpha, gamma))
}

func TestToGonum_EmptyGraph(t *testing.T) {
	t.Parallel()

	wg, ix, err := converters.ToGonum(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, wg.Nodes().Len())
}

func TestInducedSubgraph(t *testing.T) {
	t.Parallel()

	// Triangle plus a pendant, cut down to the triangle.
	g := core.NewGraph()
	require.NoError(t, g.AddCollab("A", "B", 1))
	require.NoError(t, g.AddCollab("B", "C", 1))
	require.NoError(t, g.AddCollab("A", "C", 1))
	require.NoError(t, g.AddCollab("C", "D", 5))

	wg, ix, err := converters.InducedSubgraph(g, []string{"C", "A", "B", "A", "Nope"})
	require.NoError(t, err)

	// Unknown names ignored, duplicates collapsed, result sorted.
	assert.Equal(t, []string{"A", "B", "C"}, ix.Names)
	assert.Equal(t, 3, wg.Nodes().Len())
	assert.Equal(t, 3, wg.Edges().Len())

	// The pendant edge C—D is cut with D.
	c, _ := ix.ID("C")
	_, hasD := ix.ID("D")
	assert.False(t, hasD)
	assert.Equal(t, 2, wg.From(c).Len())
}

func TestInducedSubgraph_IsolatedNodesKept(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddCollab("A", "B", 1))
	require.NoError(t, g.AddCollab("C", "D", 1))

	// A and C are named but their partners are not: both survive isolated.
	wg, ix, err := converters.InducedSubgraph(g, []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ix.Names)
	assert.Equal(t, 2, wg.Nodes().Len())
	assert.Equal(t, 0, wg.Edges().Len())
}
