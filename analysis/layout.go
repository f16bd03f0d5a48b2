// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: Force-directed 2D layout for visualization subsets, delegated to
//       gonum layout.EadesR2. Visualization only — no analytics read
//       coordinates.

package analysis

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/layout"

	"github.com/katalvlaran/collabnet/converters"
	"github.com/katalvlaran/collabnet/core"
)

// Layout computes seeded force-directed coordinates for the subgraph
// induced by the given node names (duplicates collapse, unknown names are
// ignored). The same graph, subset and options reproduce the coordinates
// up to floating-point tolerance; the optimizer's force accumulation is
// not bit-exact across runs.
//
// Errors: ErrNilGraph.
// Complexity: O(updates · n log n) with the Barnes–Hut approximation.
func Layout(g *core.Graph, nodes []string, opts ...Option) (map[string]XY, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)

	wg, ix, err := converters.InducedSubgraph(g, nodes)
	if err != nil {
		return nil, err
	}

	out := make(map[string]XY, ix.Len())
	if ix.Len() == 0 {
		return out, nil
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.15,
		Updates:   o.layoutUpdates,
		Src:       rand.NewSource(o.seed),
	}
	optimizer := layout.NewOptimizerR2(wg, eades.Update)
	for optimizer.Update() {
	}

	for i, name := range ix.Names {
		coord := optimizer.Coord2(int64(i))
		out[name] = XY{X: coord.X, Y: coord.Y}
	}

	return out, nil
}

// TopByDegree returns the n highest-degree artists (ties broken by name
// ascending) — the conventional subset to lay out and plot.
//
// n <= 0 yields an empty slice; n beyond the node count yields all nodes.
// Complexity: O(V log V).
func TopByDegree(g *core.Graph, n int) []string {
	if g == nil || n <= 0 {
		return nil
	}

	names := g.Nodes()
	sort.SliceStable(names, func(i, j int) bool {
		di, dj := g.Degree(names[i]), g.Degree(names[j])
		if di != dj {
			return di > dj
		}

		return names[i] < names[j]
	})

	if n > len(names) {
		n = len(names)
	}

	return names[:n]
}
