// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph → gonum simple.WeightedUndirectedGraph, with a
//       deterministic name⇄ID index; full graph and induced-subset forms.

package converters

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/collabnet/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to a converter.
var ErrNilGraph = errors.New("converters: graph is nil")

// Index translates between artist names and gonum node IDs.
//
// Names is sorted ascending and position equals the gonum node ID, so the
// mapping is reproducible across runs for the same graph.
type Index struct {
	// Names holds artist names in ID order (Names[id] == name).
	Names []string

	// IDs maps an artist name to its gonum node ID.
	IDs map[string]int64
}

// Name returns the artist name for a gonum node ID, or "" if out of range.
// Complexity: O(1).
func (ix *Index) Name(id int64) string {
	if id < 0 || id >= int64(len(ix.Names)) {
		return ""
	}

	return ix.Names[id]
}

// ID returns the gonum node ID for an artist name.
// Complexity: O(1).
func (ix *Index) ID(name string) (int64, bool) {
	id, ok := ix.IDs[name]

	return id, ok
}

// Len returns the number of indexed nodes. Complexity: O(1).
func (ix *Index) Len() int { return len(ix.Names) }

// ToGonum exports the full collaboration graph into a gonum weighted
// undirected graph plus its name index.
//
// An empty core graph maps to an empty (but usable) gonum graph.
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, *Index, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	return fromNames(g, g.Nodes())
}

// InducedSubgraph exports the subgraph induced by the given node names:
// the named nodes plus every edge whose both endpoints are named.
//
// Names absent from the graph are ignored; duplicates collapse. Nodes that
// lose all their edges in the cut remain as isolated gonum nodes, which is
// exactly what sampled centrality estimation needs.
// Complexity: O(V log V + E).
func InducedSubgraph(g *core.Graph, nodes []string) (*simple.WeightedUndirectedGraph, *Index, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// Deduplicate and keep only names the graph actually contains.
	keep := make(map[string]struct{}, len(nodes))
	unique := make([]string, 0, len(nodes))
	for _, name := range nodes {
		if _, dup := keep[name]; dup {
			continue
		}
		if !g.HasNode(name) {
			continue
		}
		keep[name] = struct{}{}
		unique = append(unique, name)
	}
	sort.Strings(unique)

	return fromNames(g, unique)
}

// fromNames builds the gonum graph over exactly the given sorted names.
func fromNames(g *core.Graph, names []string) (*simple.WeightedUndirectedGraph, *Index, error) {
	ix := &Index{
		Names: names,
		IDs:   make(map[string]int64, len(names)),
	}

	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i, name := range names {
		id := int64(i)
		ix.IDs[name] = id
		wg.AddNode(simple.Node(id))
	}

	// Edges() is sorted, so edge insertion order is deterministic too.
	for _, e := range g.Edges() {
		from, okA := ix.IDs[e.A]
		to, okB := ix.IDs[e.B]
		if !okA || !okB {
			continue // endpoint outside the induced subset
		}
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(from),
			T: simple.Node(to),
			W: float64(e.Weight),
		})
	}

	return wg, ix, nil
}
