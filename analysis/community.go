// SPDX-License-Identifier: MIT
//
// File: community.go
// Role: Louvain community detection and connected-component statistics,
//       both delegated to gonum.

package analysis

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/collabnet/converters"
)

// detectCommunities runs gonum's Louvain (community.Modularize) with a
// seeded source, translates node IDs back to artist names and orders the
// partition deterministically: largest community first, ties broken by the
// lexicographically smallest member; IDs are reassigned 0..k−1 in that
// order. The modularity score comes from community.Q on the same partition.
//
// Complexity: Louvain is near-linear in E per level in practice; the
// bookkeeping here is O(V log V).
func detectCommunities(wg *simple.WeightedUndirectedGraph, ix *converters.Index, o options) ([]Community, float64) {
	if ix.Len() == 0 {
		return nil, 0
	}

	src := rand.NewSource(o.seed)
	reduced := community.Modularize(wg, o.resolution, src)
	groups := reduced.Communities()
	modularity := community.Q(wg, groups, o.resolution)

	communities := make([]Community, 0, len(groups))
	for _, nodes := range groups {
		members := make([]string, 0, len(nodes))
		for _, node := range nodes {
			members = append(members, ix.Name(node.ID()))
		}
		sort.Strings(members)
		communities = append(communities, Community{Members: members})
	}

	sort.Slice(communities, func(i, j int) bool {
		if len(communities[i].Members) != len(communities[j].Members) {
			return len(communities[i].Members) > len(communities[j].Members)
		}

		return communities[i].Members[0] < communities[j].Members[0]
	})
	for i := range communities {
		communities[i].ID = i
	}

	return communities, modularity
}

// componentStats delegates to gonum topo.ConnectedComponents.
// Complexity: O(V + E).
func componentStats(wg graph.Undirected) ComponentStats {
	components := topo.ConnectedComponents(wg)

	stats := ComponentStats{Count: len(components)}
	for _, component := range components {
		if len(component) > stats.LargestSize {
			stats.LargestSize = len(component)
		}
	}

	return stats
}
