// Package analysis computes network analytics over a collaboration graph by
// delegating every algorithm to gonum — no centrality, community detection
// or layout code is implemented here.
//
// One pipeline call, one value:
//
//	res, err := analysis.Analyze(g, analysis.WithSeed(7))
//
// Analyze produces a single Result that reporting steps receive explicitly;
// there are no package-level ambient variables shared between outputs.
//
// Delegations:
//
//   - Degree centrality    – distinct-neighbor counts from core adjacency.
//   - Betweenness          – gonum network.Betweenness, normalized to [0,1]
//     by (n−1)(n−2) of the graph actually computed on.
//   - Eigenvector          – principal eigenvector of the weighted adjacency
//     via gonum mat.EigenSym, scaled so the maximum component is 1.
//   - Communities          – gonum community.Modularize (Louvain), with the
//     modularity score from community.Q.
//   - Connected components – gonum topo.ConnectedComponents.
//   - Measure correlation  – Pearson via gonum stat.Correlation.
//   - 2D layout            – gonum layout.EadesR2 (force-directed), for
//     visualization subsets only.
//
// Large-graph guard:
//
//	Betweenness is the expensive measure. When the node count exceeds
//	SampleThreshold, it is computed on the subgraph induced by a seeded
//	uniform sample of at most SampleCap nodes, and the result is labeled
//	Sampled with its SampleSize — an estimate is never silently passed off
//	as the exact value, and the full graph is never silently used above
//	the threshold.
//
// Degenerate inputs:
//
//	An empty graph yields a fully zeroed Result — empty maps, no
//	communities, zero modularity, nil correlation — and no error. Nothing
//	here divides by zero.
//
// Determinism:
//
//	All stochastic delegates (Louvain, sampling, layout) run from the
//	configured seed; identical graph + options ⇒ identical Result. Layout
//	coordinates are the one exception: reproducible up to floating-point
//	tolerance, not bit-exact (see Layout).
//
// Errors (sentinel):
//
//	ErrNilGraph     – a nil *core.Graph was passed.
//	ErrEigenFailed  – the eigendecomposition did not converge (pathological
//	                  inputs only; never observed on co-occurrence graphs).
package analysis
