// Package report renders analysis results for humans and downstream tools:
// Markdown tables, a JSON document and a DOT graph with layout positions.
//
// Contracts:
//
//   - Deterministic output: tables iterate sorted slices, never raw maps.
//     The same Result renders byte-identical reports.
//   - The betweenness section is explicitly labeled as a sample-based
//     estimate whenever the analysis sampled — the label is part of the
//     data contract, not decoration.
//   - Degenerate inputs render: an empty graph produces the zero summary
//     and empty tables, exactly as the pipeline defines them.
//
// Formats:
//
//	Write      – Markdown report (summary, top-N per centrality measure,
//	             community ranking, correlation matrix).
//	ExportJSON – goccy/go-json document with the graph and full result.
//	ExportDOT  – gonum graph/encoding/dot marshal of a visualization
//	             subset, with artist labels, edge weights and pos attributes.
//
// Errors (sentinel):
//
//	ErrNilResult – a nil *analysis.Result was passed.
//	ErrNilGraph  – a nil *core.Graph was passed to an exporter.
package report
