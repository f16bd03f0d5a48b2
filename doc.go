// Package collabnet turns flat chart-track data into artist collaboration
// networks — and hands the heavy analytics to the libraries that do them best.
//
// 🚀 What is collabnet?
//
//	A small, deterministic toolkit that:
//		• Ingests a CSV of tracks (track_id, track_name, semicolon-separated artists)
//		• Derives every unordered artist pair that co-appears on a track
//		• Aggregates pairs into a weighted undirected collaboration graph
//		• Delegates centrality, community detection and layout to gonum
//		• Renders Markdown reports plus JSON/DOT exports
//
// ✨ Why collabnet?
//
//   - Deterministic by construction – same input ⇒ identical graph, tables and exports
//   - Honest about data – artist names are kept verbatim (trim-only), never "fixed"
//   - Delegation over reinvention – no in-house betweenness, Louvain or layout code
//   - Safe degradation – malformed rows are skipped, empty inputs yield empty graphs
//
// The module is organized as flat topic packages:
//
//	core/       — the weighted undirected collaboration Graph value & statistics
//	tracks/     — track records, artist-field parsing, CSV ingestion
//	builder/    — per-track pair derivation and (optionally parallel) assembly
//	converters/ — adapters from core.Graph to gonum graph representations
//	analysis/   — delegated centrality, communities, components, correlation, layout
//	report/     — Markdown tables, JSON export, DOT export
//	cmd/        — the collabnet CLI (analyze, stats, version)
//
// Quick ASCII example — three tracks, three artists:
//
//	T1: Alpha;Beta      Alpha───Beta        edge (Alpha,Beta)  weight 2
//	T2: Beta;Gamma               │
//	T3: Alpha;Beta              Gamma       edge (Beta,Gamma)  weight 1
//
// Dive into each package's doc.go for contracts, complexity notes and the
// full error catalog.
//
//	go get github.com/katalvlaran/collabnet
package collabnet
