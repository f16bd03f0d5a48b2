// Package builder_test provides runnable examples for graph assembly.
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/collabnet/builder"
	"github.com/katalvlaran/collabnet/tracks"
)

// ExampleBuild demonstrates the full record-to-graph transformation:
// incomplete rows are skipped, single-artist tracks contribute no edges,
// and repeat collaborations accumulate weight.
func ExampleBuild() {
	// 1) Five input rows, two of which cannot contribute edges.
	records := []tracks.Record{
		{ID: "T1", Artists: "Alpha;Beta"},
		{ID: "T2", Artists: "Beta;Gamma"},
		{ID: "T3", Artists: "Alpha;Beta"},
		{ID: "T4", Artists: ""},     // blank artist field: skipped
		{ID: "T5", Artists: "Delta"}, // single artist: no co-occurrence
	}

	// 2) Build the collaboration graph in one pass.
	g, err := builder.Build(records)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Deterministic snapshot: sorted nodes, sorted canonical edges.
	fmt.Println("nodes:", g.Nodes())
	for _, e := range g.Edges() {
		fmt.Printf("%s—%s w=%d\n", e.A, e.B, e.Weight)
	}
	// Output:
	// nodes: [Alpha Beta Gamma]
	// Alpha—Beta w=2
	// Beta—Gamma w=1
}

// ExampleTrackPairs demonstrates unique-before-pairing and canonical order.
func ExampleTrackPairs() {
	// The repeated "A" cannot self-pair or double-count.
	for _, p := range builder.TrackPairs([]string{"B", "A", "A", "C"}) {
		fmt.Printf("(%s,%s)\n", p.A, p.B)
	}
	// Output:
	// (A,B)
	// (A,C)
	// (B,C)
}
