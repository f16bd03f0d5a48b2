// SPDX-License-Identifier: MIT
//
// File: tables.go
// Role: Markdown report rendering. Pure string assembly over sorted rows;
//       one Write at the end so partial output never escapes on error.

package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/collabnet/analysis"
)

// Sentinel errors for the report package.
var (
	// ErrNilResult indicates a nil *analysis.Result was passed.
	ErrNilResult = errors.New("report: result is nil")

	// ErrNilGraph indicates a nil *core.Graph was passed to an exporter.
	ErrNilGraph = errors.New("report: graph is nil")
)

// DefaultTopN is the number of rows in each centrality table.
const DefaultTopN = 10

// options aggregates rendering knobs.
type options struct {
	topN  int
	title string
}

// Option configures report rendering.
type Option func(*options)

// WithTopN sets the number of rows per centrality table. Panics when n < 1.
func WithTopN(n int) Option {
	if n < 1 {
		panic("report: WithTopN requires n >= 1")
	}

	return func(o *options) { o.topN = n }
}

// WithTitle overrides the report heading.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

func newOptions(opts ...Option) options {
	o := options{
		topN:  DefaultTopN,
		title: "Collaboration Network Report",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Write renders res as a Markdown report.
//
// Sections: scalar summary, top-N per centrality measure, community size
// ranking, correlation matrix. Sampled betweenness is labeled as an
// estimate. Empty results render empty tables, not errors.
//
// Errors: ErrNilResult, or the writer's error.
// Complexity: O(V log V) for the rankings.
func Write(w io.Writer, res *analysis.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := newOptions(opts...)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", o.title)

	writeSummary(&b, res)
	writeDegreeTable(&b, res, o.topN)
	writeBetweennessTable(&b, res, o.topN)
	writeEigenvectorTable(&b, res, o.topN)
	writeCommunities(&b, res)
	writeCorrelation(&b, res)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

func writeSummary(b *strings.Builder, res *analysis.Result) {
	s := res.Summary
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Artists (nodes) | %d |\n", s.NodeCount)
	fmt.Fprintf(b, "| Collaborations (edges) | %d |\n", s.EdgeCount)
	fmt.Fprintf(b, "| Total co-occurrences | %d |\n", s.TotalWeight)
	fmt.Fprintf(b, "| Strongest pair weight | %d |\n", s.MaxWeight)
	fmt.Fprintf(b, "| Average degree | %.4f |\n", s.AverageDegree)
	fmt.Fprintf(b, "| Density | %.6f |\n", s.Density)
	fmt.Fprintf(b, "| Connected components | %d |\n", res.Components.Count)
	fmt.Fprintf(b, "| Largest component | %d |\n\n", res.Components.LargestSize)
}

func writeDegreeTable(b *strings.Builder, res *analysis.Result, topN int) {
	b.WriteString("## Top artists by degree\n\n")
	b.WriteString("| Rank | Artist | Degree |\n|---|---|---|\n")
	for i, row := range rankInt(res.Degree, topN) {
		fmt.Fprintf(b, "| %d | %s | %d |\n", i+1, row.name, row.value)
	}
	b.WriteString("\n")
}

func writeBetweennessTable(b *strings.Builder, res *analysis.Result, topN int) {
	b.WriteString("## Top artists by betweenness\n\n")
	if res.Betweenness.Sampled {
		// The estimate label is part of the contract, never dropped.
		fmt.Fprintf(b, "Sample-based estimate over %d nodes — not an exact ranking.\n\n",
			res.Betweenness.SampleSize)
	}
	b.WriteString("| Rank | Artist | Betweenness |\n|---|---|---|\n")
	for i, row := range rankFloat(res.Betweenness.Scores, topN) {
		fmt.Fprintf(b, "| %d | %s | %.6f |\n", i+1, row.name, row.value)
	}
	b.WriteString("\n")
}

func writeEigenvectorTable(b *strings.Builder, res *analysis.Result, topN int) {
	b.WriteString("## Top artists by eigenvector centrality\n\n")
	b.WriteString("| Rank | Artist | Eigenvector |\n|---|---|---|\n")
	for i, row := range rankFloat(res.Eigenvector, topN) {
		fmt.Fprintf(b, "| %d | %s | %.6f |\n", i+1, row.name, row.value)
	}
	b.WriteString("\n")
}

// communityPreviewMembers caps the member preview column.
const communityPreviewMembers = 5

func writeCommunities(b *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(b, "## Communities (modularity %.4f)\n\n", res.Modularity)
	b.WriteString("| Rank | Size | Members (first 5) |\n|---|---|---|\n")
	for _, community := range res.Communities {
		preview := community.Members
		if len(preview) > communityPreviewMembers {
			preview = preview[:communityPreviewMembers]
		}
		fmt.Fprintf(b, "| %d | %d | %s |\n",
			community.ID+1, community.Size(), strings.Join(preview, ", "))
	}
	b.WriteString("\n")
}

func writeCorrelation(b *strings.Builder, res *analysis.Result) {
	b.WriteString("## Centrality correlation\n\n")
	if res.Correlation == nil {
		b.WriteString("Not enough scored nodes to correlate.\n")

		return
	}

	b.WriteString("| |")
	for _, measure := range res.Correlation.Measures {
		fmt.Fprintf(b, " %s |", measure)
	}
	b.WriteString("\n|---|")
	for range res.Correlation.Measures {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for i, measure := range res.Correlation.Measures {
		fmt.Fprintf(b, "| %s |", measure)
		for _, value := range res.Correlation.Values[i] {
			fmt.Fprintf(b, " %.4f |", value)
		}
		b.WriteString("\n")
	}
}

// ranked is one ranking row.
type ranked[T int | float64] struct {
	name  string
	value T
}

// rankInt ranks an int-valued score map: value desc, name asc, top n.
func rankInt(scores map[string]int, n int) []ranked[int] {
	rows := make([]ranked[int], 0, len(scores))
	for name, value := range scores {
		rows = append(rows, ranked[int]{name: name, value: value})
	}

	return topRows(rows, n)
}

// rankFloat ranks a float-valued score map: value desc, name asc, top n.
func rankFloat(scores map[string]float64, n int) []ranked[float64] {
	rows := make([]ranked[float64], 0, len(scores))
	for name, value := range scores {
		rows = append(rows, ranked[float64]{name: name, value: value})
	}

	return topRows(rows, n)
}

func topRows[T int | float64](rows []ranked[T], n int) []ranked[T] {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].value != rows[j].value {
			return rows[i].value > rows[j].value
		}

		return rows[i].name < rows[j].name
	})
	if n > len(rows) {
		n = len(rows)
	}

	return rows[:n]
}
