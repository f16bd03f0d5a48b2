// SPDX-License-Identifier: MIT
//
// File: export.go
// Role: machine-readable exports. JSON for downstream pipelines, DOT for
//       Graphviz rendering of the visualization subset.

package report

import (
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/collabnet/analysis"
	"github.com/katalvlaran/collabnet/core"
)

// jsonEdge is one collaboration pair in the JSON document.
type jsonEdge struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Weight int64  `json:"weight"`
}

// jsonScore is one (artist, score) row; score slices are sorted by
// value descending, name ascending, so the document is deterministic.
type jsonScore struct {
	Artist string  `json:"artist"`
	Score  float64 `json:"score"`
}

// jsonCommunity mirrors analysis.Community with wire tags.
type jsonCommunity struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
}

// jsonSummary mirrors core.GraphStats with wire tags.
type jsonSummary struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	TotalWeight   int64   `json:"total_weight"`
	MaxWeight     int64   `json:"max_weight"`
	AverageDegree float64 `json:"average_degree"`
	Density       float64 `json:"density"`
}

// jsonDocument is the full export shape.
type jsonDocument struct {
	Summary     jsonSummary     `json:"summary"`
	Nodes       []string        `json:"nodes"`
	Edges       []jsonEdge      `json:"edges"`
	Degree      []jsonScore     `json:"degree"`
	Betweenness []jsonScore     `json:"betweenness"`
	Sampled     bool            `json:"betweenness_sampled"`
	SampleSize  int             `json:"betweenness_sample_size"`
	Eigenvector []jsonScore     `json:"eigenvector"`
	Communities []jsonCommunity `json:"communities"`
	Modularity  float64         `json:"modularity"`
	Components  struct {
		Count       int `json:"count"`
		LargestSize int `json:"largest_size"`
	} `json:"components"`
}

// ExportJSON writes the graph and analysis result as one JSON document.
//
// Maps are flattened into sorted score slices so repeated exports of the
// same result are byte-identical.
//
// Errors: ErrNilGraph, ErrNilResult, or an encoding failure.
func ExportJSON(w io.Writer, g *core.Graph, res *analysis.Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if res == nil {
		return ErrNilResult
	}

	doc := jsonDocument{
		Summary: jsonSummary{
			NodeCount:     res.Summary.NodeCount,
			EdgeCount:     res.Summary.EdgeCount,
			TotalWeight:   res.Summary.TotalWeight,
			MaxWeight:     res.Summary.MaxWeight,
			AverageDegree: res.Summary.AverageDegree,
			Density:       res.Summary.Density,
		},
		Nodes:       g.Nodes(),
		Edges:       make([]jsonEdge, 0, g.EdgeCount()),
		Degree:      degreeScores(res.Degree),
		Betweenness: floatScores(res.Betweenness.Scores),
		Sampled:     res.Betweenness.Sampled,
		SampleSize:  res.Betweenness.SampleSize,
		Eigenvector: floatScores(res.Eigenvector),
		Communities: make([]jsonCommunity, 0, len(res.Communities)),
		Modularity:  res.Modularity,
	}
	doc.Components.Count = res.Components.Count
	doc.Components.LargestSize = res.Components.LargestSize

	for _, edge := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{A: edge.A, B: edge.B, Weight: edge.Weight})
	}
	for _, community := range res.Communities {
		doc.Communities = append(doc.Communities, jsonCommunity{
			ID:      community.ID,
			Members: community.Members,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

func degreeScores(degree map[string]int) []jsonScore {
	scores := make(map[string]float64, len(degree))
	for name, value := range degree {
		scores[name] = float64(value)
	}

	return floatScores(scores)
}

func floatScores(scores map[string]float64) []jsonScore {
	rows := make([]jsonScore, 0, len(scores))
	for name, score := range scores {
		rows = append(rows, jsonScore{Artist: name, Score: score})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}

		return rows[i].Artist < rows[j].Artist
	})

	return rows
}

// dotNode carries the artist label and an optional fixed position.
type dotNode struct {
	id     int64
	name   string
	pos    analysis.XY
	hasPos bool
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.name }

func (n dotNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: n.name}}
	if n.hasPos {
		attrs = append(attrs, encoding.Attribute{
			Key:   "pos",
			Value: fmt.Sprintf("%.4f,%.4f", n.pos.X, n.pos.Y),
		})
	}

	return attrs
}

// dotEdge is a weighted undirected edge with a weight attribute.
type dotEdge struct {
	from, to graph.Node
	weight   float64
}

func (e dotEdge) From() graph.Node         { return e.from }
func (e dotEdge) To() graph.Node           { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, weight: e.weight} }
func (e dotEdge) Weight() float64          { return e.weight }

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: fmt.Sprintf("%g", e.weight)}}
}

// ExportDOT writes the subgraph induced by nodes in Graphviz DOT form.
//
// Node labels are artist names; edges carry their co-occurrence weight;
// layout coordinates from pos (if any) are emitted as pos attributes.
// Unknown names in nodes are ignored; pos may be nil.
//
// Errors: ErrNilGraph, or a marshaling failure.
// Complexity: O(k²) over the subset size k for the pair scan.
func ExportDOT(w io.Writer, g *core.Graph, nodes []string, pos map[string]analysis.XY) error {
	if g == nil {
		return ErrNilGraph
	}

	// Deduplicate, keep only known artists, and fix the order so node
	// IDs (and the marshaled output) are stable.
	seen := make(map[string]struct{}, len(nodes))
	names := make([]string, 0, len(nodes))
	for _, name := range nodes {
		if _, dup := seen[name]; dup || !g.HasNode(name) {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	dg := simple.NewWeightedUndirectedGraph(0, 0)
	byName := make(map[string]dotNode, len(names))
	for i, name := range names {
		xy, ok := pos[name]
		node := dotNode{id: int64(i), name: name, pos: xy, hasPos: ok}
		byName[name] = node
		dg.AddNode(node)
	}
	for i, a := range names {
		for _, b := range names[i+1:] {
			weight := g.Weight(a, b)
			if weight == 0 {
				continue
			}
			dg.SetWeightedEdge(dotEdge{
				from:   byName[a],
				to:     byName[b],
				weight: float64(weight),
			})
		}
	}

	data, err := dot.Marshal(dg, "collabnet", "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal dot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("report: write dot: %w", err)
	}

	return nil
}
