// SPDX-License-Identifier: MIT
//
// File: analyze.go
// Role: the full pipeline command: CSV -> graph -> analysis -> outputs.

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/collabnet/analysis"
	"github.com/katalvlaran/collabnet/builder"
	"github.com/katalvlaran/collabnet/core"
	"github.com/katalvlaran/collabnet/internal/logging"
	"github.com/katalvlaran/collabnet/report"
	"github.com/katalvlaran/collabnet/tracks"
)

// dotSubsetSize caps the DOT export to the busiest artists so Graphviz
// renders stay legible.
const dotSubsetSize = 50

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the collaboration graph and run the full analysis",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: runAnalyze,
}

//nolint:gochecknoinits // cobra command registration
func init() {
	flags := analyzeCmd.Flags()
	flags.String("input", "", "path to the chart-track CSV file (required)")
	flags.String("report", "-", "Markdown report destination ('-' for stdout)")
	flags.String("json", "", "optional JSON export path")
	flags.String("dot", "", "optional Graphviz DOT export path")
	flags.Int("top", report.DefaultTopN, "rows per centrality table")
	flags.String("delimiter", tracks.DefaultDelimiter, "artist delimiter inside the artists column")
	flags.Int("workers", 1, "parallel build workers")
	flags.Int("sample-threshold", analysis.DefaultSampleThreshold, "node count above which betweenness is sampled")
	flags.Int("sample-cap", analysis.DefaultSampleCap, "sample size when betweenness sampling engages")
	flags.Uint64("seed", analysis.DefaultSeed, "seed for sampling, Louvain and layout")
	flags.Float64("resolution", analysis.DefaultResolution, "Louvain resolution parameter")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	input := viper.GetString("input")
	if input == "" {
		return errors.New("analyze: --input is required")
	}
	if err := validateAnalyzeFlags(); err != nil {
		return err
	}

	start := time.Now()
	records, err := tracks.ReadFile(input)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logging.Info().
		Int("records", len(records)).
		Str("input", input).
		Msg("tracks loaded")

	g, err := builder.Build(records,
		builder.WithDelimiter(viper.GetString("delimiter")),
		builder.WithWorkers(viper.GetInt("workers")),
	)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logging.Info().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph built")

	seed := viper.GetUint64("seed")
	res, err := analysis.Analyze(g,
		analysis.WithSampleThreshold(viper.GetInt("sample-threshold")),
		analysis.WithSampleCap(viper.GetInt("sample-cap")),
		analysis.WithSeed(seed),
		analysis.WithResolution(viper.GetFloat64("resolution")),
	)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logging.Info().
		Int("communities", len(res.Communities)).
		Float64("modularity", res.Modularity).
		Bool("betweenness_sampled", res.Betweenness.Sampled).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	if err := writeReport(viper.GetString("report"), res, viper.GetInt("top")); err != nil {
		return err
	}
	if path := viper.GetString("json"); path != "" {
		if err := writeJSON(path, g, res); err != nil {
			return err
		}
	}
	if path := viper.GetString("dot"); path != "" {
		if err := writeDOT(path, g, seed); err != nil {
			return err
		}
	}

	return nil
}

// validateAnalyzeFlags rejects bad values before they reach the option
// constructors, which panic on misuse.
func validateAnalyzeFlags() error {
	if viper.GetString("delimiter") == "" {
		return errors.New("analyze: --delimiter must be non-empty")
	}
	if n := viper.GetInt("workers"); n < 1 {
		return fmt.Errorf("analyze: --workers must be >= 1, got %d", n)
	}
	if n := viper.GetInt("top"); n < 1 {
		return fmt.Errorf("analyze: --top must be >= 1, got %d", n)
	}
	if n := viper.GetInt("sample-threshold"); n < 1 {
		return fmt.Errorf("analyze: --sample-threshold must be >= 1, got %d", n)
	}
	if n := viper.GetInt("sample-cap"); n < 2 {
		return fmt.Errorf("analyze: --sample-cap must be >= 2, got %d", n)
	}
	if r := viper.GetFloat64("resolution"); r <= 0 {
		return fmt.Errorf("analyze: --resolution must be > 0, got %g", r)
	}

	return nil
}

func writeReport(dest string, res *analysis.Result, topN int) error {
	if dest == "" || dest == "-" {
		return report.Write(os.Stdout, res, report.WithTopN(topN))
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("analyze: create report: %w", err)
	}
	defer f.Close()

	if err := report.Write(f, res, report.WithTopN(topN)); err != nil {
		return err
	}
	logging.Info().Str("path", dest).Msg("report written")

	return nil
}

func writeJSON(path string, g *core.Graph, res *analysis.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("analyze: create json: %w", err)
	}
	defer f.Close()

	if err := report.ExportJSON(f, g, res); err != nil {
		return err
	}
	logging.Info().Str("path", path).Msg("json written")

	return nil
}

func writeDOT(path string, g *core.Graph, seed uint64) error {
	subset := analysis.TopByDegree(g, dotSubsetSize)
	pos, err := analysis.Layout(g, subset, analysis.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("analyze: layout: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("analyze: create dot: %w", err)
	}
	defer f.Close()

	if err := report.ExportDOT(f, g, subset, pos); err != nil {
		return err
	}
	logging.Info().Str("path", path).Int("subset", len(subset)).Msg("dot written")

	return nil
}

