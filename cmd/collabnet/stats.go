// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: quick graph summary without centrality computation.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/collabnet/builder"
	"github.com/katalvlaran/collabnet/tracks"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the graph summary for a CSV file",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: runStats,
}

//nolint:gochecknoinits // cobra command registration
func init() {
	flags := statsCmd.Flags()
	flags.String("input", "", "path to the chart-track CSV file (required)")
	flags.String("delimiter", tracks.DefaultDelimiter, "artist delimiter inside the artists column")
	flags.Int("workers", 1, "parallel build workers")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	input := viper.GetString("input")
	if input == "" {
		return errors.New("stats: --input is required")
	}
	delimiter := viper.GetString("delimiter")
	if delimiter == "" {
		return errors.New("stats: --delimiter must be non-empty")
	}
	workers := viper.GetInt("workers")
	if workers < 1 {
		return fmt.Errorf("stats: --workers must be >= 1, got %d", workers)
	}

	records, err := tracks.ReadFile(input)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	g, err := builder.Build(records,
		builder.WithDelimiter(delimiter),
		builder.WithWorkers(workers),
	)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	s := g.Stats()
	fmt.Fprintf(os.Stdout,
		"records=%d nodes=%d edges=%d total_weight=%d max_weight=%d avg_degree=%.4f density=%.6f\n",
		len(records), s.NodeCount, s.EdgeCount, s.TotalWeight, s.MaxWeight,
		s.AverageDegree, s.Density)

	return nil
}
