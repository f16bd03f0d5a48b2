// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: CLI entrypoint. Wires the root command, global flags and logging;
//       every flag can also be set via COLLABNET_* environment variables.

// Command collabnet analyzes artist collaboration networks built from
// chart-track CSV exports.
//
// Subcommands:
//
//	analyze – full pipeline: load, build, analyze, report and export.
//	stats   – graph summary only, no centrality computation.
//	version – build information.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/collabnet/internal/logging"
)

const envPrefix = "COLLABNET"

var rootCmd = &cobra.Command{
	Use:           "collabnet",
	Short:         "Artist collaboration network analysis",
	Long:          "collabnet builds a weighted co-occurrence graph from chart-track CSV data\nand reports centrality, communities and layout for the network.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logging.Config{
			Level:  viper.GetString("log-level"),
			Format: viper.GetString("log-format"),
		})
	},
}

//nolint:gochecknoinits // cobra command registration
func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "minimum log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log output format (console|json)")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	bindFlags(rootCmd)
}

// bindFlags registers every persistent flag of cmd with viper so that
// COLLABNET_<FLAG> environment variables layer under explicit flags.
func bindFlags(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
