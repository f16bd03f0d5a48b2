// SPDX-License-Identifier: MIT
//
// File: version.go
// Role: build information. Variables are set at link time via -ldflags.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stdout, "collabnet %s (commit %s, %s)\n",
			version, commit, runtime.Version())
	},
}

//nolint:gochecknoinits // cobra command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
