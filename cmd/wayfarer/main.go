package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfarer",
		Short: "Tools for the Wayfarer navigation-state library",
		Long: `Wayfarer is a declarative navigation-state manager for Go UI
applications: per-context routers for tab selection, push stacks, and
modal presentation, with a meta-routing registry for cross-context
command chains.

This CLI bundles the developer tools that ship with the library:

  • inspect   serve the navigation inspector over a demo context tree
  • snapshot  dump or persist demo-tree snapshots
  • version   print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		snapshotCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
