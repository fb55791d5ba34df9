// Package main provides the entry point for the cachebench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krishna8167/cachekit/cmd/cachebench/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cachebench",
		Short: "Drive and inspect cachekit eviction engines",
		Long: `cachebench loads a cache-topology config and exercises the
resulting engines with synthetic workloads.

Commands:
  policies  List every supported eviction policy
  run       Load a config and replay a workload against its caches
  bench     Run a fixed-size synthetic benchmark against one policy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a cachebench config file (default: ./cachebench.yaml)")

	rootCmd.AddCommand(commands.NewPoliciesCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewBenchCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
