// Package cmd implements the oferta command-line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configFile string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "oferta",
	Short: "Higher-education offering and enrollment reporting service",
	Long: `Oferta reconciles the current degree-program offering with historical
enrollment and graduate figures from the CEDEPRO spreadsheet exports,
normalized onto shared field and province keys, and serves the result
through a small JSON API.

Source files are read from the data directory (or fetched from configured
URLs) at startup; the refresh endpoint re-runs the external pipeline and
reloads them without restarting the service.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.oferta.yaml)")
}
