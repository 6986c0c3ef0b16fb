// Package cmd implements the CLI commands for nhsmeds using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nhsmeds",
	Short: "nhsmeds — scrape the NHS medicines A to Z into a JSON catalog",
	Long: `nhsmeds walks the NHS medicines index, visits every medicine hub page and
extracts its About, limitations, instructions, side effects and pregnancy
sections into one JSON document.

Usage:
  nhsmeds scrape [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
