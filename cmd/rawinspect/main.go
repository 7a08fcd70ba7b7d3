// Package main provides the CLI entry point for rawinspect.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rawinspect/pkg/rawinspect"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "rawinspect",
		Short: "Summarize the spreadsheets in raw_data",
		Long: `rawinspect prints the column names, a three-row sample and the total
row count of artists.xlsx, logistics.xlsx, order.xlsx and users.xlsx
under raw_data/.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, verbose)
		},
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr at debug level")

	return rootCmd
}

func run(cmd *cobra.Command, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ins := &rawinspect.Inspector{
		Out:    cmd.OutOrStdout(),
		Logger: logger,
	}
	if err := ins.Run(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
