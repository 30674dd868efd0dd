package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "varia",
		Short: "numeric toolbox demos: bound-state spectra and spectral derivatives",
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newSpectrumCmd(), newDiffCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging sends text logs to stderr so tables and plots own stdout.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
