// Package cli implements the investsim command line: the API server and
// local runs of the simulation engine.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "investsim",
	Short: "Investment simulation API (CDB, IPO, inflation)",
	Long: `investsim simulates fixed-income CDB investments, optionally combined with
an IPO equity position and adjusted for inflation. Run "investsim serve" to
start the HTTP API or "investsim simulate" to compute a scenario locally.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
