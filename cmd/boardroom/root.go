// boardroom is the decision-support engine CLI and MCP server.
//
// Usage:
//
//	boardroom serve                      start the MCP server over stdio
//	boardroom check <task>               quick governance check
//	boardroom analyze <task>             full consultation
//	boardroom query <query>              search ledger + wisdom
//	boardroom trust <entity>             trust profile lookup
//	boardroom report <task> <outcome>    log a decision outcome
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"boardroom/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Keyword-driven decision support: classification, routing, precedent search and trust scoring",
	Long: "Boardroom classifies free-text tasks into categories and severity tiers,\n" +
		"routes them to reviewer councils, retrieves precedents and principles from\n" +
		"institutional memory, and tracks a per-entity trust ledger fed by reported outcomes.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		switch flagLogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		logging.Init(level, flagLogFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(trustCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
