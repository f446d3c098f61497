package main

import (
	"docmcp/internal/logging"
	"docmcp/internal/version"

	"github.com/spf13/cobra"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
	// logFormatFlag is the CLI --log-format flag value
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "docmcp",
	Short: "docmcp - MCP documentation server generator",
	Long: `docmcp turns a directory of text documents into an MCP documentation tool.
It summarizes the corpus through the Anthropic API, derives a constrained tool
identifier, writes a metadata bundle, and can serve that bundle over MCP stdio.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("docmcp version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "human",
		"Log format: human or json")
}

// newLogger builds the logger from the persistent flags.
func newLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(logFormatFlag),
		Level:  logging.LogLevel(logLevelFlag),
	})
}
