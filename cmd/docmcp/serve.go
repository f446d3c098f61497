package main

import (
	"docmcp/internal/errors"
	"docmcp/internal/mcp"
	"docmcp/internal/scaffold"

	"github.com/spf13/cobra"
)

var serveMetadata string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated bundle over MCP stdio",
	Long: `Loads a metadata bundle produced by 'docmcp generate' and exposes its
search tool on the MCP stdio transport. Logs go to stderr; stdout carries
the protocol.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveMetadata, "metadata", "mcp-server/metadata.json",
		"Path to the metadata.json of a generated bundle")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	meta, err := scaffold.LoadMetadata(serveMetadata)
	if err != nil {
		return errors.New(errors.InternalError, "Failed to load metadata bundle", err)
	}

	server := mcp.NewServer(meta, logger)
	return server.Run(cmd.Context())
}
