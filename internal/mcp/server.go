// Package mcp serves a generated metadata bundle over the Model Context
// Protocol stdio transport, exposing the single search tool the generation
// run named.
package mcp

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"docmcp/internal/logging"
	"docmcp/internal/metadata"
	"docmcp/internal/version"
)

// SearchArgs contains parameters for the generated documentation tool.
type SearchArgs struct {
	Path string `json:"path,omitempty" jsonschema_description:"Relative path of the document to read. Omit to list all available paths."`
}

// SearchResult is the tool response.
type SearchResult struct {
	Path    string      `json:"path,omitempty"`
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content,omitempty"`
	Paths   []PathEntry `json:"paths,omitempty"`
}

// PathEntry is one listable document.
type PathEntry struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Title       string `json:"title,omitempty"`
}

// Server exposes one metadata bundle over MCP.
type Server struct {
	meta   *metadata.McpToolMetadata
	logger *logging.Logger
}

// NewServer creates a Server for a loaded metadata bundle.
func NewServer(meta *metadata.McpToolMetadata, logger *logging.Logger) *Server {
	return &Server{meta: meta, logger: logger}
}

// Run serves the bundle on stdio until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    s.meta.ServerName,
		Version: version.Version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        s.meta.ToolName,
		Description: s.meta.ToolDescription,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Search project documentation",
			ReadOnlyHint: true,
		},
	}, s.handleSearch)

	s.logger.Info("Serving documentation over MCP stdio", map[string]any{
		"server": s.meta.ServerName,
		"tool":   s.meta.ToolName,
		"paths":  len(s.meta.AvailablePaths),
	})
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, SearchResult, error) {
	if strings.TrimSpace(args.Path) == "" {
		return nil, s.listPaths(), nil
	}

	tp, ok := s.meta.Lookup(args.Path)
	if !ok {
		return nil, SearchResult{}, fmt.Errorf("unknown path %q; available paths: %s",
			args.Path, strings.Join(s.availablePathNames(), ", "))
	}

	content, err := os.ReadFile(tp.OriginalPath)
	if err != nil {
		return nil, SearchResult{}, fmt.Errorf("document %q is no longer readable at %s: %w",
			tp.Path, tp.OriginalPath, err)
	}

	s.logger.Debug("Served document", map[string]any{"path": tp.Path})
	return nil, SearchResult{
		Path:    tp.Path,
		Title:   tp.Title,
		Content: string(content),
	}, nil
}

func (s *Server) listPaths() SearchResult {
	entries := make([]PathEntry, 0, len(s.meta.AvailablePaths))
	for _, tp := range s.meta.AvailablePaths {
		entries = append(entries, PathEntry{
			Path:        tp.Path,
			Description: tp.Description,
			Title:       tp.Title,
		})
	}
	return SearchResult{Paths: entries}
}

func (s *Server) availablePathNames() []string {
	names := make([]string, 0, len(s.meta.AvailablePaths))
	for _, tp := range s.meta.AvailablePaths {
		names = append(names, tp.Path)
	}
	sort.Strings(names)
	return names
}
