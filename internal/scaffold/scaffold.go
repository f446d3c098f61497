// Package scaffold writes the generated server bundle to disk.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"

	"docmcp/internal/metadata"
	"docmcp/internal/version"
)

// MetadataFileName is the metadata table file inside the bundle.
const MetadataFileName = "metadata.json"

// ManifestFileName is the bundle manifest file.
const ManifestFileName = "server.toml"

// Manifest records how a bundle was produced.
type Manifest struct {
	ServerName    string    `toml:"server_name"`
	ToolName      string    `toml:"tool_name"`
	DocmcpVersion string    `toml:"docmcp_version"`
	RunID         string    `toml:"run_id"`
	GeneratedAt   time.Time `toml:"generated_at"`
	DocumentCount int       `toml:"document_count"`
}

// Emit writes metadata.json and server.toml under outDir, creating the
// directory as needed.
func Emit(outDir, runID string, meta *metadata.McpToolMetadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, MetadataFileName), data, 0644); err != nil {
		return err
	}

	manifest := Manifest{
		ServerName:    meta.ServerName,
		ToolName:      meta.ToolName,
		DocmcpVersion: version.Version,
		RunID:         runID,
		GeneratedAt:   time.Now().UTC(),
		DocumentCount: len(meta.AvailablePaths),
	}
	manifestData, err := gotoml.Marshal(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, ManifestFileName), manifestData, 0644)
}

// LoadMetadata reads a metadata table previously written by Emit.
func LoadMetadata(path string) (*metadata.McpToolMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meta metadata.McpToolMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadManifest reads a bundle manifest previously written by Emit.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := gotoml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ClientConfigSnippet renders the ready-to-paste MCP client configuration
// for a generated bundle.
func ClientConfigSnippet(meta *metadata.McpToolMetadata, outDir string) string {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		abs = outDir
	}
	snippet := map[string]any{
		"mcpServers": map[string]any{
			meta.ServerName: map[string]any{
				"command": "docmcp",
				"args":    []string{"serve", "--metadata", filepath.Join(abs, MetadataFileName)},
			},
		},
	}
	data, err := json.MarshalIndent(snippet, "", "  ")
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Add this to your MCP client configuration:\n\n%s\n", data)
}
