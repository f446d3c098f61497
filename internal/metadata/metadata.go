// Package metadata synthesizes the tool-exposed document table that the
// scaffold emitter and serve mode consume.
package metadata

import (
	"path/filepath"
	"strings"

	"docmcp/internal/docs"
	"docmcp/internal/naming"
	"docmcp/internal/summarize"
)

// ToolPath is one document's exposure record within the metadata table.
type ToolPath struct {
	// Path is relative to the generation root, with forward slashes.
	Path string `json:"path"`
	// Description is always non-empty; a fixed fallback substitutes for
	// missing descriptions.
	Description string `json:"description"`
	// OriginalPath is the absolute source path; it must stay resolvable by
	// whatever later reads document content. Preserved, never verified here.
	OriginalPath string `json:"originalPath"`
	// Title is freshly extracted from the document content; may be empty.
	Title string `json:"title,omitempty"`
}

// McpToolMetadata is the sole externally consumed artifact of the pipeline
// core. Constructed once, immutable thereafter.
type McpToolMetadata struct {
	ServerName      string     `json:"serverName"`
	ToolName        string     `json:"toolName"`
	ToolDescription string     `json:"toolDescription"`
	AvailablePaths  []ToolPath `json:"availablePaths"`
}

const (
	descriptionPreamble = "Use this tool to search the project documentation. It covers the following topics:"
	descriptionClosing  = "Pass a path from the available paths list to read that document."
)

// Synthesize builds the metadata table. It validates the derived identifier
// before any further work and raises over-budget names instead of clamping.
// Colliding relative paths (a caller error) are not deduplicated.
func Synthesize(projectName string, result *summarize.Result, documents []docs.Document, rootDir string) (*McpToolMetadata, error) {
	serverName := naming.DeriveServerName(projectName)
	toolName := naming.DeriveToolName(projectName)
	if err := naming.ValidateToolName(serverName, toolName); err != nil {
		return nil, err
	}

	meta := &McpToolMetadata{
		ServerName:      serverName,
		ToolName:        toolName,
		ToolDescription: buildToolDescription(result),
		AvailablePaths:  make([]ToolPath, 0, len(documents)),
	}

	for _, doc := range documents {
		rel := relativePath(rootDir, doc.Path)

		description := strings.TrimSpace(doc.Description)
		if description == "" {
			description = summarize.FallbackDescription(rel)
		}

		meta.AvailablePaths = append(meta.AvailablePaths, ToolPath{
			Path:         rel,
			Description:  description,
			OriginalPath: doc.Path,
			// Re-extracted from content rather than trusting the loader's
			// captured title, so the table always reflects the same source
			// of truth.
			Title: docs.ExtractTitle(doc.Content),
		})
	}

	return meta, nil
}

// buildToolDescription combines the corpus summary with a fixed preamble,
// the topic list in service order, and a fixed closing sentence.
func buildToolDescription(result *summarize.Result) string {
	var b strings.Builder
	b.WriteString(result.Summary)
	b.WriteString("\n\n")
	b.WriteString(descriptionPreamble)
	b.WriteByte('\n')
	for _, topic := range result.Topics {
		b.WriteString("- ")
		b.WriteString(topic)
		b.WriteByte('\n')
	}
	b.WriteString(descriptionClosing)
	return b.String()
}

// relativePath converts an absolute document path to a root-relative
// forward-slash path. Distinct absolute paths under one root always map to
// distinct relative paths, which makes table keys unique.
func relativePath(rootDir, path string) string {
	if rel, err := filepath.Rel(rootDir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

// Lookup resolves a relative path to its ToolPath entry.
func (m *McpToolMetadata) Lookup(path string) (ToolPath, bool) {
	for _, tp := range m.AvailablePaths {
		if tp.Path == path {
			return tp, true
		}
	}
	return ToolPath{}, false
}
