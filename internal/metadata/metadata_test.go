package metadata

import (
	"path/filepath"
	"strings"
	"testing"

	"docmcp/internal/docs"
	"docmcp/internal/errors"
	"docmcp/internal/summarize"
)

var testResult = &summarize.Result{
	ProjectName: "Acme Docs",
	Summary:     "Covers the Acme platform.",
	Topics:      []string{"setup", "api", "deployment"},
}

func TestSynthesize(t *testing.T) {
	root := filepath.FromSlash("/project/docs")
	documents := []docs.Document{
		{
			Path:        filepath.Join(root, "guide.md"),
			Content:     "# User Guide\n\nbody",
			Description: "How to use Acme",
		},
		{
			Path:    filepath.Join(root, "sub", "api.md"),
			Content: "no heading here",
		},
	}

	meta, err := Synthesize("Acme Docs", testResult, documents, root)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if meta.ServerName != "acme-docs" {
		t.Errorf("ServerName = %q", meta.ServerName)
	}
	if meta.ToolName != "search-acme-docs-docs" {
		t.Errorf("ToolName = %q", meta.ToolName)
	}
	if len(meta.AvailablePaths) != 2 {
		t.Fatalf("AvailablePaths = %d, want 2", len(meta.AvailablePaths))
	}

	first := meta.AvailablePaths[0]
	if first.Path != "guide.md" {
		t.Errorf("Path = %q, want guide.md", first.Path)
	}
	if first.OriginalPath != documents[0].Path {
		t.Errorf("OriginalPath = %q must preserve the absolute source path", first.OriginalPath)
	}
	if first.Description != "How to use Acme" {
		t.Errorf("Description = %q", first.Description)
	}
	if first.Title != "User Guide" {
		t.Errorf("Title = %q, want fresh extraction from content", first.Title)
	}

	second := meta.AvailablePaths[1]
	if second.Path != "sub/api.md" {
		t.Errorf("Path = %q, want forward-slash relative path", second.Path)
	}
	if second.Description != "Document: api.md" {
		t.Errorf("missing description must fall back, got %q", second.Description)
	}
	if second.Title != "" {
		t.Errorf("document without heading must have no title, got %q", second.Title)
	}
}

func TestSynthesizeToolDescription(t *testing.T) {
	meta, err := Synthesize("Acme", testResult, nil, "/root")
	if err != nil {
		t.Fatal(err)
	}

	desc := meta.ToolDescription
	if !strings.HasPrefix(desc, testResult.Summary+"\n\n") {
		t.Error("description must open with the corpus summary")
	}
	for _, topic := range testResult.Topics {
		if !strings.Contains(desc, "- "+topic+"\n") {
			t.Errorf("description must bullet topic %q", topic)
		}
	}
	// Topic order is preserved exactly as returned by the service.
	setupIdx := strings.Index(desc, "- setup")
	apiIdx := strings.Index(desc, "- api")
	deployIdx := strings.Index(desc, "- deployment")
	if !(setupIdx < apiIdx && apiIdx < deployIdx) {
		t.Error("topic order must be preserved")
	}
}

func TestSynthesizeEmptyDocuments(t *testing.T) {
	meta, err := Synthesize("Acme", testResult, nil, "/root")
	if err != nil {
		t.Fatalf("empty document slice must not fail synthesis: %v", err)
	}
	if len(meta.AvailablePaths) != 0 {
		t.Errorf("AvailablePaths = %d, want 0", len(meta.AvailablePaths))
	}
}

func TestSynthesizeTitleReextracted(t *testing.T) {
	root := "/r"
	documents := []docs.Document{{
		Path:    "/r/doc.md",
		Content: "# Content Heading\nbody",
		Title:   "Stale Loader Title",
	}}

	meta, err := Synthesize("Acme", testResult, documents, root)
	if err != nil {
		t.Fatal(err)
	}
	if got := meta.AvailablePaths[0].Title; got != "Content Heading" {
		t.Errorf("Title = %q, must be re-extracted from content, not the loader's capture", got)
	}
}

func TestSynthesizeCollidingPathsKept(t *testing.T) {
	// Two absolute paths mapping to the same relative path is a caller
	// error; the synthesizer keeps both rather than resolving the conflict.
	documents := []docs.Document{
		{Path: "/root/a.md", Content: "x"},
		{Path: "/other/../root/a.md", Content: "y"},
	}

	meta, err := Synthesize("Acme", testResult, documents, "/root")
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.AvailablePaths) != 2 {
		t.Errorf("colliding paths must not be deduplicated, got %d entries", len(meta.AvailablePaths))
	}
}

func TestSynthesizeNameTooLong(t *testing.T) {
	long := strings.Repeat("verylongname ", 8)
	_, err := Synthesize(long, testResult, nil, "/root")
	if err == nil {
		t.Fatal("expected NAME_TOO_LONG")
	}
	if !errors.IsCode(err, errors.NameTooLong) {
		t.Fatalf("code = %s, want %s", errors.CodeOf(err), errors.NameTooLong)
	}
}

func TestSynthesizeFallbackNames(t *testing.T) {
	meta, err := Synthesize("", testResult, nil, "/root")
	if err != nil {
		t.Fatal(err)
	}
	if meta.ServerName != "docs" || meta.ToolName != "search-docs" {
		t.Errorf("fallback names = %q/%q, want docs/search-docs", meta.ServerName, meta.ToolName)
	}
}

func TestLookup(t *testing.T) {
	meta := &McpToolMetadata{AvailablePaths: []ToolPath{
		{Path: "a.md", OriginalPath: "/r/a.md"},
		{Path: "b.md", OriginalPath: "/r/b.md"},
	}}

	if tp, ok := meta.Lookup("b.md"); !ok || tp.OriginalPath != "/r/b.md" {
		t.Errorf("Lookup(b.md) = %+v, %v", tp, ok)
	}
	if _, ok := meta.Lookup("missing.md"); ok {
		t.Error("Lookup must miss for unknown path")
	}
}
