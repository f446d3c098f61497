// Package docs discovers and loads the text documents that make up one
// generation corpus.
package docs

// Document represents one loaded source document.
type Document struct {
	// Path is the absolute path of the source file; unique within a corpus.
	Path string `json:"path"`
	// Content is the full file text.
	Content string `json:"content"`
	// Title is extracted from the first markdown heading or front matter.
	Title string `json:"title,omitempty"`
	// Description is filled in by the pipeline (front matter or the
	// per-document summarization call); may be empty until then.
	Description string `json:"description,omitempty"`
}

// LoadStats contains statistics from a corpus load.
type LoadStats struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"` // unreadable or filtered out
}
