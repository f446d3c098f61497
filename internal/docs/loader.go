package docs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"docmcp/internal/logging"
)

// Loader discovers and reads documents under a root directory.
type Loader struct {
	rootDir    string
	extensions map[string]bool
	exclude    []string
	logger     *logging.Logger
}

// NewLoader creates a Loader. extensions are matched case-insensitively
// against the file suffix (e.g. ".md"); exclude lists directory names to
// skip entirely.
func NewLoader(rootDir string, extensions, exclude []string, logger *logging.Logger) *Loader {
	extMap := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extMap[strings.ToLower(ext)] = true
	}
	return &Loader{
		rootDir:    rootDir,
		extensions: extMap,
		exclude:    exclude,
		logger:     logger,
	}
}

// Load walks the root directory and returns all readable documents in
// lexical walk order. Unreadable files are logged and skipped; the caller
// receives a shorter sequence, never a partial document.
func (l *Loader) Load() ([]Document, LoadStats, error) {
	var documents []Document
	var stats LoadStats

	err := filepath.WalkDir(l.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != l.rootDir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			for _, ex := range l.exclude {
				if name == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !l.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		doc, readErr := l.loadFile(path)
		if readErr != nil {
			stats.Skipped++
			l.logger.Warn("Skipping unreadable document", map[string]any{
				"path":  path,
				"error": readErr.Error(),
			})
			return nil
		}

		documents = append(documents, doc)
		stats.Loaded++
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	return documents, stats, nil
}

// loadFile reads a single document, resolving its absolute path and
// applying front matter overrides. Content holds the document body with any
// front matter block removed; the block is metadata, not document text.
func (l *Loader) loadFile(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	fm, body := parseFrontMatter(string(raw))

	doc := Document{
		Path:        abs,
		Content:     body,
		Title:       ExtractTitle(body),
		Description: fm.Description,
	}
	if fm.Title != "" {
		doc.Title = fm.Title
	}
	return doc, nil
}
