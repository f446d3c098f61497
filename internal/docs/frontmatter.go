package docs

import (
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// frontMatter holds the optional metadata overrides a document may declare
// at the top of the file. YAML blocks are delimited by "---", TOML blocks
// by "+++".
type frontMatter struct {
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
}

// splitFrontMatter detects a front matter block at the start of raw and
// returns the block body, the delimiter used, and the remaining content.
// When no block is present it returns ("", "", raw).
func splitFrontMatter(raw string) (block, delim, body string) {
	for _, d := range []string{"---", "+++"} {
		open := d + "\n"
		if !strings.HasPrefix(raw, open) {
			continue
		}
		rest := raw[len(open):]
		idx := strings.Index(rest, "\n"+d)
		if idx < 0 {
			continue
		}
		after := rest[idx+1+len(d):]
		// Closing delimiter must terminate its own line
		if after != "" && !strings.HasPrefix(after, "\n") {
			continue
		}
		return rest[:idx], d, strings.TrimPrefix(after, "\n")
	}
	return "", "", raw
}

// parseFrontMatter extracts title/description overrides from a YAML or TOML
// front matter block. Malformed front matter is ignored: the block stays
// part of the content and the document simply has no overrides.
func parseFrontMatter(raw string) (fm frontMatter, body string) {
	block, delim, rest := splitFrontMatter(raw)
	if delim == "" {
		return frontMatter{}, raw
	}

	var err error
	switch delim {
	case "---":
		err = yaml.Unmarshal([]byte(block), &fm)
	case "+++":
		err = toml.Unmarshal([]byte(block), &fm)
	}
	if err != nil {
		return frontMatter{}, raw
	}
	return fm, rest
}
