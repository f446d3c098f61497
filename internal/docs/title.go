package docs

import "strings"

// ExtractTitle returns the text of the first level-one markdown heading in
// content: a line of the form "# <text>". Returns "" when no such line
// exists. This is the single source of truth for titles; both the loader and
// the metadata synthesizer call it so the two can never disagree.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
			if title := strings.TrimSpace(rest); title != "" {
				return title
			}
		}
	}
	return ""
}
