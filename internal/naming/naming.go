// Package naming derives the constrained identifiers that name the
// generated server and its single search tool.
package naming

import (
	"strings"
	"unicode"
)

const (
	// FallbackToolName is used when a project name canonicalizes to nothing.
	FallbackToolName = "search-docs"
	// FallbackServerName is the server-name counterpart of FallbackToolName.
	FallbackServerName = "docs"

	toolNamePrefix = "search-"
	toolNameSuffix = "-docs"
)

// Canonicalize converts free-form text into a constrained identifier:
// lowercase, whitespace runs collapsed to a single hyphen, every character
// outside [a-z0-9-] stripped. Pure and idempotent. Input with no ASCII
// alphanumerics (including non-Latin scripts, which are not transliterated)
// collapses to the empty string; callers must special-case that.
func Canonicalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(lowered))

	inSpace := false
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// DeriveToolName canonicalizes projectName and wraps it in the fixed
// search-<name>-docs convention. Never fails: an empty canonical form yields
// FallbackToolName. Length enforcement is deferred to ValidateToolName.
func DeriveToolName(projectName string) string {
	canonical := Canonicalize(projectName)
	if canonical == "" {
		return FallbackToolName
	}
	return toolNamePrefix + canonical + toolNameSuffix
}

// DeriveServerName canonicalizes projectName for use as the server name,
// substituting FallbackServerName when canonicalization yields nothing.
func DeriveServerName(projectName string) string {
	canonical := Canonicalize(projectName)
	if canonical == "" {
		return FallbackServerName
	}
	return canonical
}
