package naming

import (
	"regexp"
	"testing"
)

var canonicalAlphabet = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "My Project", "my-project"},
		{"punctuation stripped", "My Project!!", "my-project"},
		{"already canonical", "my-project", "my-project"},
		{"whitespace run collapses", "a  \t b", "a-b"},
		{"leading and trailing space", "  hello  ", "hello"},
		{"uppercase", "HELLO", "hello"},
		{"digits kept", "v2 docs", "v2-docs"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"non-latin collapses", "文档", ""},
		{"diacritics not transliterated", "café", "caf"},
		{"newlines are whitespace", "a\nb", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.input)
			if got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !canonicalAlphabet.MatchString(got) {
				t.Errorf("Canonicalize(%q) = %q contains characters outside [a-z0-9-]", tt.input, got)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{"My Project!!", "  spaced   out  ", "already-fine", "", "MiXeD 123"}
	for _, input := range inputs {
		once := Canonicalize(input)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestDeriveToolName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "search-docs"},
		{"!!!", "search-docs"},
		{"My Project!!", "search-my-project-docs"},
		{"docs", "search-docs-docs"},
	}

	for _, tt := range tests {
		if got := DeriveToolName(tt.input); got != tt.want {
			t.Errorf("DeriveToolName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDeriveServerName(t *testing.T) {
	if got := DeriveServerName("My Project"); got != "my-project" {
		t.Errorf("DeriveServerName = %q, want my-project", got)
	}
	if got := DeriveServerName("!!!"); got != FallbackServerName {
		t.Errorf("DeriveServerName fallback = %q, want %q", got, FallbackServerName)
	}
}
