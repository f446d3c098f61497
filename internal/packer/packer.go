// Package packer selects a budget-respecting prefix of the corpus and
// concatenates it into a single summarization request payload.
package packer

import (
	"strings"

	"docmcp/internal/docs"
)

const (
	// DefaultTokenCeiling is the approximate token budget for one request.
	DefaultTokenCeiling = 150000

	// Separator joins serialized documents inside the payload.
	Separator = "\n\n---\n\n"

	// TruncationMarker terminates a payload whose single document had to be
	// cut down to fit the ceiling.
	TruncationMarker = "\n\n[content truncated]"
)

// PackResult is the outcome of packing one corpus.
type PackResult struct {
	// Payload is the concatenated serialized documents.
	Payload string `json:"payload"`
	// UsedCount is how many documents made it into the payload.
	UsedCount int `json:"usedCount"`
	// EstimatedTokens is the approximate token cost of the payload.
	EstimatedTokens float64 `json:"estimatedTokens"`
}

// Packer packs documents under an approximate token ceiling.
type Packer struct {
	ceiling int
}

// NewPacker creates a Packer. A non-positive ceiling falls back to
// DefaultTokenCeiling.
func NewPacker(ceiling int) *Packer {
	if ceiling <= 0 {
		ceiling = DefaultTokenCeiling
	}
	return &Packer{ceiling: ceiling}
}

// Pack walks the documents in input order, appending each serialized
// document until the next one would push the estimate past the ceiling.
// Inclusion is strictly prefix-based: no reordering, no prioritization.
// A non-empty corpus always yields at least one packed document; when the
// very first document alone exceeds the ceiling, its serialized form is cut
// to the ceiling's character count and terminated with TruncationMarker.
func (p *Packer) Pack(documents []docs.Document) PackResult {
	var b strings.Builder
	var result PackResult

	for _, doc := range documents {
		serialized := Serialize(doc)
		cost := EstimateTokens(serialized)

		if result.EstimatedTokens+cost > float64(p.ceiling) {
			if result.UsedCount > 0 {
				break
			}
			truncated := truncateRunes(serialized, p.ceiling) + TruncationMarker
			b.WriteString(truncated)
			result.UsedCount = 1
			result.EstimatedTokens = EstimateTokens(truncated)
			break
		}

		if result.UsedCount > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(serialized)
		result.UsedCount++
		result.EstimatedTokens += cost
	}

	result.Payload = b.String()
	return result
}

// Serialize renders one document for inclusion in the payload.
func Serialize(doc docs.Document) string {
	var b strings.Builder
	b.Grow(len(doc.Path) + len(doc.Title) + len(doc.Content) + 32)

	b.WriteString("File path: ")
	b.WriteString(doc.Path)
	b.WriteByte('\n')
	if doc.Title != "" {
		b.WriteString("Title: ")
		b.WriteString(doc.Title)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(doc.Content)

	return b.String()
}

// EstimateTokens approximates the token cost of text. Dense scripts (CJK,
// full-width forms) tokenize near one token per character, so their presence
// switches the estimate to a rune count; otherwise whitespace-delimited
// words x 1.3 approximates subword tokenization.
func EstimateTokens(text string) float64 {
	if containsDenseScript(text) {
		return float64(len([]rune(text)))
	}
	return float64(len(strings.Fields(text))) * 1.3
}

// containsDenseScript reports whether text contains characters from the
// CJK or full-width Unicode ranges.
func containsDenseScript(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x3040 && r <= 0x30FF: // hiragana, katakana
			return true
		case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
			return true
		case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
			return true
		case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
			return true
		case r >= 0xFF00 && r <= 0xFFEF: // full-width forms
			return true
		}
	}
	return false
}

// truncateRunes cuts s to at most n runes without splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
