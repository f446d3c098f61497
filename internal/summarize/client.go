// Package summarize talks to the external summarization service: one
// corpus-level call that names and describes the project, and a lenient
// per-document description call.
package summarize

import (
	"context"
	"path/filepath"
	"strings"

	"docmcp/internal/docs"
	"docmcp/internal/errors"
	"docmcp/internal/logging"
	"docmcp/internal/packer"
)

// Result is the structured shape the service is asked to return for a
// corpus. Produced once per run and consumed exactly once downstream.
type Result struct {
	ProjectName string   `json:"projectName"`
	Summary     string   `json:"summary"`
	Topics      []string `json:"topics"`
}

// Completer is the narrow transport capability the client depends on.
// Substituting a test double here replaces the whole external service
// without any process-wide state.
type Completer interface {
	// Complete sends one prompt and returns the concatenated text output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client adapts a Completer into the two summarization operations.
type Client struct {
	completer Completer
	packer    *packer.Packer
	logger    *logging.Logger
}

// NewClient creates a Client around an explicitly constructed Completer.
func NewClient(completer Completer, p *packer.Packer, logger *logging.Logger) *Client {
	return &Client{
		completer: completer,
		packer:    p,
		logger:    logger,
	}
}

// Summarize packs the documents and asks the service for a project name,
// summary, and topic list. Fatal on missing credential, empty output, or
// unparseable output; there are no retries.
func (c *Client) Summarize(ctx context.Context, documents []docs.Document) (*Result, error) {
	packed := c.packer.Pack(documents)
	c.logger.Debug("Packed corpus for summarization", map[string]any{
		"documents":       len(documents),
		"used":            packed.UsedCount,
		"estimatedTokens": packed.EstimatedTokens,
	})

	text, err := c.completer.Complete(ctx, BuildSummaryPrompt(packed.Payload))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.EmptyResponse, "Summarization service returned no text", nil)
	}

	return ParseResult(text)
}

// Describe asks for a short description of a single document. Deliberately
// lenient: a missing description is cosmetic, so every failure degrades to
// the fixed fallback instead of propagating.
func (c *Client) Describe(ctx context.Context, doc docs.Document) string {
	text, err := c.completer.Complete(ctx, BuildDescribePrompt(doc))
	if err != nil {
		c.logger.Debug("Description call failed, using fallback", map[string]any{
			"path":  doc.Path,
			"error": err.Error(),
		})
		return FallbackDescription(doc.Path)
	}

	description := strings.TrimSpace(text)
	if description == "" {
		return FallbackDescription(doc.Path)
	}
	return description
}

// FallbackDescription is the fixed substitute used when no description can
// be obtained for a document.
func FallbackDescription(path string) string {
	return "Document: " + filepath.Base(path)
}
