package summarize

import (
	"context"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"docmcp/internal/errors"
)

// AnthropicCompleter implements Completer against the Anthropic Messages
// API. The API key arrives as an explicit configuration value; it is never
// read from the environment here.
type AnthropicCompleter struct {
	client    *anthropic.Client
	apiKey    string
	model     string
	maxTokens int
}

// NewAnthropicCompleter constructs the transport. An empty apiKey is legal
// at construction time; the credential check happens on the first call so
// the error surfaces as a typed MISSING_CREDENTIAL instead of an HTTP 401.
func NewAnthropicCompleter(apiKey, model string, maxTokens int) *AnthropicCompleter {
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(apiKey),
	)
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &AnthropicCompleter{
		client:    &cl,
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Complete performs a single-turn completion and returns concatenated text.
func (a *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if a.apiKey == "" {
		return "", errors.New(errors.MissingCredential,
			"No API key configured; set ANTHROPIC_API_KEY or summarizer.apiKey in .docmcp/config.json", nil)
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}
