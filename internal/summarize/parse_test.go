package summarize

import (
	"testing"

	"docmcp/internal/errors"
)

const validJSON = `{"projectName": "Acme Docs", "summary": "Covers the Acme platform.", "topics": ["setup", "api"]}`

func TestParseResultRawJSON(t *testing.T) {
	result, err := ParseResult(validJSON)
	if err != nil {
		t.Fatalf("ParseResult failed: %v", err)
	}
	if result.ProjectName != "Acme Docs" {
		t.Errorf("ProjectName = %q", result.ProjectName)
	}
	if result.Summary != "Covers the Acme platform." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if len(result.Topics) != 2 || result.Topics[0] != "setup" || result.Topics[1] != "api" {
		t.Errorf("Topics = %v, order must be preserved", result.Topics)
	}
}

func TestParseResultFenced(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain fence", "```\n" + validJSON + "\n```"},
		{"json-tagged fence", "```json\n" + validJSON + "\n```"},
		{"fence with surrounding prose", "Here is the result:\n\n```json\n" + validJSON + "\n```\n\nLet me know if you need more."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.response)
			if err != nil {
				t.Fatalf("ParseResult failed: %v", err)
			}
			if result.ProjectName != "Acme Docs" {
				t.Errorf("ProjectName = %q", result.ProjectName)
			}
		})
	}
}

func TestParseResultFirstFenceWins(t *testing.T) {
	response := "```json\n" + validJSON + "\n```\n\n```json\n{\"projectName\": \"Wrong\"}\n```"
	result, err := ParseResult(response)
	if err != nil {
		t.Fatal(err)
	}
	if result.ProjectName != "Acme Docs" {
		t.Errorf("must parse only the first fence, got %q", result.ProjectName)
	}
}

func TestParseResultMalformed(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "I could not produce a summary, sorry."},
		{"broken json", `{"projectName": "x", "summary":`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(tt.response)
			if err == nil {
				t.Fatal("expected MALFORMED_RESULT error")
			}
			if !errors.IsCode(err, errors.MalformedResult) {
				t.Fatalf("code = %s, want %s", errors.CodeOf(err), errors.MalformedResult)
			}
			de := err.(*errors.Error)
			if de.Detail("response") != tt.response {
				t.Errorf("raw response must be attached for diagnosis, got %v", de.Detail("response"))
			}
		})
	}
}

func TestExtractPayloadNoFence(t *testing.T) {
	if got := ExtractPayload("  " + validJSON + "  "); got != validJSON {
		t.Errorf("ExtractPayload without fence = %q", got)
	}
}
