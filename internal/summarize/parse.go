package summarize

import (
	"encoding/json"
	"regexp"
	"strings"

	"docmcp/internal/errors"
)

// fencePattern matches the first triple-backtick fence, optionally tagged
// json. Only the fence interior is parsed; surrounding prose is ignored.
var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)```")

// ExtractPayload returns the text region of response that should be parsed:
// the interior of the first fenced block when one exists, otherwise the
// whole response.
func ExtractPayload(response string) string {
	if m := fencePattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(response)
}

// ParseResult parses the service response into a Result. Failure attaches
// the raw response text for diagnosis.
func ParseResult(response string) (*Result, error) {
	payload := ExtractPayload(response)

	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, errors.New(errors.MalformedResult,
			"Summarization response is not valid JSON", err).WithDetails(map[string]any{
			"response": response,
		})
	}

	if result.ProjectName == "" && result.Summary == "" {
		return nil, errors.New(errors.MalformedResult,
			"Summarization response is missing projectName and summary", nil).WithDetails(map[string]any{
			"response": response,
		})
	}

	return &result, nil
}
