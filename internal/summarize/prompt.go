package summarize

import (
	"fmt"

	"docmcp/internal/docs"
	"docmcp/internal/packer"
)

const summaryInstructions = `You are given the contents of a documentation collection. Analyze it and respond with a single JSON object of this exact shape:

{
  "projectName": "a short name for the project these documents belong to",
  "summary": "two or three sentences describing what the collection covers",
  "topics": ["short topic", "short topic", "..."]
}

Respond with the JSON object only. Do not add commentary outside it.`

// BuildSummaryPrompt embeds the packed corpus into the corpus-level prompt.
func BuildSummaryPrompt(payload string) string {
	return summaryInstructions + "\n\nDocuments:\n\n" + payload
}

// BuildDescribePrompt asks for a short description of one document.
func BuildDescribePrompt(doc docs.Document) string {
	return fmt.Sprintf(
		"Describe the following document in roughly 30 characters. Respond with the description only, no quotes.\n\n%s",
		packer.Serialize(doc))
}
