package prompt

import (
	"strings"

	"github.com/birmacher/ai-agent/llm"
)

// VerboseMarker switches on verbose output when it appears anywhere in the
// prompt text, including inside another word.
const VerboseMarker = "--verbose"

// Build joins the command line arguments into the prompt text.
func Build(args []string) string {
	return strings.Join(args, " ")
}

// IsVerbose reports whether the prompt text asks for verbose output.
func IsVerbose(text string) bool {
	return strings.Contains(text, VerboseMarker)
}

// Conversation returns the single-message conversation sent to the model.
func Conversation(text string) []llm.Message {
	return []llm.Message{
		{
			Role:    llm.RoleUser,
			Content: text,
		},
	}
}
