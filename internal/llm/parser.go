package llm

import (
	"regexp"
	"strings"
)

var (
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
)

// ExtractJSON cleans a model response down to the structured payload. The
// model is prompted to return JSON only, but may still wrap it in thinking
// tags or markdown fences: thinking blocks are stripped entirely, and if a
// fenced block remains only its inner content is kept.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(thinkRe.ReplaceAllString(raw, ""))

	if m := fenceRe.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1])
	}

	return cleaned
}
