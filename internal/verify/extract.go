package verify

import "strings"

// ExtractJSON recovers a single JSON object from model free text that may be
// wrapped in Markdown code fences or surrounded by prose. Best-effort
// heuristic: it assumes the reply contains at most one object and no stray
// braces in the surrounding text.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSpace(text)
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < 0 || end < start {
		return "", ErrNoJSON
	}

	return text[start : end+1], nil
}
