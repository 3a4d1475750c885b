package llm

import "strings"

// extractJSON pulls a JSON object out of a model reply that may be wrapped
// in markdown fences or surrounded by prose. A ```json fence wins over a
// plain fence, which wins over the full text; the result is then cut down
// to everything from the first '{' to the last '}'. It never fails: when
// no object is found the cleaned text comes back unchanged and the
// caller's decode reports the problem.
func extractJSON(s string) string {
	cleaned := strings.TrimSpace(s)

	if idx := strings.Index(cleaned, "```json"); idx != -1 {
		cleaned = fenceBody(cleaned, idx+len("```json"))
	} else if idx := strings.Index(cleaned, "```"); idx != -1 {
		cleaned = fenceBody(cleaned, idx+len("```"))
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		return cleaned[start : end+1]
	}
	return cleaned
}

// fenceBody returns the fence content beginning at start. An unclosed
// fence takes the rest of the string.
func fenceBody(s string, start int) string {
	if end := strings.Index(s[start:], "```"); end != -1 {
		return strings.TrimSpace(s[start : start+end])
	}
	return strings.TrimSpace(s[start:])
}
