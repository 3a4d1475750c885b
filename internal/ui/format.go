package ui

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headerEmojis maps markdown header prefixes to their console replacements.
// Longest prefix first, so "### " never matches as "## " plus a stray "#".
var headerEmojis = []struct {
	prefix string
	emoji  string
}{
	{"### ", "🌡️ "},
	{"## ", "📍 "},
	{"# ", "🌤️ "},
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// RenderSummary converts the model's markdown-flavored summary into plain
// console text: emoji headers, bullet points, no bold markers, word-wrapped
// to the terminal width.
func RenderSummary(text string) string {
	return renderSummary(text, termWidth())
}

func renderSummary(text string, width int) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = replaceHeaderPrefix(line)
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "__", "")
		line = replaceBulletPrefix(line)
		out = append(out, wrapLine(line, width)...)
	}

	joined := strings.Join(out, "\n")
	joined = blankRuns.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}

func replaceHeaderPrefix(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, h := range headerEmojis {
		if strings.HasPrefix(trimmed, h.prefix) {
			return h.emoji + strings.TrimSpace(strings.TrimPrefix(trimmed, h.prefix))
		}
	}
	return line
}

func replaceBulletPrefix(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "- ") {
		return "  • " + strings.TrimPrefix(trimmed, "- ")
	}
	if strings.HasPrefix(trimmed, "* ") {
		return "  • " + strings.TrimPrefix(trimmed, "* ")
	}
	return line
}

// wrapLine word-wraps a single rendered line. Continuation lines of a bullet
// are indented so they line up under the bullet text.
func wrapLine(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}

	content := strings.TrimLeft(line, " ")
	lead := line[:len(line)-len(content)]
	words := strings.Fields(content)
	if len(words) == 0 {
		return []string{""}
	}

	continuation := lead
	if strings.HasPrefix(content, "• ") {
		continuation = lead + "  "
	}

	var lines []string
	current := lead + words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current)
			current = continuation + word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)

	return lines
}
