package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw json object",
			input:    `{"location":"Paris","weather_type":"current"}`,
			expected: `{"location":"Paris","weather_type":"current"}`,
		},
		{
			name:     "json code block",
			input:    "```json\n{\"location\":\"Paris\",\"weather_type\":\"current\"}\n```",
			expected: `{"location":"Paris","weather_type":"current"}`,
		},
		{
			name:     "plain code block",
			input:    "```\n{\"location\":\"Berlin\"}\n```",
			expected: `{"location":"Berlin"}`,
		},
		{
			name:     "surrounding prose",
			input:    `Sure! Here is the JSON you asked for: {"location":"Tokyo"} hope that helps.`,
			expected: `{"location":"Tokyo"}`,
		},
		{
			name: "code block with explanation",
			input: `Here's the parsed request:

` + "```json" + `
{
  "location": "Madrid",
  "weather_type": "forecast"
}
` + "```" + `

Let me know if you need anything else.`,
			expected: `{
  "location": "Madrid",
  "weather_type": "forecast"
}`,
		},
		{
			name:     "unclosed code block",
			input:    "```json\n{\"location\":\"Rome\"}",
			expected: `{"location":"Rome"}`,
		},
		{
			name:     "nested object",
			input:    `{"outer":{"inner":{"deep":true}}}`,
			expected: `{"outer":{"inner":{"deep":true}}}`,
		},
		{
			name:     "no json at all",
			input:    "It is sunny in Paris today.",
			expected: "It is sunny in Paris today.",
		},
		{
			name:     "closing brace before opening",
			input:    "} not a real object {",
			expected: "} not a real object {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.input)
			if got != tt.expected {
				t.Errorf("extractJSON() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractJSONIdempotent(t *testing.T) {
	input := `{"location":"Paris","weather_type":"current"}`
	once := extractJSON(input)
	twice := extractJSON(once)
	if once != twice {
		t.Errorf("extractJSON not idempotent: %q then %q", once, twice)
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("invalid character 'I'")
	err := &ParseError{Raw: "I cannot help with that.", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ParseError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "I cannot help with that.") {
		t.Errorf("ParseError message %q does not include the raw reply", err.Error())
	}

	var parseErr *ParseError
	if !errors.As(error(err), &parseErr) {
		t.Fatal("errors.As failed to match *ParseError")
	}
	if parseErr.Raw != "I cannot help with that." {
		t.Errorf("Raw = %q, want original reply", parseErr.Raw)
	}
}
