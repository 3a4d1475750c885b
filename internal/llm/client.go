// Package llm provides chat clients for the model providers brisa can use.
package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat sends messages to the LLM and returns the response.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends messages and parses the response as JSON into the
	// provided type. Undecodable replies are reported as *ParseError so
	// callers can recover the raw text.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}

// ParseError reports a model reply that could not be decoded as JSON.
// Raw carries the reply exactly as the model produced it.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing JSON response: %v (content: %s)", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }
