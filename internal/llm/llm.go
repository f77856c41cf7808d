// Package llm talks to a chat-completion service.
package llm

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey   = errors.New("completion service is not configured: OPENAI_API_KEY is empty")
	ErrEmptyCompletion = errors.New("completion service returned an empty answer")
)

// Request is one system+user exchange.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
