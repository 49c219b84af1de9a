package llm

import (
	"context"
)

// Provider is a text-generation backend that can produce a single JSON
// object completion for a system/user prompt pair.
type Provider interface {
	CompleteJSON(ctx context.Context, req Request) ([]byte, error)
}

// Request describes one completion call.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Message is a chat message on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
