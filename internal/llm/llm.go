// Package llm defines the provider-neutral generation gateway used by the
// concierge pipeline, with adapters for OpenRouter and Anthropic.
package llm

import (
	"context"
)

// Roles accepted in a Message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// Request carries one generation call. MaxTokens must be positive;
// Temperature of 0 is meaningful (deterministic) and always sent.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the generated completion plus metadata used for logging.
type Response struct {
	Content      string
	FinishReason string
	InputTokens  int64
	OutputTokens int64
}

// Client is the generation gateway. Implementations log start/done/failed
// events keyed by requestID and surface structured errors; they never
// retry.
type Client interface {
	Complete(ctx context.Context, requestID string, req Request) (*Response, error)
}
