package llm

import "context"

// Provider is the abstraction over the external text-completion service.
// The assistant's output is advisory natural language; nothing downstream
// verifies it.
type Provider interface {
	// Complete sends a single-turn prompt and returns the reply text.
	// Errors are one of the typed errors in this package (ErrTransport,
	// ErrMalformedResponse) or a context error.
	Complete(ctx context.Context, prompt string) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}
