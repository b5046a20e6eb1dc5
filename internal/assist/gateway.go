package assist

import (
	"context"

	"github.com/satyarth/dappdojo/internal/llm"
)

// Gateway issues assistant requests through an llm.Provider. It performs
// exactly one outbound call per Send and never retries; single-flight
// discipline is enforced by the session engine, which refuses to start a
// second request while one is pending.
type Gateway struct {
	provider llm.Provider
}

// NewGateway creates a Gateway. A nil provider yields an unavailable
// gateway (Available reports false); the app runs without AI features.
func NewGateway(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// Available reports whether a provider is configured.
func (g *Gateway) Available() bool {
	return g != nil && g.provider != nil
}

// Send issues one request for the given action kind and returns the reply
// text. The kind is attached to the context as the purpose label for event
// logging.
func (g *Gateway) Send(ctx context.Context, kind Kind, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, kind.String())
	return g.provider.Complete(ctx, prompt)
}
