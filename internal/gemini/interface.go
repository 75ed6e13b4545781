package gemini

import "context"

// Vision is the inference client interface. Handlers depend on it so tests
// can inject a stub upstream.
type Vision interface {
	// Verify submits one multimodal completion call and returns raw text.
	Verify(ctx context.Context, req Request) (string, error)
}

// Client implements Vision, checked at compile time.
var _ Vision = (*Client)(nil)
