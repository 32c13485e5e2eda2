package ai

import (
	"context"
)

// Generator defines the contract for interacting with a hosted text model.
// Implementations send a single prompt and return the model's raw text reply.
// This interface allows for swapping providers (Gemini, OpenAI) and stubbing them in tests.
type Generator interface {
	// Generate submits prompt as one request and returns the concatenated text of the reply.
	// An empty reply yields ErrEmptyReply; a reply withheld by the provider yields ErrBlocked.
	Generate(ctx context.Context, prompt string) (string, error)
}
