package ai

import "errors"

var (
	// ErrEmptyReply is returned when the provider answers without any text.
	ErrEmptyReply = errors.New("provider returned an empty reply")

	// ErrBlocked is returned when the provider withholds its answer (safety filters, refusals).
	ErrBlocked = errors.New("provider withheld the reply")

	ErrRateLimited = errors.New("provider rate limit wait aborted")
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)
