package summarizer

import "context"

// Summarizer produces an LLM-generated markdown summary of a
// transcript or document text.
type Summarizer interface {
	// Enabled reports whether any API key is configured.
	Enabled() bool
	Summarize(ctx context.Context, text string) (string, error)
}
