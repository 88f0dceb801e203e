package summarizer

import (
	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the configured Gemini
// API keys. With no keys it reports Enabled() == false and the
// orchestrator skips the summary slot.
func New(cfg *config.Config, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: cfg.Credentials.GeminiAPIKeys,
		logger:  log,
		model:   cfg.Gemini.Model,
	}
}
