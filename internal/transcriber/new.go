package transcriber

import (
	"fmt"
	"os"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber bound to the whisper binary and model
// configured at startup. The model file is resolved eagerly here and
// reused for every request; each transcription runs as an independent
// subprocess, so concurrent calls need no serialization.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model: %w", err)
	}

	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}, nil
}
