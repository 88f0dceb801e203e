package pipeline

import (
	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/internal/remotejob"
	"github.com/edupipe/edupipe/internal/summarizer"
	"github.com/edupipe/edupipe/internal/transcriber"
	"github.com/edupipe/edupipe/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	video       remotejob.Generator
	slides      remotejob.Generator
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a Pipeline instance. All collaborators are injected so
// the orchestration can be tested with stubs.
func New(
	cfg *config.Config,
	exec executor.Executor,
	tr transcriber.Transcriber,
	video remotejob.Generator,
	slides remotejob.Generator,
	sum summarizer.Summarizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		video:       video,
		slides:      slides,
		summarizer:  sum,
		logger:      log,
	}
}
