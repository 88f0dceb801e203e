package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/internal/pipeline"
	"github.com/edupipe/edupipe/internal/remotejob"
	"github.com/edupipe/edupipe/internal/summarizer"
	"github.com/edupipe/edupipe/internal/transcriber"
	"github.com/edupipe/edupipe/internal/watcher"
	"github.com/edupipe/edupipe/pkg/executor"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Educational Media Pipeline (watch mode)")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Max concurrent runs: %d", cfg.Performance.MaxConcurrent)

	dirs := []string{cfg.Paths.Input, cfg.Paths.Uploads, cfg.Paths.Results}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	exec := executor.New()

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize transcriber: %v", err)
		os.Exit(1)
	}

	video := remotejob.NewVideo(cfg, log)
	slides := remotejob.NewSlides(cfg, log)
	sum := summarizer.New(cfg, log)

	pl := pipeline.New(cfg, exec, tr, video, slides, sum, log)

	handler := func(ctx context.Context, filePath string) error {
		manifest, err := pl.Run(ctx, filePath)
		if err != nil {
			return err
		}
		for slot := range manifest {
			if p, ok := manifest.Path(slot); ok {
				log.Info(ctx, "Artifact %s: %s", slot, p)
			}
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline watcher stopped")
}
