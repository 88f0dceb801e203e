package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/internal/pipeline"
	"github.com/edupipe/edupipe/internal/remotejob"
	"github.com/edupipe/edupipe/internal/server"
	"github.com/edupipe/edupipe/internal/summarizer"
	"github.com/edupipe/edupipe/internal/transcriber"
	"github.com/edupipe/edupipe/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Credentials may come from a .env file in development.
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
	log.Info(ctx, "Educational Media Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	// The transcription model is resolved once here and reused for
	// every request.
	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize transcriber: %v", err)
		os.Exit(1)
	}

	video := remotejob.NewVideo(cfg, log)
	slides := remotejob.NewSlides(cfg, log)
	sum := summarizer.New(cfg, log)

	pl := pipeline.New(cfg, exec, tr, video, slides, sum, log)
	srv := server.New(cfg, pl, log)

	log.Info(ctx, "Video service configured: %v (mock: %v)", video.Enabled(), cfg.Credentials.MockExternal)
	log.Info(ctx, "Slide service configured: %v", slides.Enabled())
	log.Info(ctx, "Summarizer configured: %v", sum.Enabled())

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Pipeline server stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Uploads,
		cfg.Paths.Results,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
