package pipeline

import (
	"context"
	"fmt"

	"github.com/edupipe/edupipe/pkg/errors"
	"github.com/edupipe/edupipe/pkg/executor"
)

// reencode scales the input video to the configured target resolution.
// Overwrites outputPath if present; a non-zero ffmpeg exit is fatal.
func (p *implPipeline) reencode(ctx context.Context, inputPath, outputPath string) error {
	p.logger.Info(ctx, "Re-encoding video: %s", inputPath)

	args := []string{
		"-y",
		"-i", inputPath,
		"-vf", fmt.Sprintf("scale=%d:%d", p.cfg.FFmpeg.TargetWidth, p.cfg.FFmpeg.TargetHeight),
		outputPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return errors.ConversionFailed(err, executor.ExitCode(err))
	}

	p.logger.Info(ctx, "Video re-encoded: %s", outputPath)
	return nil
}
