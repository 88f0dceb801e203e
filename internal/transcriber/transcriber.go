package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edupipe/edupipe/pkg/errors"
)

// Transcribe extracts the audio track, runs whisper on it, and returns
// the full transcript. Language is auto-detected unless the config
// pins one. Any failure of the underlying tools is fatal for the
// request; there is no retry.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	audioPath, err := t.extractAudio(ctx, mediaPath)
	if err != nil {
		return "", errors.TranscriptionFailed(err)
	}
	defer t.cleanupTempFile(ctx, audioPath)

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Whisper.Threads, audioPath)

	// -otxt: plain-text output
	// -l: language ("auto" lets the model detect)
	// -ml/-mc 0: no segment length or context limits
	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", errors.TranscriptionFailed(err)
	}

	txtPath := outputPrefix + ".txt"
	defer t.cleanupTempFile(ctx, txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", errors.TranscriptionFailed(err)
	}

	transcript := strings.TrimSpace(string(data))
	t.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

// extractAudio converts the input to 16kHz mono WAV, the format
// whisper expects. The WAV lands next to the source file, which is
// already inside a per-run directory.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	audioPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "_audio.wav"

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", err
	}

	return audioPath, nil
}

func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
