package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.run(ctx, "", name, args...)
}

// ExecuteInDir runs an external command in a specific working directory
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return e.run(ctx, dir, name, args...)
}

func (e *implExecutor) run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Wrap with %w so callers can still reach the exec.ExitError
		// and its exit code through the chain.
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// ExitCode extracts the process exit code from an Execute error chain.
// Returns -1 when the command never ran or was killed by a signal.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
