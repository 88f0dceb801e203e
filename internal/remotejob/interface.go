package remotejob

import "context"

// Generator submits text to a remote generation service, waits for the
// job to complete, and stores the produced artifact at destPath.
type Generator interface {
	// Name identifies the service in logs and error messages.
	Name() string
	// Enabled reports whether this branch can run at all: a credential
	// is configured or mock mode is on. Disabled generators are
	// skipped by the orchestrator, never called.
	Enabled() bool
	// Generate runs the full submit/poll/download cycle.
	Generate(ctx context.Context, text, destPath string) error
}
