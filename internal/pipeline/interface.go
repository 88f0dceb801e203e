package pipeline

import "context"

// Pipeline runs one classified input through the full processing
// sequence and returns the artifact manifest.
type Pipeline interface {
	Run(ctx context.Context, inputPath string) (Manifest, error)
}
