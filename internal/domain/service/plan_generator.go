// Package service defines interfaces for domain services whose concrete
// implementations live in the infra layer.
package service

import "context"

// PlanTextGenerator abstracts the external AI text-generation endpoint. The
// only contract the application relies on is "returns UTF-8 text that usually
// contains one JSON object, synchronously, or fails with an error". Callers
// bound the round trip with the context deadline.
type PlanTextGenerator interface {
	// GenerateContent sends the prompt and returns the model's raw text output.
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// Close releases the underlying client resources.
	Close() error
}
