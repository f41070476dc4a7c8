package ai

import (
	"context"
)

// Provider defines the contract for the generation backends.
// Implementations exist for the Gen AI SDK, the legacy Gemini SDK and OpenAI.
type Provider interface {
	// GenerateText sends a single prompt and returns the raw model text plus any web
	// sources the backend grounded the answer on.
	GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error)

	// GenerateImage asks for one image. Backends without image support return
	// ErrImageUnsupported.
	GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*Image, error)
}
