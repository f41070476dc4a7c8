package ai

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"tripguide/internal/types"
)

// Builder constructs a concrete backend once credentials are known.
type Builder func(ctx context.Context, s Settings) (Provider, error)

// LazyProvider defers credential checks and client construction to the first call,
// so a missing key surfaces as a Config error on the request that needed it.
type LazyProvider struct {
	settings Settings
	build    Builder

	mu    sync.Mutex
	inner Provider
}

// NewProvider returns a LazyProvider for s.Backend. An empty backend selects genai.
func NewProvider(s Settings) (*LazyProvider, error) {
	build, err := builderFor(s.Backend)
	if err != nil {
		return nil, err
	}
	return NewLazyProvider(s, build), nil
}

// NewLazyProvider wraps an arbitrary builder.
func NewLazyProvider(s Settings, build Builder) *LazyProvider {
	return &LazyProvider{settings: s, build: build}
}

func builderFor(backend string) (Builder, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendGenAI:
		return func(ctx context.Context, s Settings) (Provider, error) {
			return NewGenAIProvider(ctx, s)
		}, nil
	case BackendGemini:
		return func(ctx context.Context, s Settings) (Provider, error) {
			return NewGeminiProvider(ctx, s)
		}, nil
	case BackendOpenAI:
		return func(_ context.Context, s Settings) (Provider, error) {
			return NewOpenAIProvider(s), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func (p *LazyProvider) resolve(ctx context.Context) (Provider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inner != nil {
		return p.inner, nil
	}
	if strings.TrimSpace(p.settings.APIKey) == "" {
		return nil, &types.Error{Kind: types.KindConfig, Op: "ai.resolve", Message: MissingAPIKeyMessage, Err: ErrMissingAPIKey}
	}
	inner, err := p.build(ctx, p.settings)
	if err != nil {
		return nil, types.E(types.KindConfig, "ai.resolve", err)
	}
	p.inner = inner
	return inner, nil
}

func (p *LazyProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error) {
	inner, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.GenerateText(ctx, prompt, opts)
}

// GenerateImage reports a missing key as an Image error since image failures are
// never shown to users.
func (p *LazyProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*Image, error) {
	inner, err := p.resolve(ctx)
	if err != nil {
		return nil, types.E(types.KindImage, "ai.image", err)
	}
	return inner.GenerateImage(ctx, prompt, opts)
}

// Close releases the underlying client when it holds resources.
func (p *LazyProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
