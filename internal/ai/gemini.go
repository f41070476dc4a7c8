package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripguide/internal/guide"
	"tripguide/internal/types"
)

const defaultGeminiTextModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using the legacy Gemini SDK.
// It has no search tool and no image model; sources come from citation metadata.
type GeminiProvider struct {
	client    *genai.Client
	textModel string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, s Settings) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		textModel: orDefault(s.TextModel, defaultGeminiTextModel),
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error) {
	model := p.client.GenerativeModel(p.textModel)
	model.SetTemperature(opts.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, types.E(types.KindService, "ai.gemini.text", fmt.Errorf("gemini generation error: %w", err))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, types.E(types.KindService, "ai.gemini.text", ErrEmptyResponse)
	}

	// Extract text from the response parts.
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return &TextResult{
		Text:    strings.TrimSpace(responseText.String()),
		Sources: citationSources(resp.Candidates[0].CitationMetadata),
	}, nil
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*Image, error) {
	return nil, types.E(types.KindImage, "ai.gemini.image", ErrImageUnsupported)
}

func citationSources(meta *genai.CitationMetadata) []guide.Source {
	if meta == nil {
		return nil
	}
	var out []guide.Source
	seen := map[string]bool{}
	for _, src := range meta.CitationSources {
		if src == nil || src.URI == nil || *src.URI == "" || seen[*src.URI] {
			continue
		}
		seen[*src.URI] = true
		out = append(out, guide.Source{URI: *src.URI})
	}
	return out
}
