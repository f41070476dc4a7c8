package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tripguide/internal/guide"
	"tripguide/internal/types"
)

const (
	defaultGenAITextModel  = "gemini-2.5-flash"
	defaultGenAIImageModel = "imagen-3.0-generate-002"
)

// GenAIProvider implements Provider on the Gen AI SDK. It is the only backend with web
// search grounding and Imagen support.
type GenAIProvider struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewGenAIProvider initializes a Gen AI client against the Gemini API backend.
func NewGenAIProvider(ctx context.Context, s Settings) (*GenAIProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return &GenAIProvider{
		client:     client,
		textModel:  orDefault(s.TextModel, defaultGenAITextModel),
		imageModel: orDefault(s.ImageModel, defaultGenAIImageModel),
	}, nil
}

func (p *GenAIProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error) {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(opts.Temperature)}
	if opts.Search {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.textModel, genai.Text(prompt), cfg)
	if err != nil {
		return nil, types.E(types.KindService, "ai.genai.text", fmt.Errorf("genai generation error: %w", err))
	}
	if len(resp.Candidates) == 0 {
		return nil, types.E(types.KindService, "ai.genai.text", ErrEmptyResponse)
	}

	return &TextResult{
		Text:    strings.TrimSpace(resp.Text()),
		Sources: groundingSources(resp.Candidates[0].GroundingMetadata),
	}, nil
}

func (p *GenAIProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*Image, error) {
	mime := orDefault(opts.MIMEType, "image/jpeg")
	resp, err := p.client.Models.GenerateImages(ctx, p.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: mime,
		AspectRatio:    opts.AspectRatio,
	})
	if err != nil {
		return nil, types.E(types.KindImage, "ai.genai.image", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, types.E(types.KindImage, "ai.genai.image", ErrEmptyResponse)
	}
	img := resp.GeneratedImages[0].Image
	return &Image{Data: img.ImageBytes, MIMEType: orDefault(img.MIMEType, mime)}, nil
}

// groundingSources keeps the web chunks that carry a URI.
func groundingSources(meta *genai.GroundingMetadata) []guide.Source {
	if meta == nil {
		return nil
	}
	var out []guide.Source
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, guide.Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
