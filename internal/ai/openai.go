package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"tripguide/internal/types"
)

const defaultOpenAIImageModel = openai.CreateImageModelDallE3

// OpenAIProvider implements Provider with chat completions and DALL-E.
// It has no search grounding, so Sources is always empty.
type OpenAIProvider struct {
	client     *openai.Client
	textModel  string
	imageModel string
}

func NewOpenAIProvider(s Settings) *OpenAIProvider {
	return &OpenAIProvider{
		client:     openai.NewClient(s.APIKey),
		textModel:  orDefault(s.TextModel, openai.GPT4oMini),
		imageModel: orDefault(s.ImageModel, defaultOpenAIImageModel),
	}
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.textModel,
		Temperature: opts.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, types.E(types.KindService, "ai.openai.text", fmt.Errorf("openai completion error: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, types.E(types.KindService, "ai.openai.text", ErrEmptyResponse)
	}
	return &TextResult{Text: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*Image, error) {
	size := openai.CreateImageSize1024x1024
	if opts.AspectRatio == "16:9" {
		size = openai.CreateImageSize1792x1024
	}
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.imageModel,
		N:              1,
		Size:           size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, types.E(types.KindImage, "ai.openai.image", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, types.E(types.KindImage, "ai.openai.image", ErrEmptyResponse)
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, types.E(types.KindImage, "ai.openai.image", fmt.Errorf("decode image: %w", err))
	}
	// DALL-E returns PNG regardless of the requested type.
	return &Image{Data: data, MIMEType: "image/png"}, nil
}
