package ai

import (
	"errors"

	"tripguide/internal/guide"
)

// Backend names accepted by NewProvider.
const (
	BackendGenAI  = "genai"
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// MissingAPIKeyMessage is shown to users verbatim when no credential is configured.
const MissingAPIKeyMessage = "API key environment variable not set. Please ensure it is configured in your environment."

var (
	ErrMissingAPIKey    = errors.New("missing api key")
	ErrImageUnsupported = errors.New("image generation not supported by provider")
	ErrUnknownBackend   = errors.New("unknown ai backend")
	ErrEmptyResponse    = errors.New("empty response from model")
)

// Settings selects and configures a backend. Empty models use the backend default.
type Settings struct {
	Backend    string
	APIKey     string
	TextModel  string
	ImageModel string
}

// TextOptions tunes a text request.
type TextOptions struct {
	Temperature float32
	// Search enables web search grounding where the backend supports it.
	Search bool
}

// TextResult is the raw model output. Text may hold prose around the JSON document.
type TextResult struct {
	Text    string
	Sources []guide.Source
}

type ImageOptions struct {
	AspectRatio string
	MIMEType    string
}

// Image is one generated picture.
type Image struct {
	Data     []byte
	MIMEType string
}
