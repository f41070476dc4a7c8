// README: Destination background image. Failures never reach the caller.
package image

import (
	"context"
	"encoding/base64"

	"go.uber.org/zap"

	"tripguide/internal/ai"
)

const (
	AspectRatio = "16:9"
	MIMEType    = "image/jpeg"
)

type Service struct {
	provider ai.Provider
	log      *zap.Logger
}

func NewService(provider ai.Provider, log *zap.Logger) *Service {
	return &Service{provider: provider, log: log}
}

// FetchImage returns a data URL for one generated photo of destination, or "" on any
// failure.
func (s *Service) FetchImage(ctx context.Context, destination string) string {
	img, err := s.provider.GenerateImage(ctx, ai.ImagePrompt(destination), ai.ImageOptions{
		AspectRatio: AspectRatio,
		MIMEType:    MIMEType,
	})
	if err != nil {
		s.log.Warn("destination image unavailable", zap.String("destination", destination), zap.Error(err))
		return ""
	}
	if img == nil || len(img.Data) == 0 {
		s.log.Warn("destination image empty", zap.String("destination", destination))
		return ""
	}
	return DataURL(img)
}

// DataURL encodes img as a data: reference.
func DataURL(img *ai.Image) string {
	mime := img.MIMEType
	if mime == "" {
		mime = MIMEType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
