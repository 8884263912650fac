package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/trendpilot/api/internal/client"
	"github.com/trendpilot/api/internal/imagegen"
	"github.com/trendpilot/api/internal/model"
)

const defaultImageSize = "1024x1024"

// ImageService generates social images via the upstream image API, rendering
// a local placeholder when the upstream is unconfigured or fails.
type ImageService struct {
	openai *client.OpenAIClient
}

func NewImageService(openai *client.OpenAIClient) *ImageService {
	return &ImageService{openai: openai}
}

// Generate builds the image prompt, attempts one upstream call, and falls
// back to the placeholder renderer. An error is only possible if even the
// placeholder cannot be produced.
func (s *ImageService) Generate(ctx context.Context, req *model.ImageGenerateRequest) (*model.ImageGenerateResponse, error) {
	size := strings.TrimSpace(req.Size)
	if size == "" {
		size = defaultImageSize
	}

	prompt := imagegen.BuildPrompt(imagegen.PromptParams{
		Topic:        strings.TrimSpace(req.Topic),
		Tone:         strings.TrimSpace(req.Tone),
		Caption:      strings.TrimSpace(req.Caption),
		Subject:      req.Subject,
		Style:        req.Style,
		Background:   req.Background,
		Lighting:     req.Lighting,
		ColorPalette: req.ColorPalette,
	})

	if s.openai != nil && s.openai.IsConfigured() {
		b64, err := s.openai.GenerateImage(ctx, prompt, size)
		if err != nil {
			log.Warn().Err(err).Msg("image upstream failed, rendering placeholder")
		} else if b64 != "" {
			return &model.ImageGenerateResponse{
				Success:     true,
				ImageBase64: b64,
				Mime:        "image/png",
			}, nil
		}
	}

	label := strings.TrimSpace(req.Topic)
	if label == "" {
		label = strings.TrimSpace(req.Caption)
	}
	b64, err := imagegen.Placeholder(label, size)
	if err != nil {
		return nil, fmt.Errorf("could not generate image: %w", err)
	}

	return &model.ImageGenerateResponse{
		Success:     true,
		ImageBase64: b64,
		Mime:        "image/png",
		Fallback:    true,
	}, nil
}
