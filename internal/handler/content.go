package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trendpilot/api/internal/caption"
	"github.com/trendpilot/api/internal/model"
	"github.com/trendpilot/api/internal/service"
	"github.com/trendpilot/api/pkg/response"
)

type ContentHandler struct {
	service   *service.ContentService
	validator *validator.Validate
}

func NewContentHandler(svc *service.ContentService, v *validator.Validate) *ContentHandler {
	return &ContentHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/content/generate. Structured fields win over the
// optional free-form prompt block, which fills any field left empty. A
// missing topic is the one client error; every other gap is defaulted.
func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	var req model.ContentGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if req.Prompt != "" {
		fields := caption.ParsePrompt(req.Prompt)
		if strings.TrimSpace(req.Topic) == "" {
			req.Topic = fields.Topic
		}
		if strings.TrimSpace(req.Platform) == "" {
			req.Platform = fields.Platform
		}
		if strings.TrimSpace(req.Tone) == "" {
			req.Tone = fields.Tone
		}
		if strings.TrimSpace(req.Trend) == "" {
			req.Trend = fields.Trend
		}
	}
	req.Topic = strings.TrimSpace(req.Topic)

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	return response.OK(c, h.service.Generate(c.Context(), &req))
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
