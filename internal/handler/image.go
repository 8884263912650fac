package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trendpilot/api/internal/model"
	"github.com/trendpilot/api/internal/service"
	"github.com/trendpilot/api/pkg/response"
)

type ImageHandler struct {
	service   *service.ImageService
	validator *validator.Validate
}

func NewImageHandler(svc *service.ImageService, v *validator.Validate) *ImageHandler {
	return &ImageHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/content/generate_image
func (h *ImageHandler) Generate(c *fiber.Ctx) error {
	var req model.ImageGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}
