package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trendpilot/api/internal/service"
	"github.com/trendpilot/api/pkg/response"
)

type TrendsHandler struct {
	service *service.TrendsService
}

func NewTrendsHandler(svc *service.TrendsService) *TrendsHandler {
	return &TrendsHandler{service: svc}
}

// Trending handles GET /api/trends?platform=
func (h *TrendsHandler) Trending(c *fiber.Ctx) error {
	platform := c.Query("platform", "instagram")
	return response.OK(c, h.service.Trending(c.Context(), platform))
}
