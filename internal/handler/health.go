package handler

import (
	"waitlist/internal/response"

	"github.com/gofiber/fiber/v2"
)

// Health 健康检查
func (h *WaitlistHandler) Health(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"name":    h.cfg.App.Name,
		"version": h.cfg.App.Version,
		"status":  "ok",
	})
}
