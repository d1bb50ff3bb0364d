package handler

import (
	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetProductStats returns the derived profit/loss figures for one product.
func (h *StatsHandler) GetProductStats(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to retrieve product statistics")
	}

	stats, err := h.service.GetProductStats(id)
	if err != nil {
		return badRequest(c, "Failed to retrieve product statistics")
	}
	return c.JSON(stats)
}
