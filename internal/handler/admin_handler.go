package handler

import (
	"fmt"

	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	service service.InventoryService
}

func NewAdminHandler(s service.InventoryService) *AdminHandler {
	return &AdminHandler{service: s}
}

// Reset clears the selected table; with no table query parameter both
// products and transactions are cleared.
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	table := c.Query("table")

	if err := h.service.ClearTables(table); err != nil {
		return badRequest(c, fmt.Sprintf("Failed to clear database table %q", table))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Database table %q cleared successfully", table),
	})
}

// NotFound is the catch-all for unknown endpoints.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":  fiber.StatusNotFound,
		"message": "Endpoint does not exist",
	})
}
