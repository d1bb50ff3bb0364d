package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every failure surfaces the same envelope; validation, not-found and store
// outages are indistinguishable to the caller.
const errorMessage = "Bad Request"

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   errorMessage,
		"message": message,
	})
}

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
