package handler

import (
	"go-stockledger/internal/service"
	"go-stockledger/internal/view"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		return badRequest(c, "Failed to get transactions list")
	}
	return c.JSON(view.NewTransactions(transactions))
}

// GetTransactionsByProduct lists the restock history of one product. The id
// parameter is a product id, not a transaction id.
func (h *TransactionHandler) GetTransactionsByProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to get the transactions")
	}

	transactions, err := h.service.GetTransactionsByProduct(productID)
	if err != nil {
		return badRequest(c, "Failed to get the transactions")
	}
	return c.JSON(view.NewTransactions(transactions))
}
