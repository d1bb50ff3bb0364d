package handler

import (
	"go-stockledger/internal/model"
	"go-stockledger/internal/service"
	"go-stockledger/internal/view"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return badRequest(c, "Failed to retrieve products")
	}
	return c.JSON(view.NewProducts(products))
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to retrieve the product details")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return badRequest(c, "Failed to retrieve the product details")
	}
	return c.JSON(view.NewProduct(*product))
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name         string  `json:"name"`
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
		InitialQty   int     `json:"initial_qty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to create a new product")
	}

	// Only the creation fields cross over; the stock counters start at
	// their schema defaults.
	product := model.Product{
		Name:         req.Name,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		InitialQty:   req.InitialQty,
	}

	id, err := h.service.CreateProduct(&product)
	if err != nil {
		return badRequest(c, "Failed to create a new product")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to update product")
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to update product")
	}

	if err := h.service.UpdateProductName(id, req.Name); err != nil {
		return badRequest(c, "Failed to update product")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to delete product")
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return badRequest(c, "Failed to delete product")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) SellProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to sell product")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to sell product")
	}

	if err := h.service.Sell(id, req.Quantity); err != nil {
		return badRequest(c, "Failed to sell product")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) SetExpired(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to set product as expired")
	}

	if err := h.service.SetExpired(id); err != nil {
		return badRequest(c, "Failed to set product as expired")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) AddQuantity(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Failed to update product quantity")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to update product quantity")
	}

	if err := h.service.AddQuantity(id, req.Quantity); err != nil {
		return badRequest(c, "Failed to update product quantity")
	}
	return c.JSON(fiber.Map{"success": true})
}
