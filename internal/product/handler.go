package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	var categoryID *int
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid category", "error": "VALIDATION_ERROR"})
		}
		categoryID = &id
	}

	products, err := h.service.List(categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not list products", "error": "DATABASE_ERROR"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "products", "data": products})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid id", "error": "VALIDATION_ERROR"})
	}

	p, err := h.service.GetByID(id)
	if err != nil || !p.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "product not found", "error": "NOT_FOUND"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "product", "data": p})
}
