package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prasetyadw/storefront-backend/internal/product"
	"github.com/prasetyadw/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Put("/api/v1/cart", h.setQuantity)
	app.Delete("/api/v1/cart/:productId<[0-9]+>", h.removeLine)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid productId", "error": "VALIDATION_ERROR"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	items, err := h.service.SetQuantity(userID, payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "product not found", "error": "NOT_FOUND"})
		case product.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "product is out of stock", "error": "INSUFFICIENT_STOCK"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not update cart", "error": "DATABASE_ERROR"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "cart updated", "data": items})
}

func (h *Handler) removeLine(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid productId", "error": "VALIDATION_ERROR"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	items, err := h.service.Remove(userID, productID)
	if err != nil {
		switch err {
		case ErrLineNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "cart line not found", "error": "NOT_FOUND"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not update cart", "error": "DATABASE_ERROR"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "cart line removed", "data": items})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	items, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not load cart", "error": "DATABASE_ERROR"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "cart", "data": items})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	if err := h.service.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not clear cart", "error": "DATABASE_ERROR"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
