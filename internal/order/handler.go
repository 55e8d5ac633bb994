package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prasetyadw/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/orders/:orderNumber", h.getOrder)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not list orders", "error": "DATABASE_ERROR"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "orders", "data": orders})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	ord, err := h.service.GetForUser(userID, c.Params("orderNumber"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "order not found", "error": "NOT_FOUND"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not load order", "error": "DATABASE_ERROR"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "order", "data": ord})
}
