package checkout

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
	app.Post("/api/v1/checkout", h.checkout)
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	res, err := h.service.Checkout(c.Context(), userID, *payload)
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
		case ErrProductUnavailable:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "NOT_FOUND"})
		case ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "INSUFFICIENT_STOCK"})
		case ErrPaymentInit:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "PAYMENT_INIT_FAILED"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not place order", "error": "DATABASE_ERROR"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "order placed", "data": res})
}
