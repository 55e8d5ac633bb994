package payment

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/prasetyadw/storefront-backend/internal/order"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterPublicRoutes registers the webhook endpoint. The provider cannot
// present a user session; authenticity comes from the payload signature.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/payments/notification", h.handleNotification)
}

func (h *Handler) handleNotification(c *fiber.Ctx) error {
	payload := new(Notification)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}
	if payload.OrderID == "" || payload.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "order_id and transaction_id are required", "error": "VALIDATION_ERROR"})
	}

	if err := h.service.HandleNotification(*payload); err != nil {
		switch err {
		case ErrBadSignature:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "invalid signature", "error": "FORBIDDEN"})
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "order not found", "error": "NOT_FOUND"})
		default:
			fmt.Printf("payment: notification for order %s failed: %v\n", payload.OrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not process notification", "error": "DATABASE_ERROR"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "OK"})
}
