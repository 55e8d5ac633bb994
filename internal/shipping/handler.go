package shipping

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/shipping/provinces", h.listProvinces)
	app.Get("/api/v1/shipping/regencies/:provinceCode", h.listRegencies)
	app.Get("/api/v1/shipping/districts/:regencyCode", h.listDistricts)
	app.Post("/api/v1/shipping/cost", h.quoteCost)
}

func (h *Handler) listProvinces(c *fiber.Ctx) error {
	regions, err := h.service.Provinces(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "region lookup failed", "error": "INTERNAL_SERVER_ERROR"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "provinces", "data": regions})
}

func (h *Handler) listRegencies(c *fiber.Ctx) error {
	regions, err := h.service.Regencies(c.Context(), c.Params("provinceCode"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "region lookup failed", "error": "INTERNAL_SERVER_ERROR"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "regencies", "data": regions})
}

func (h *Handler) listDistricts(c *fiber.Ctx) error {
	regions, err := h.service.Districts(c.Context(), c.Params("regencyCode"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "region lookup failed", "error": "INTERNAL_SERVER_ERROR"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "districts", "data": regions})
}

func (h *Handler) quoteCost(c *fiber.Ctx) error {
	payload := new(QuoteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}
	if payload.OriginDistrictCode == "" || payload.DestinationDistrictCode == "" || payload.TotalWeight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "origin, destination and weight are required", "error": "VALIDATION_ERROR"})
	}

	quotes, err := h.service.Cost(c.Context(), *payload)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "shipping quote failed", "error": "INTERNAL_SERVER_ERROR"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "shipping cost", "data": quotes})
}
