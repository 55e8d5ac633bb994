package address

import (
	"strconv"

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
	app.Get("/api/v1/addresses", h.listAddresses)
	app.Post("/api/v1/addresses", h.createAddress)
	app.Put("/api/v1/addresses/:id<[0-9]+>", h.updateAddress)
	app.Delete("/api/v1/addresses/:id<[0-9]+>", h.deleteAddress)
}

type addressRequest struct {
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	RegencyCode  string `json:"regencyCode"`
	RegencyName  string `json:"regencyName"`
	DistrictCode string `json:"districtCode"`
	DistrictName string `json:"districtName"`
	PostalCode   string `json:"postalCode"`
}

func (r addressRequest) toAddress(userID int) Address {
	return Address{
		UserID:       userID,
		Recipient:    r.Recipient,
		Phone:        r.Phone,
		Street:       r.Street,
		ProvinceCode: r.ProvinceCode,
		ProvinceName: r.ProvinceName,
		RegencyCode:  r.RegencyCode,
		RegencyName:  r.RegencyName,
		DistrictCode: r.DistrictCode,
		DistrictName: r.DistrictName,
		PostalCode:   r.PostalCode,
	}
}

func (h *Handler) listAddresses(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	addresses, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not list addresses", "error": "DATABASE_ERROR"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "addresses", "data": addresses})
}

func (h *Handler) createAddress(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}
	if payload.Recipient == "" || payload.Street == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "recipient and street are required", "error": "VALIDATION_ERROR"})
	}

	created, err := h.service.Create(payload.toAddress(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not create address", "error": "DATABASE_ERROR"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "address created", "data": created})
}

func (h *Handler) updateAddress(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	addressID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid id", "error": "VALIDATION_ERROR"})
	}

	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error(), "error": "VALIDATION_ERROR"})
	}

	updated, err := h.service.Update(userID, addressID, payload.toAddress(userID))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "address not found", "error": "NOT_FOUND"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not update address", "error": "DATABASE_ERROR"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "address updated", "data": updated})
}

func (h *Handler) deleteAddress(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
	}

	addressID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid id", "error": "VALIDATION_ERROR"})
	}

	if err := h.service.Delete(userID, addressID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "address not found", "error": "NOT_FOUND"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not delete address", "error": "DATABASE_ERROR"})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
