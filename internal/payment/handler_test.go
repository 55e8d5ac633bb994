package payment

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prasetyadw/storefront-backend/internal/order"
)

func postNotification(app *fiber.App, n Notification) int {
	body, _ := json.Marshal(n)
	req := httptest.NewRequest("POST", "/api/v1/payments/notification", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	return res.StatusCode
}

func TestNotificationRoute(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	service := NewService(NewInMemoryRepository(), orders, testServerKey)

	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)

	// valid notification is acknowledged
	if code := postNotification(app, signedNotification(ord, "settlement", "")); code != fiber.StatusOK {
		t.Fatalf("expected 200 for valid notification, got %d", code)
	}

	// forged signature
	forged := signedNotification(ord, "settlement", "")
	forged.SignatureKey = "forged"
	if code := postNotification(app, forged); code != fiber.StatusForbidden {
		t.Fatalf("expected 403 for forged signature, got %d", code)
	}

	// unknown order
	unknown := Notification{
		OrderID:           "ORD-UNKNOWN",
		StatusCode:        "200",
		GrossAmount:       "1000.00",
		TransactionStatus: "settlement",
		TransactionID:     "tx-404",
	}
	unknown.SignatureKey = Signature(unknown.OrderID, unknown.StatusCode, unknown.GrossAmount, testServerKey)
	if code := postNotification(app, unknown); code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", code)
	}

	// missing identifiers
	if code := postNotification(app, Notification{}); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing ids, got %d", code)
	}
}
