package order

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithOrderHandler(repo Repository) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	NewHandler(NewService(repo)).RegisterProtectedRoutes(app)
	return app
}

func TestOrderRoutes_Ownership(t *testing.T) {
	repo := NewInMemoryRepository()
	ord, err := repo.Create(
		Order{OrderNumber: "ORD-20250314092653-AB12CD34", UserID: 7, Status: StatusPending, PaymentStatus: PaymentPending, Total: 85000},
		Address{UserID: 7, Recipient: "Ana", Street: "Jl. Melati 5"},
		[]Item{{ProductID: 1, ProductName: "Kibble", Quantity: 2, UnitPrice: 35000, Subtotal: 70000}},
		ShippingRecord{CourierCode: "jne", Service: "REG", Cost: 15000},
	)
	if err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	app := makeAppWithOrderHandler(repo)

	// the owner sees the order
	req := httptest.NewRequest("GET", "/api/v1/orders/"+ord.OrderNumber, nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), ord.OrderNumber) {
		t.Fatalf("expected order number in body, got %s", string(b))
	}

	// anyone else gets 404, not 403, to avoid leaking order numbers
	req2 := httptest.NewRequest("GET", "/api/v1/orders/"+ord.OrderNumber, nil)
	req2.Header.Set("X-User-ID", "8")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for non-owner, got %d", res2.StatusCode)
	}

	// listing is scoped to the session user
	req3 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req3.Header.Set("X-User-ID", "8")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for listing, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if strings.Contains(string(b3), ord.OrderNumber) {
		t.Fatalf("expected other user's listing to exclude the order, got %s", string(b3))
	}

	// unauthenticated
	res4, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders", nil))
	if res4.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated list, got %d", res4.StatusCode)
	}
}
