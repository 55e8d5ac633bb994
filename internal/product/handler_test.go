package product

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithProductHandler(seed []Product) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)
	return app
}

func TestListProducts_FiltersInactive(t *testing.T) {
	cat := 2
	app := makeAppWithProductHandler([]Product{
		{ID: 1, Name: "Kibble", Price: 35000, Stock: 5, IsActive: true},
		{ID: 2, Name: "Old Toy", Price: 5000, Stock: 0, IsActive: false},
		{ID: 3, Name: "Collar", Price: 15000, Stock: 2, CategoryID: &cat, IsActive: true},
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "Old Toy") {
		t.Fatalf("inactive product leaked into listing: %s", string(b))
	}
	if !strings.Contains(string(b), "Kibble") || !strings.Contains(string(b), "Collar") {
		t.Fatalf("expected both active products, got %s", string(b))
	}

	// category filter
	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?category=2", nil))
	b2, _ := io.ReadAll(res2.Body)
	if strings.Contains(string(b2), "Kibble") || !strings.Contains(string(b2), "Collar") {
		t.Fatalf("expected only category 2 products, got %s", string(b2))
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?category=x", nil))
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad category, got %d", res3.StatusCode)
	}
}

func TestGetProduct(t *testing.T) {
	app := makeAppWithProductHandler([]Product{
		{ID: 1, Name: "Kibble", Price: 35000, Stock: 5, IsActive: true},
		{ID: 2, Name: "Hidden", Price: 5000, Stock: 1, IsActive: false},
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	// inactive products are invisible to detail reads too
	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/2", nil))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for inactive product, got %d", res2.StatusCode)
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/99", nil))
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res3.StatusCode)
	}
}
