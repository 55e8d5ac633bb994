package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prasetyadw/storefront-backend/internal/cart"
	"github.com/prasetyadw/storefront-backend/internal/order"
	"github.com/prasetyadw/storefront-backend/internal/payment"
	"github.com/prasetyadw/storefront-backend/internal/product"
)

type fakeGateway struct {
	calls int
	err   error
}

func (f *fakeGateway) CreateSession(ctx context.Context, orderNumber string, grossAmount float64) (payment.Session, error) {
	f.calls++
	if f.err != nil {
		return payment.Session{}, f.err
	}
	return payment.Session{Token: "snap-token", RedirectURL: "https://pay.example/" + orderNumber}, nil
}

type fixture struct {
	service  *Service
	products *product.InMemoryRepository
	orders   *order.InMemoryRepository
	carts    *cart.InMemoryRepository
	gateway  *fakeGateway
}

func newFixture(seed []product.Product) *fixture {
	f := &fixture{
		products: product.NewInMemoryRepository(seed),
		orders:   order.NewInMemoryRepository(),
		carts:    cart.NewInMemoryRepository(),
		gateway:  &fakeGateway{},
	}
	f.service = NewService(f.products, f.orders, f.carts, f.gateway)
	f.service.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return f
}

func validRequest() Request {
	return Request{
		CartItems: []CartItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		ShippingAddress: ShippingAddressInput{
			Recipient:    "Ana Putri",
			Phone:        "0812",
			Street:       "Jl. Melati 5",
			DistrictCode: "3275020",
			DistrictName: "Bekasi Barat",
		},
		SelectedShippingMethod: ShippingMethodInput{
			CourierCode:             "jne",
			Service:                 "REG",
			Cost:                    15000,
			ETD:                     "2-3 day",
			TotalWeight:             1500,
			OriginDistrictCode:      "3171010",
			DestinationDistrictCode: "3275020",
		},
	}
}

func seedProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Kibble", Price: 30000, Stock: 5, IsActive: true},
		{ID: 2, Name: "Collar", Price: 10000, Stock: 3, IsActive: true},
	}
}

func TestCheckout_HappyPath(t *testing.T) {
	f := newFixture(seedProducts())
	_ = f.carts.Upsert(42, 1, 2)
	_ = f.carts.Upsert(42, 2, 1)

	res, err := f.service.Checkout(context.Background(), 42, validRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// 2×30000 + 1×10000 + 15000 shipping
	if res.TotalAmount != 85000 || res.ShippingCost != 15000 {
		t.Fatalf("unexpected totals %+v", res)
	}
	if res.PaymentSessionToken != "snap-token" || res.PaymentRedirectURL == "" {
		t.Fatalf("expected payment session in response, got %+v", res)
	}

	ord, err := f.orders.GetByOrderNumber(res.OrderNumber)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if ord.Status != order.StatusPending || ord.PaymentStatus != order.PaymentPending {
		t.Fatalf("expected pending/pending, got %s/%s", ord.Status, ord.PaymentStatus)
	}
	if ord.Subtotal != 70000 || ord.Total != 85000 {
		t.Fatalf("unexpected order totals %+v", ord)
	}
	if len(ord.Items) != 2 || ord.Items[0].UnitPrice != 30000 || ord.Items[0].Subtotal != 60000 {
		t.Fatalf("unexpected order items %+v", ord.Items)
	}
	// ETD "2-3 day" adds two days to the order date
	if ord.EstimatedDelivery != "2025-03-16" {
		t.Fatalf("unexpected estimated delivery %q", ord.EstimatedDelivery)
	}

	// stock reserved
	p1, _ := f.products.GetByID(1)
	p2, _ := f.products.GetByID(2)
	if p1.Stock != 3 || p2.Stock != 2 {
		t.Fatalf("expected stock 3/2 after checkout, got %d/%d", p1.Stock, p2.Stock)
	}

	// cart cleared
	lines, _ := f.carts.List(42)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after checkout, got %+v", lines)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture(seedProducts())

	req := validRequest()
	req.CartItems = nil
	if _, err := f.service.Checkout(context.Background(), 42, req); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_NonPositiveQuantity(t *testing.T) {
	f := newFixture(seedProducts())

	req := validRequest()
	req.CartItems[1].Quantity = 0
	if _, err := f.service.Checkout(context.Background(), 42, req); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCheckout_MissingProductAbortsBeforeWrites(t *testing.T) {
	f := newFixture([]product.Product{
		{ID: 1, Name: "Kibble", Price: 30000, Stock: 5, IsActive: true},
		{ID: 2, Name: "Collar", Price: 10000, Stock: 3, IsActive: false},
	})

	if _, err := f.service.Checkout(context.Background(), 42, validRequest()); err != ErrProductUnavailable {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}

	if orders, _ := f.orders.ListByUser(42); len(orders) != 0 {
		t.Fatalf("expected no order written, got %d", len(orders))
	}
	if p, _ := f.products.GetByID(1); p.Stock != 5 {
		t.Fatalf("expected stock untouched, got %d", p.Stock)
	}
	if f.gateway.calls != 0 {
		t.Fatalf("expected no gateway call, got %d", f.gateway.calls)
	}
}

func TestCheckout_InsufficientStockAbortsBeforeWrites(t *testing.T) {
	f := newFixture([]product.Product{
		{ID: 1, Name: "Kibble", Price: 30000, Stock: 1, IsActive: true},
		{ID: 2, Name: "Collar", Price: 10000, Stock: 3, IsActive: true},
	})

	if _, err := f.service.Checkout(context.Background(), 42, validRequest()); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if orders, _ := f.orders.ListByUser(42); len(orders) != 0 {
		t.Fatalf("expected no order written, got %d", len(orders))
	}
}

func TestCheckout_RepeatedLinesValidatedJointly(t *testing.T) {
	f := newFixture([]product.Product{
		{ID: 1, Name: "Kibble", Price: 30000, Stock: 3, IsActive: true},
	})

	// each line fits the stock of 3 on its own; together they exceed it
	req := validRequest()
	req.CartItems = []CartItemInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 2},
	}
	if _, err := f.service.Checkout(context.Background(), 42, req); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if orders, _ := f.orders.ListByUser(42); len(orders) != 0 {
		t.Fatalf("expected no order written, got %d", len(orders))
	}
	if p, _ := f.products.GetByID(1); p.Stock != 3 {
		t.Fatalf("expected stock untouched, got %d", p.Stock)
	}
}

func TestCheckout_PaymentFailureLeavesPendingOrder(t *testing.T) {
	f := newFixture(seedProducts())
	f.gateway.err = errors.New("gateway timeout")

	if _, err := f.service.Checkout(context.Background(), 42, validRequest()); err != ErrPaymentInit {
		t.Fatalf("expected ErrPaymentInit, got %v", err)
	}

	// the order survives without a session so payment can be retried
	orders, _ := f.orders.ListByUser(42)
	if len(orders) != 1 {
		t.Fatalf("expected order to remain, got %d", len(orders))
	}
	if orders[0].Status != order.StatusPending || orders[0].PaymentSessionToken != nil {
		t.Fatalf("expected pending order without session, got %+v", orders[0])
	}
	// stock stays reserved for the pending order
	if p, _ := f.products.GetByID(1); p.Stock != 3 {
		t.Fatalf("expected stock still reserved, got %d", p.Stock)
	}
}

// racedProducts passes validation but fails the decrement on one product,
// mimicking a concurrent checkout draining stock between the read and the
// guarded update.
type racedProducts struct {
	*product.InMemoryRepository
	failID   int
	released map[int]int
}

func (r *racedProducts) DecrementStock(productID, qty int) error {
	if productID == r.failID {
		return product.ErrInsufficientStock
	}
	return r.InMemoryRepository.DecrementStock(productID, qty)
}

func (r *racedProducts) ReleaseStock(productID, qty int) error {
	r.released[productID] += qty
	return r.InMemoryRepository.ReleaseStock(productID, qty)
}

func TestCheckout_RacedDecrementCompensates(t *testing.T) {
	products := &racedProducts{
		InMemoryRepository: product.NewInMemoryRepository(seedProducts()),
		failID:             2,
		released:           make(map[int]int),
	}
	orders := order.NewInMemoryRepository()
	carts := cart.NewInMemoryRepository()
	gateway := &fakeGateway{}
	service := NewService(products, orders, carts, gateway)

	if _, err := service.Checkout(context.Background(), 42, validRequest()); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// the first line's decrement is unwound
	if products.released[1] != 2 {
		t.Fatalf("expected 2 units of product 1 released, got %d", products.released[1])
	}
	if p, _ := products.GetByID(1); p.Stock != 5 {
		t.Fatalf("expected stock restored to 5, got %d", p.Stock)
	}

	// the already-written order is cancelled, not deleted
	list, _ := orders.ListByUser(42)
	if len(list) != 1 || list[0].Status != order.StatusCancelled || list[0].PaymentStatus != order.PaymentFailed {
		t.Fatalf("expected cancelled order, got %+v", list)
	}
	if gateway.calls != 0 {
		t.Fatalf("expected no gateway call after raced decrement, got %d", gateway.calls)
	}
}

func TestParseEtdDays(t *testing.T) {
	cases := []struct {
		etd  string
		want int
	}{
		{"2-3 day", 2},
		{"3 day", 3},
		{"1", 1},
		{"", 0},
		{"same day", 0},
		{" 4-5 ", 4},
	}
	for _, tc := range cases {
		if got := parseEtdDays(tc.etd); got != tc.want {
			t.Errorf("parseEtdDays(%q) = %d, want %d", tc.etd, got, tc.want)
		}
	}
}
