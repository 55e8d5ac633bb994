package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prasetyadw/storefront-backend/internal/order"
	"github.com/prasetyadw/storefront-backend/internal/payment"
	"github.com/prasetyadw/storefront-backend/internal/product"
)

// ProductStore is the slice of the product repository checkout needs.
type ProductStore interface {
	ListActiveByIDs(ids []int) ([]product.Product, error)
	DecrementStock(productID, qty int) error
	ReleaseStock(productID, qty int) error
}

// OrderStore is the slice of the order repository checkout needs.
type OrderStore interface {
	Create(ord order.Order, addr order.Address, items []order.Item, ship order.ShippingRecord) (order.Order, error)
	SetPaymentSession(orderID int, token string) error
	UpdateStatus(orderNumber string, status order.Status, paymentStatus order.PaymentStatus) error
}

// CartStore clears the buyer's cart once the order is placed.
type CartStore interface {
	Clear(userID int) error
}

// Gateway opens a hosted payment session for a placed order.
type Gateway interface {
	CreateSession(ctx context.Context, orderNumber string, grossAmount float64) (payment.Session, error)
}

// Service places orders. Each step either completes or unwinds the ones
// before it, except payment-session creation: an order whose session could
// not be opened stays pending so the buyer can retry payment.
type Service struct {
	products ProductStore
	orders   OrderStore
	carts    CartStore
	gateway  Gateway
	now      func() time.Time
}

func NewService(products ProductStore, orders OrderStore, carts CartStore, gateway Gateway) *Service {
	return &Service{
		products: products,
		orders:   orders,
		carts:    carts,
		gateway:  gateway,
		now:      time.Now,
	}
}

func (s *Service) Checkout(ctx context.Context, userID int, req Request) (Response, error) {
	if len(req.CartItems) == 0 {
		return Response{}, ErrEmptyCart
	}
	for _, line := range req.CartItems {
		if line.Quantity < 1 {
			return Response{}, ErrInvalidQuantity
		}
	}

	ids := make([]int, len(req.CartItems))
	for i, line := range req.CartItems {
		ids[i] = line.ProductID
	}

	products, err := s.products.ListActiveByIDs(ids)
	if err != nil {
		return Response{}, err
	}
	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Validate everything before writing anything. Quantities are summed
	// per product first so repeated lines cannot slip past the stock check
	// individually and fail only at the decrement.
	required := make(map[int]int, len(req.CartItems))
	var subtotal float64
	for _, line := range req.CartItems {
		p, ok := byID[line.ProductID]
		if !ok {
			return Response{}, ErrProductUnavailable
		}
		required[line.ProductID] += line.Quantity
		subtotal += p.Price * float64(line.Quantity)
	}
	for id, qty := range required {
		if byID[id].Stock < qty {
			return Response{}, ErrInsufficientStock
		}
	}

	shippingCost := req.SelectedShippingMethod.Cost
	total := subtotal + shippingCost

	items := make([]order.Item, len(req.CartItems))
	for i, line := range req.CartItems {
		p := byID[line.ProductID]
		items[i] = order.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    p.Price * float64(line.Quantity),
		}
	}

	now := s.now()
	rawQuote, _ := json.Marshal(req.SelectedShippingMethod)
	ord := order.Order{
		OrderNumber:       order.NewOrderNumber(now),
		UserID:            userID,
		Status:            order.StatusPending,
		PaymentStatus:     order.PaymentPending,
		Subtotal:          subtotal,
		ShippingCost:      shippingCost,
		Total:             total,
		EstimatedDelivery: estimatedDelivery(now, req.SelectedShippingMethod.ETD),
	}
	ship := order.ShippingRecord{
		CourierCode: req.SelectedShippingMethod.CourierCode,
		Service:     req.SelectedShippingMethod.Service,
		Cost:        shippingCost,
		ETD:         req.SelectedShippingMethod.ETD,
		RawQuote:    rawQuote,
	}

	created, err := s.orders.Create(ord, req.ShippingAddress.toSnapshot(userID), items, ship)
	if err != nil {
		return Response{}, err
	}

	// Reserve stock line by line. A raced decrement unwinds the lines
	// already taken and cancels the order.
	for i, line := range req.CartItems {
		if err := s.products.DecrementStock(line.ProductID, line.Quantity); err != nil {
			for j := 0; j < i; j++ {
				if relErr := s.products.ReleaseStock(req.CartItems[j].ProductID, req.CartItems[j].Quantity); relErr != nil {
					fmt.Printf("checkout: could not release stock for product %d on order %s: %v\n", req.CartItems[j].ProductID, created.OrderNumber, relErr)
				}
			}
			if updErr := s.orders.UpdateStatus(created.OrderNumber, order.StatusCancelled, order.PaymentFailed); updErr != nil {
				fmt.Printf("checkout: could not cancel order %s: %v\n", created.OrderNumber, updErr)
			}
			if err == product.ErrInsufficientStock {
				return Response{}, ErrInsufficientStock
			}
			return Response{}, err
		}
	}

	if err := s.carts.Clear(userID); err != nil {
		fmt.Printf("checkout: could not clear cart for user %d: %v\n", userID, err)
	}

	session, err := s.gateway.CreateSession(ctx, created.OrderNumber, total)
	if err != nil {
		fmt.Printf("checkout: payment session for order %s failed: %v\n", created.OrderNumber, err)
		return Response{}, ErrPaymentInit
	}
	if err := s.orders.SetPaymentSession(created.ID, session.Token); err != nil {
		return Response{}, err
	}

	return Response{
		OrderID:             created.ID,
		OrderNumber:         created.OrderNumber,
		TotalAmount:         total,
		ShippingCost:        shippingCost,
		PaymentSessionToken: session.Token,
		PaymentRedirectURL:  session.RedirectURL,
	}, nil
}

// estimatedDelivery adds the leading number of days in an ETD like "2-3"
// or "3 day" to the order date. An unparseable ETD counts as zero days.
func estimatedDelivery(now time.Time, etd string) string {
	return now.UTC().AddDate(0, 0, parseEtdDays(etd)).Format("2006-01-02")
}

func parseEtdDays(etd string) int {
	etd = strings.TrimSpace(etd)
	end := 0
	for end < len(etd) && etd[end] >= '0' && etd[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	days, err := strconv.Atoi(etd[:end])
	if err != nil {
		return 0
	}
	return days
}
