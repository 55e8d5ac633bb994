package order

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the fulfilment lifecycle of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus is the independent payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {PaymentRefunded},
}

// CanTransition reports whether the fulfilment status may move from one
// state to the other. Staying in the same state is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionPayment is the payment-status counterpart of CanTransition.
func CanTransitionPayment(from, to PaymentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a persisted purchase. Monetary fields satisfy
// total = subtotal + shipping_cost - discount + tax.
type Order struct {
	ID                  int           `json:"orderId"`
	OrderNumber         string        `json:"orderNumber"`
	UserID              int           `json:"userId"`
	AddressID           int           `json:"addressId"`
	Status              Status        `json:"status"`
	PaymentStatus       PaymentStatus `json:"paymentStatus"`
	Subtotal            float64       `json:"subtotal"`
	ShippingCost        float64       `json:"shippingCost"`
	Discount            float64       `json:"discount"`
	Tax                 float64       `json:"tax"`
	Total               float64       `json:"total"`
	PaymentSessionToken *string       `json:"paymentSessionToken,omitempty"`
	EstimatedDelivery   string        `json:"estimatedDelivery,omitempty"`
	CreatedAt           string        `json:"createdAt,omitempty"`
	UpdatedAt           string        `json:"updatedAt,omitempty"`
	Items               []Item        `json:"items,omitempty"`
}

// Item freezes product name and price at the moment of purchase so the
// order stays accurate when the catalog changes later.
type Item struct {
	ID          int     `json:"orderItemId"`
	OrderID     int     `json:"orderId"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// Address is the immutable shipping-destination snapshot stored per order.
type Address struct {
	ID           int    `json:"addressId"`
	UserID       int    `json:"userId"`
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	ProvinceCode string `json:"provinceCode,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
	RegencyCode  string `json:"regencyCode,omitempty"`
	RegencyName  string `json:"regencyName,omitempty"`
	DistrictCode string `json:"districtCode,omitempty"`
	DistrictName string `json:"districtName,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
}

// ShippingRecord keeps the quote the buyer selected, including the raw
// provider payload for audit.
type ShippingRecord struct {
	ID          int             `json:"shippingRecordId"`
	OrderID     int             `json:"orderId"`
	CourierCode string          `json:"courierCode"`
	Service     string          `json:"service"`
	Cost        float64         `json:"cost"`
	ETD         string          `json:"etd,omitempty"`
	RawQuote    json.RawMessage `json:"rawQuote,omitempty"`
}

// NewOrderNumber derives a globally unique, human-readable order number
// from the creation timestamp plus a random suffix. It is the correlation
// key sent to the payment provider.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102150405"), suffix)
}
