package payment

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prasetyadw/storefront-backend/internal/order"
)

var ErrBadSignature = errors.New("invalid webhook signature")

// OrderStore is the slice of the order repository the webhook needs.
type OrderStore interface {
	GetByOrderNumber(orderNumber string) (order.Order, error)
	UpdateStatus(orderNumber string, status order.Status, paymentStatus order.PaymentStatus) error
}

// Service reconciles provider notifications into order and payment state.
type Service struct {
	repo      Repository
	orders    OrderStore
	serverKey string
}

func NewService(repo Repository, orders OrderStore, serverKey string) *Service {
	return &Service{repo: repo, orders: orders, serverKey: serverKey}
}

// MapStatus translates the provider's (transaction_status, fraud_status)
// pair into internal payment and order statuses.
func MapStatus(transactionStatus, fraudStatus string) (order.PaymentStatus, order.Status) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return order.PaymentPaid, order.StatusProcessing
		}
		return order.PaymentPending, order.StatusPending
	case "settlement":
		return order.PaymentPaid, order.StatusProcessing
	case "cancel", "expire", "deny":
		return order.PaymentFailed, order.StatusCancelled
	case "refund", "partial_refund", "chargeback":
		return order.PaymentRefunded, order.StatusCancelled
	default:
		return order.PaymentPending, order.StatusPending
	}
}

// HandleNotification verifies and applies one provider notification. The
// payment row is inserted at most once per transaction id; a duplicate
// delivery only re-applies the (idempotent) order-status update.
func (s *Service) HandleNotification(n Notification) error {
	if !validSignature(n, s.serverKey) {
		return ErrBadSignature
	}

	paymentStatus, status := MapStatus(n.TransactionStatus, n.FraudStatus)

	ord, err := s.orders.GetByOrderNumber(n.OrderID)
	if err != nil {
		return err
	}

	// Notifications can arrive late or out of order; a move the state
	// machine rejects is stale and must not rewind the order. Acknowledge
	// it anyway so the provider stops retrying.
	if !order.CanTransition(ord.Status, status) || !order.CanTransitionPayment(ord.PaymentStatus, paymentStatus) {
		fmt.Printf("payment: stale notification for order %s (%s/%s -> %s/%s), skipping\n",
			n.OrderID, ord.Status, ord.PaymentStatus, status, paymentStatus)
		return nil
	}

	if err := s.orders.UpdateStatus(n.OrderID, status, paymentStatus); err != nil {
		return err
	}

	if _, err := s.repo.GetByTransactionID(n.TransactionID); err == nil {
		fmt.Printf("payment: duplicate notification for transaction %s, skipping insert\n", n.TransactionID)
		return nil
	} else if err != ErrNotFound {
		return err
	}

	amount, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil {
		amount = 0
	}

	if _, err := s.repo.Create(Payment{
		OrderID:       ord.ID,
		TransactionID: n.TransactionID,
		Amount:        amount,
		Method:        n.PaymentType,
		Status:        string(paymentStatus),
	}); err != nil {
		return err
	}

	return nil
}
