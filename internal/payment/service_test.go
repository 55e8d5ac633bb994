package payment

import (
	"testing"

	"github.com/prasetyadw/storefront-backend/internal/order"
)

const testServerKey = "server-key-123"

func seedOrder(t *testing.T, orders *order.InMemoryRepository) order.Order {
	t.Helper()
	ord, err := orders.Create(order.Order{
		OrderNumber:   "ORD-20250314092653-AB12CD34",
		UserID:        7,
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPending,
		Subtotal:      70000,
		ShippingCost:  15000,
		Total:         85000,
	}, order.Address{UserID: 7}, nil, order.ShippingRecord{})
	if err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return ord
}

func signedNotification(ord order.Order, transactionStatus, fraudStatus string) Notification {
	n := Notification{
		OrderID:           ord.OrderNumber,
		StatusCode:        "200",
		GrossAmount:       "85000.00",
		TransactionStatus: transactionStatus,
		FraudStatus:       fraudStatus,
		TransactionID:     "tx-001",
		PaymentType:       "qris",
	}
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, testServerKey)
	return n
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		transactionStatus, fraudStatus string
		wantPayment                    order.PaymentStatus
		wantOrder                      order.Status
	}{
		{"capture", "accept", order.PaymentPaid, order.StatusProcessing},
		{"capture", "challenge", order.PaymentPending, order.StatusPending},
		{"settlement", "", order.PaymentPaid, order.StatusProcessing},
		{"settlement", "challenge", order.PaymentPaid, order.StatusProcessing},
		{"cancel", "", order.PaymentFailed, order.StatusCancelled},
		{"expire", "", order.PaymentFailed, order.StatusCancelled},
		{"deny", "", order.PaymentFailed, order.StatusCancelled},
		{"refund", "", order.PaymentRefunded, order.StatusCancelled},
		{"partial_refund", "", order.PaymentRefunded, order.StatusCancelled},
		{"chargeback", "", order.PaymentRefunded, order.StatusCancelled},
		{"pending", "", order.PaymentPending, order.StatusPending},
		{"authorize", "", order.PaymentPending, order.StatusPending},
	}
	for _, tc := range cases {
		gotPayment, gotOrder := MapStatus(tc.transactionStatus, tc.fraudStatus)
		if gotPayment != tc.wantPayment || gotOrder != tc.wantOrder {
			t.Errorf("MapStatus(%q, %q) = (%s, %s), want (%s, %s)",
				tc.transactionStatus, tc.fraudStatus, gotPayment, gotOrder, tc.wantPayment, tc.wantOrder)
		}
	}
}

func TestHandleNotification_SettlementMarksPaid(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	if err := service.HandleNotification(signedNotification(ord, "settlement", "")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	updated, _ := orders.GetByOrderNumber(ord.OrderNumber)
	if updated.PaymentStatus != order.PaymentPaid || updated.Status != order.StatusProcessing {
		t.Fatalf("expected paid/processing, got %s/%s", updated.PaymentStatus, updated.Status)
	}

	p, err := repo.GetByTransactionID("tx-001")
	if err != nil {
		t.Fatalf("expected payment row, got %v", err)
	}
	if p.OrderID != ord.ID || p.Amount != 85000 || p.Method != "qris" {
		t.Fatalf("unexpected payment row %+v", p)
	}
}

func TestHandleNotification_DuplicateDelivery(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	n := signedNotification(ord, "settlement", "")
	if err := service.HandleNotification(n); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}
	if err := service.HandleNotification(n); err != nil {
		t.Fatalf("second delivery failed: %v", err)
	}

	if repo.Count() != 1 {
		t.Fatalf("expected exactly 1 payment row after duplicate delivery, got %d", repo.Count())
	}
}

func TestHandleNotification_LatePendingDoesNotRewind(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	if err := service.HandleNotification(signedNotification(ord, "settlement", "")); err != nil {
		t.Fatalf("settlement delivery failed: %v", err)
	}

	// a delayed pending notification arrives after settlement; it must be
	// acknowledged but not move the order backwards
	late := signedNotification(ord, "pending", "")
	late.TransactionID = "tx-002"
	if err := service.HandleNotification(late); err != nil {
		t.Fatalf("expected stale notification to be acknowledged, got %v", err)
	}

	updated, _ := orders.GetByOrderNumber(ord.OrderNumber)
	if updated.PaymentStatus != order.PaymentPaid || updated.Status != order.StatusProcessing {
		t.Fatalf("order regressed: payment_status=%s status=%s (want paid/processing)", updated.PaymentStatus, updated.Status)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected no payment row for the stale notification, got %d", repo.Count())
	}
}

func TestHandleNotification_RefundAfterPaid(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	if err := service.HandleNotification(signedNotification(ord, "settlement", "")); err != nil {
		t.Fatalf("settlement delivery failed: %v", err)
	}

	refund := signedNotification(ord, "refund", "")
	refund.TransactionID = "tx-003"
	if err := service.HandleNotification(refund); err != nil {
		t.Fatalf("refund delivery failed: %v", err)
	}

	updated, _ := orders.GetByOrderNumber(ord.OrderNumber)
	if updated.PaymentStatus != order.PaymentRefunded || updated.Status != order.StatusCancelled {
		t.Fatalf("expected refunded/cancelled, got %s/%s", updated.PaymentStatus, updated.Status)
	}
}

func TestHandleNotification_BadSignature(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	n := signedNotification(ord, "settlement", "")
	n.SignatureKey = "tampered"
	if err := service.HandleNotification(n); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}

	// no state may change on a forged notification
	unchanged, _ := orders.GetByOrderNumber(ord.OrderNumber)
	if unchanged.PaymentStatus != order.PaymentPending || unchanged.Status != order.StatusPending {
		t.Fatalf("expected order untouched, got %s/%s", unchanged.PaymentStatus, unchanged.Status)
	}
	if repo.Count() != 0 {
		t.Fatalf("expected no payment rows, got %d", repo.Count())
	}
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	orders := order.NewInMemoryRepository()
	repo := NewInMemoryRepository()
	service := NewService(repo, orders, testServerKey)

	n := Notification{
		OrderID:           "ORD-UNKNOWN",
		StatusCode:        "200",
		GrossAmount:       "1000.00",
		TransactionStatus: "settlement",
		TransactionID:     "tx-404",
	}
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, testServerKey)

	if err := service.HandleNotification(n); err != order.ErrNotFound {
		t.Fatalf("expected order.ErrNotFound, got %v", err)
	}
}

func TestHandleNotification_DenyCancelsOrder(t *testing.T) {
	orders := order.NewInMemoryRepository()
	ord := seedOrder(t, orders)
	service := NewService(NewInMemoryRepository(), orders, testServerKey)

	if err := service.HandleNotification(signedNotification(ord, "deny", "")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	updated, _ := orders.GetByOrderNumber(ord.OrderNumber)
	if updated.PaymentStatus != order.PaymentFailed || updated.Status != order.StatusCancelled {
		t.Fatalf("expected failed/cancelled, got %s/%s", updated.PaymentStatus, updated.Status)
	}
}
