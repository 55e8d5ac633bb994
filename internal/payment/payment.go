package payment

// Payment records one confirmed provider transaction. transaction_id is
// unique, so a retried notification can never double-record a payment.
type Payment struct {
	ID            int     `json:"paymentId"`
	OrderID       int     `json:"orderId"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// Notification is the provider-defined webhook payload.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
}

// Session is the provider's reference for a created payment: the token the
// client embeds plus the hosted redirect URL.
type Session struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}
