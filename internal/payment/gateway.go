package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SnapClient creates hosted payment sessions with the gateway. The order
// number is the correlation key; the returned token ends up on the order.
type SnapClient struct {
	baseURL   string
	serverKey string
	http      *http.Client
}

func NewSnapClient(baseURL, serverKey string, timeout time.Duration) *SnapClient {
	return &SnapClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		serverKey: serverKey,
		http:      &http.Client{Timeout: timeout},
	}
}

type snapRequest struct {
	TransactionDetails struct {
		OrderID     string  `json:"order_id"`
		GrossAmount float64 `json:"gross_amount"`
	} `json:"transaction_details"`
}

func (c *SnapClient) CreateSession(ctx context.Context, orderNumber string, grossAmount float64) (Session, error) {
	var payload snapRequest
	payload.TransactionDetails.OrderID = orderNumber
	payload.TransactionDetails.GrossAmount = grossAmount

	body, err := json.Marshal(payload)
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.SetBasicAuth(c.serverKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("payment session request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return Session{}, fmt.Errorf("payment session request failed: status %d", res.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("payment session request failed: %w", err)
	}
	if session.Token == "" {
		return Session{}, fmt.Errorf("payment session request failed: empty token")
	}
	return session, nil
}
