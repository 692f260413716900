// Package payments owns the paid path: creating gateway orders at
// server-priced amounts, verifying payment signatures, and minting license
// keys for verified purchases.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const razorpayOrdersURL = "https://api.razorpay.com/v1/orders"

// httpClient is the subset of http.Client the gateway needs; tests substitute
// a fake transport.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Gateway creates orders with the payment provider.
type Gateway interface {
	// CreateOrder registers an order for the smallest-unit amount and
	// returns the provider's order id.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
}

// RazorpayGateway talks to the Razorpay orders API with basic auth.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    httpClient
}

// NewRazorpayGateway builds the production gateway.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayOrdersURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(razorpayOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal order request: %v", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build order request: %v", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("razorpay request failed: %v", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("razorpay returned status %v: %v", resp.StatusCode, string(b))
	}

	var parsed razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode razorpay response: %v", err.Error())
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("razorpay returned an order with no id")
	}
	return parsed.ID, nil
}
