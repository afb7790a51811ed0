// Package razorpay is a minimal REST client for the two gateway calls the
// reservation flow needs: creating an order and fetching a captured
// payment. Amounts cross the wire in paise (hundredths of a rupee).
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrNotConfigured = errors.New("razorpay credentials are not configured")

type Client struct {
	keyID   string
	secret  string
	baseURL string
	http    *http.Client
}

func New(keyID, secret, baseURL string) *Client {
	return &Client{
		keyID:   keyID,
		secret:  secret,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// KeyID is the publishable half of the credentials; the checkout widget
// needs it client-side.
func (c *Client) KeyID() string { return c.keyID }

// Order is the gateway-side payment order a client checks out against.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is the gateway's record of a client-side payment attempt.
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

// Captured reports whether the money actually moved.
func (p Payment) Captured() bool { return p.Status == "captured" }

// CreateOrder registers a payment order for amountMinor paise.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error) {
	if c.keyID == "" || c.secret == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, err
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", bytes.NewReader(body), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchPayment reads the payment back from the gateway. Confirmation
// trusts this response, never the client-supplied fields.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if c.keyID == "" || c.secret == "" {
		return nil, ErrNotConfigured
	}

	var p Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("razorpay %s %s: status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	return json.Unmarshal(raw, out)
}
