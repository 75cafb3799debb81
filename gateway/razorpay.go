// Package gateway talks to the Razorpay REST API: creating a payment order
// before redirecting the customer, and verifying the signature Razorpay sends
// back with the payment callback.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meetchovatiya27/ecommarce-website/config"
)

type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// KeyID is exposed so checkout responses can hand it to the client-side
// payment widget.
func (c *Client) KeyID() string { return c.keyID }

type orderRequest struct {
	Amount         int64  `json:"amount"` // minor units (paise)
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder registers a payment order for amount (in minor units) and
// returns the gateway order id. Capture is immediate.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	payload := orderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach razorpay: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var out orderResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse razorpay response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("razorpay error: %s", out.Error.Description)
	}
	if out.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}
	return out.ID, nil
}

// VerifySignature checks the callback signature: HMAC-SHA256 over
// "<order_id>|<payment_id>" keyed with the shared secret, hex encoded.
// This is the sole proof that a success callback came from the gateway.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
