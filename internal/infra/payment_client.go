package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medicart-service/internal/domain"
)

// PaymentResult carries the gateway's answer. Business declines come back as
// Success=false with a message, never as an error.
type PaymentResult struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"paymentId"`
	FailureReason string `json:"failureReason,omitempty"`
}

type PaymentClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewPaymentClient(baseURL, apiKey string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	OrderNumber string `json:"orderNumber"`
}

func (c *PaymentClient) ProcessPayment(ctx context.Context, orderNumber string, amount domain.Money) (*PaymentResult, error) {
	return c.post(ctx, "/v1/charges", chargeRequest{
		Amount:      amount.Amount.StringFixed(3),
		Currency:    string(amount.Currency),
		OrderNumber: orderNumber,
	})
}

func (c *PaymentClient) ProcessRefund(ctx context.Context, paymentID string, amount domain.Money) (*PaymentResult, error) {
	body := struct {
		PaymentID string `json:"paymentId"`
		Amount    string `json:"amount"`
		Currency  string `json:"currency"`
	}{paymentID, amount.Amount.StringFixed(3), string(amount.Currency)}
	return c.post(ctx, "/v1/refunds", body)
}

func (c *PaymentClient) post(ctx context.Context, path string, payload any) (*PaymentResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var result PaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
