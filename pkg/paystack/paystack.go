// Package paystack is a thin typed client for the Paystack transaction API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// Client talks to the Paystack REST API using a secret key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// Config holds Paystack connection details. BaseURL is optional and exists so
// tests can point the client at a stub server.
type Config struct {
	SecretKey string
	BaseURL   string
}

// NewClient creates a new Paystack client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: cfg.SecretKey,
	}
}

// InitializeResult is the useful part of a transaction/initialize response.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResult is the useful part of a transaction/verify response. Status is
// Paystack's own value: "success", "failed" or "abandoned".
type VerifyResult struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // kobo
}

// Bank is one entry from the bank list endpoint.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Slug string `json:"slug"`
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializeTransaction requests a hosted payment session. amountKobo is the
// charge in kobo (Naira x 100); reference must be unique per order.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amountKobo int64, reference string) (*InitializeResult, error) {
	payload := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal initialize payload: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result InitializeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	return &result, nil
}

// VerifyTransaction looks up the outcome of a transaction by reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var result VerifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	return &result, nil
}

// ListBanks returns the Nigerian bank list used for seller payout setup.
func (c *Client) ListBanks(ctx context.Context) ([]Bank, error) {
	data, err := c.do(ctx, http.MethodGet, "/bank?country=nigeria", nil)
	if err != nil {
		return nil, err
	}

	var banks []Bank
	if err := json.Unmarshal(data, &banks); err != nil {
		return nil, fmt.Errorf("decode bank list: %w", err)
	}
	return banks, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paystack error %d: %s", resp.StatusCode, string(b))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode paystack response: %w", err)
	}
	if !env.Status {
		return nil, fmt.Errorf("paystack request rejected: %s", env.Message)
	}
	return env.Data, nil
}
