// Package payment wraps the card gateway. Without a secret key the
// client runs in demo mode and reports immediate success, which keeps
// checkout testable with no network.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type InitRequest struct {
	AmountMinor int64  `json:"amount"`
	Reference   string `json:"reference"`
	Email       string `json:"email"`
}

type Authorization struct {
	Success   bool
	Reference string
	AccessURL string
}

type Gateway interface {
	Initialize(ctx context.Context, req InitRequest) (*Authorization, error)
	Verify(ctx context.Context, reference string) (bool, error)
}

type PaystackClient struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewPaystack(secretKey, baseURL string) *PaystackClient {
	return &PaystackClient{
		SecretKey: secretKey,
		BaseURL:   baseURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *PaystackClient) demo() bool {
	return c.SecretKey == ""
}

func (c *PaystackClient) Initialize(ctx context.Context, req InitRequest) (*Authorization, error) {
	if c.demo() {
		return &Authorization{Success: true, Reference: req.Reference}, nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"amount":    req.AmountMinor,
		"reference": req.Reference,
		"email":     req.Email,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("paystack initialize: %w", err)
	}
	if !out.Status {
		return &Authorization{Success: false, Reference: req.Reference}, nil
	}
	return &Authorization{
		Success:   true,
		Reference: out.Data.Reference,
		AccessURL: out.Data.AuthorizationURL,
	}, nil
}

func (c *PaystackClient) Verify(ctx context.Context, reference string) (bool, error) {
	if c.demo() {
		return true, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("paystack verify: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("paystack verify: %w", err)
	}
	return out.Status && out.Data.Status == "success", nil
}
