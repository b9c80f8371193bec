// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

type httpWalletAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPWalletAdapter constructs a [WalletAdapter] for the server at
// address. A missing scheme defaults to http. A non-positive timeout falls
// back to 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPWalletAdapter(address string, timeout time.Duration) (WalletAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpWalletAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpWalletAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpWalletAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpWalletAdapter) SignUp(ctx context.Context, req models.SignUpRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/sign-up")
	if err != nil {
		return fmt.Errorf("sign-up request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpWalletAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/sign-in")
	if err != nil {
		return models.SignInResponse{}, fmt.Errorf("sign-in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignInResponse{}, err
	}

	var signIn models.SignInResponse
	if err = json.Unmarshal(resp.Body(), &signIn); err != nil {
		return models.SignInResponse{}, fmt.Errorf("decode sign-in response: %w", err)
	}

	h.SetToken(signIn.Token)
	return signIn, nil
}

func (h *httpWalletAdapter) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/transactions")
	if err != nil {
		return fmt.Errorf("create transaction request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpWalletAdapter) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := h.authedRequest(ctx).Get("/transactions")
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err = json.Unmarshal(resp.Body(), &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return transactions, nil
}

func (h *httpWalletAdapter) UpdateTransaction(ctx context.Context, req models.UpdateTransactionRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/transactions")
	if err != nil {
		return fmt.Errorf("update transaction request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteTransaction sends id in the "id" header, as the server expects.
func (h *httpWalletAdapter) DeleteTransaction(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("id", id).
		Delete("/transactions")
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpWalletAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpWalletAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
