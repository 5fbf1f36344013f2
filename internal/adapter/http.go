// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/utils"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const itemsPath = "/api/item"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		timeout: adapterCfg.RequestTimeout,
		logger:  log.Component("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register and takes the token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and takes the token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token subject: %w", err)
	}

	h.SetToken(signed)
	return models.Token{SignedString: signed, UserID: userID}, nil
}

// Create implements [ServerAdapter]. POST /api/item.
func (h *httpServerAdapter) Create(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item.ForRemote()).
		SetResult(&created).
		Post(itemsPath)
	if err != nil {
		return models.Item{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

// Update implements [ServerAdapter]. PUT /api/item/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, item models.Item) (models.Item, error) {
	if !item.HasIdentity() {
		return models.Item{}, ErrMissingIdentity
	}

	var updated models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item.ForRemote()).
		SetResult(&updated).
		Put(itemPath(item.ID))
	if err != nil {
		return models.Item{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return updated, nil
}

// Delete implements [ServerAdapter]. DELETE /api/item/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, item models.Item) error {
	if !item.HasIdentity() {
		return ErrMissingIdentity
	}

	resp, err := h.authedRequest(ctx).Delete(itemPath(item.ID))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// List implements [ServerAdapter]. owner is unused over HTTP: the server
// infers the user from the bearer token.
func (h *httpServerAdapter) List(ctx context.Context, owner int64) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.authedRequest(ctx).SetResult(&items).Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Ping implements [ServerAdapter]. GET /api/health.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func itemPath(id string) string {
	return itemsPath + "/" + url.PathEscape(id)
}
