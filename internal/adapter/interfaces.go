// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client engine and
// the coffee lobby server.
//
// [ServerAdapter] hides the protocol from the service layer. The package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]) whose push channel runs
// over a websocket.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrVersionConflict]
// for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the coffee lobby server.
// Client-local item fields are stripped before anything leaves the device.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests and to the push channel authorization frame.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates user and stores the issued token. The returned
	// token carries the owner ID parsed from its subject.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Create persists an item that has no identity yet and returns the
	// server's copy carrying the assigned ID.
	Create(ctx context.Context, item models.Item) (models.Item, error)

	// Update overwrites an existing item. Returns [ErrVersionConflict]
	// (wrapped) when the server rejects a stale version.
	Update(ctx context.Context, item models.Item) (models.Item, error)

	// Delete removes an item by its identity.
	Delete(ctx context.Context, item models.Item) error

	// List returns every item owned by owner, most recently created first.
	List(ctx context.Context, owner int64) ([]models.Item, error)

	// OpenPushChannel dials the push channel and calls onEvent for every
	// created/updated/deleted message until the returned close function is
	// called or the connection drops. close is safe to call more than once.
	OpenPushChannel(ctx context.Context, owner int64, onEvent func(models.PushEvent)) (func(), error)

	// Ping reports whether the server is reachable.
	Ping(ctx context.Context) error
}
