// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IntentQueue is the durable queue of offline mutations the engine writes to
// while disconnected and drains on reconnect.
type IntentQueue interface {
	// Enqueue persists a new intent of kind for item.
	Enqueue(ctx context.Context, kind models.IntentKind, item models.Item) (models.PendingIntent, error)

	// Restore writes a serialised item back under an intent key.
	Restore(ctx context.Context, key string, payload []byte) error

	// Remove deletes the intent stored under key.
	Remove(ctx context.Context, key string) error

	// Intents enumerates pending intents in store key order.
	Intents(ctx context.Context) iter.Seq2[models.PendingIntent, error]
}

// ItemCacher keeps the last known server copy of each item on the device,
// separately for every owner.
type ItemCacher interface {
	CacheItems(ctx context.Context, owner int64, items ...models.Item) error
	Evict(ctx context.Context, owner int64, id string) error
	CachedItems(ctx context.Context, owner int64) ([]models.Item, error)
}

// ConflictPresenter receives replay failures that need a user decision.
type ConflictPresenter interface {
	Present(ctx context.Context, conflict models.ConflictContext)
}

// Clock supplies the time used for acquiredAt stamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SessionKeeper persists the session across restarts.
type SessionKeeper interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// SessionSetter is the part of the engine the auth service drives.
type SessionSetter interface {
	SetSession(ctx context.Context, session models.Session) error
}

// ClientAuthService signs the user in against the server and starts the
// engine session.
type ClientAuthService interface {
	// Register creates an account and starts a session for it.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates and starts a session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Restore resumes the session saved by the last login, if any.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the saved session and resets the engine.
	Logout(ctx context.Context) error
}
