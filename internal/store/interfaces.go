// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ItemRepository persists items on the server. Every method is scoped to
// the owning user; an item of another user behaves as absent.
type ItemRepository interface {
	// CreateItem stores a new item. The item must already carry its ID.
	// The stored item is returned with Version 1.
	CreateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error)
	// UpdateItem replaces the item and increments its version. A non-zero
	// item.Version must equal the stored one, else [ErrVersionConflict].
	UpdateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error)
	// DeleteItem removes the item or returns [ErrItemNotFound].
	DeleteItem(ctx context.Context, userID int64, id string) error
	// GetItem returns one item or [ErrItemNotFound].
	GetItem(ctx context.Context, userID int64, id string) (models.Item, error)
	// ListItems returns items newest first. A zero limit means no limit.
	ListItems(ctx context.Context, userID int64, offset, limit uint64) ([]models.Item, error)
}

// Storages groups the server repositories.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository

	db *DB
}

// Close releases the underlying database, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
