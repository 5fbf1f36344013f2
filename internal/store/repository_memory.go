// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// memoryUserRepository is an in-process [UserRepository].
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{nextID: 1, users: make(map[string]models.User)}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Login]; ok {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.Login] = user

	return user, nil
}

func (m *memoryUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[login]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

type memoryItem struct {
	owner int64
	seq   int64
	item  models.Item
}

// memoryItemRepository is an in-process [ItemRepository].
type memoryItemRepository struct {
	mu    sync.Mutex
	seq   int64
	items map[string]memoryItem
}

// NewMemoryItemRepository constructs an empty in-memory [ItemRepository].
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{items: make(map[string]memoryItem)}
}

func (m *memoryItemRepository) CreateItem(_ context.Context, userID int64, item models.Item) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; ok {
		return models.Item{}, ErrItemAlreadyExists
	}

	item = item.ForRemote()
	item.Version = 1
	m.seq++
	m.items[item.ID] = memoryItem{owner: userID, seq: m.seq, item: item}

	return item, nil
}

func (m *memoryItemRepository) UpdateItem(_ context.Context, userID int64, item models.Item) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[item.ID]
	if !ok || stored.owner != userID {
		return models.Item{}, ErrItemNotFound
	}
	if item.Version != 0 && item.Version != stored.item.Version {
		return models.Item{}, ErrVersionConflict
	}

	item = item.ForRemote()
	item.Version = stored.item.Version + 1
	stored.item = item
	m.items[item.ID] = stored

	return item, nil
}

func (m *memoryItemRepository) DeleteItem(_ context.Context, userID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[id]
	if !ok || stored.owner != userID {
		return ErrItemNotFound
	}
	delete(m.items, id)

	return nil
}

func (m *memoryItemRepository) GetItem(_ context.Context, userID int64, id string) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[id]
	if !ok || stored.owner != userID {
		return models.Item{}, ErrItemNotFound
	}
	return stored.item, nil
}

func (m *memoryItemRepository) ListItems(_ context.Context, userID int64, offset, limit uint64) ([]models.Item, error) {
	m.mu.Lock()
	owned := make([]memoryItem, 0, len(m.items))
	for _, stored := range m.items {
		if stored.owner == userID {
			owned = append(owned, stored)
		}
	}
	m.mu.Unlock()

	// newest first
	slices.SortFunc(owned, func(a, b memoryItem) int {
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		default:
			return 0
		}
	})

	items := make([]models.Item, 0, len(owned))
	for i, stored := range owned {
		if uint64(i) < offset {
			continue
		}
		if limit > 0 && uint64(len(items)) >= limit {
			break
		}
		items = append(items, stored.item)
	}

	return items, nil
}
