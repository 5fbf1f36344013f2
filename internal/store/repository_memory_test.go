// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	created, err := repo.CreateUser(ctx, models.User{Login: "ann", Password: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	_, err = repo.CreateUser(ctx, models.User{Login: "ann"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := repo.FindUserByLogin(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)

	_, err = repo.FindUserByLogin(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryItemRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	created, err := repo.CreateItem(ctx, 1, models.Item{ID: "a", Title: "espresso", AcquiredAt: 99})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.Zero(t, created.AcquiredAt)

	_, err = repo.CreateItem(ctx, 1, models.Item{ID: "a"})
	assert.ErrorIs(t, err, ErrItemAlreadyExists)

	updated, err := repo.UpdateItem(ctx, 1, models.Item{ID: "a", Title: "ristretto", Version: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = repo.UpdateItem(ctx, 1, models.Item{ID: "a", Title: "stale", Version: 1})
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = repo.UpdateItem(ctx, 2, models.Item{ID: "a"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	got, err := repo.GetItem(ctx, 1, "a")
	require.NoError(t, err)
	assert.Equal(t, "ristretto", got.Title)

	assert.ErrorIs(t, repo.DeleteItem(ctx, 2, "a"), ErrItemNotFound)
	require.NoError(t, repo.DeleteItem(ctx, 1, "a"))
	_, err = repo.GetItem(ctx, 1, "a")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMemoryItemRepository_ListNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	for i := range 5 {
		_, err := repo.CreateItem(ctx, 1, models.Item{ID: fmt.Sprintf("i%d", i)})
		require.NoError(t, err)
	}
	_, err := repo.CreateItem(ctx, 2, models.Item{ID: "other"})
	require.NoError(t, err)

	all, err := repo.ListItems(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "i4", all[0].ID)

	page, err := repo.ListItems(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "i2", page[0].ID)
	assert.Equal(t, "i1", page[1].ID)
}
