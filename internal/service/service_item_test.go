// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/mock"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	push := mock.NewMockPushPublisher(ctrl)
	svc := NewItemService(repo, ids, push, logger.Nop())

	created := models.Item{ID: "0199f0c2-7a55-7c3e-9d40-2b8a6f1e0c11", Title: "Espresso", Version: 1}
	gomock.InOrder(
		ids.EXPECT().Generate().Return(created.ID),
		repo.EXPECT().CreateItem(ctx, int64(3), models.Item{ID: created.ID, Title: "Espresso"}).Return(created, nil),
		push.EXPECT().Publish(int64(3), models.PushEvent{Type: models.PushCreated, Payload: created}),
	)

	got, err := svc.CreateItem(ctx, 3, models.Item{Title: "Espresso", AcquiredAt: 100, PendingKey: "save_0"})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		push := mock.NewMockPushPublisher(ctrl)
		svc := NewItemService(repo, mock.NewMockIDGenerator(ctrl), push, logger.Nop())

		updated := models.Item{ID: "a", Title: "Doppio", Version: 3}
		repo.EXPECT().UpdateItem(ctx, int64(3), models.Item{ID: "a", Title: "Doppio", Version: 2}).Return(updated, nil)
		push.EXPECT().Publish(int64(3), models.PushEvent{Type: models.PushUpdated, Payload: updated})

		got, err := svc.UpdateItem(ctx, 3, models.Item{ID: "a", Title: "Doppio", Version: 2, AcquiredAt: 5})
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	for name, tc := range map[string]struct {
		repoErr error
		want    error
	}{
		"stale version": {repoErr: store.ErrVersionConflict, want: ErrVersionConflict},
		"missing item":  {repoErr: store.ErrItemNotFound, want: ErrItemNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockItemRepository(ctrl)
			svc := NewItemService(repo, mock.NewMockIDGenerator(ctrl), mock.NewMockPushPublisher(ctrl), logger.Nop())

			repo.EXPECT().UpdateItem(ctx, int64(3), gomock.Any()).Return(models.Item{}, tc.repoErr)

			_, err := svc.UpdateItem(ctx, 3, models.Item{ID: "a", Version: 1})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestItemService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	push := mock.NewMockPushPublisher(ctrl)
	svc := NewItemService(repo, mock.NewMockIDGenerator(ctrl), push, logger.Nop())

	repo.EXPECT().DeleteItem(ctx, int64(3), "a").Return(nil)
	push.EXPECT().Publish(int64(3), models.PushEvent{Type: models.PushDeleted, Payload: models.Item{ID: "a"}})
	require.NoError(t, svc.DeleteItem(ctx, 3, "a"))

	repo.EXPECT().DeleteItem(ctx, int64(3), "b").Return(store.ErrItemNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, 3, "b"), ErrItemNotFound)
}

func TestItemService_ListItems(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, mock.NewMockIDGenerator(ctrl), mock.NewMockPushPublisher(ctrl), logger.Nop())

	repo.EXPECT().ListItems(ctx, int64(3), uint64(15), uint64(15)).Return([]models.Item{{ID: "a"}}, nil)
	items, err := svc.ListItems(ctx, 3, 15, 15)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	repo.EXPECT().ListItems(ctx, int64(3), uint64(0), uint64(0)).Return(nil, errors.New("db down"))
	_, err = svc.ListItems(ctx, 3, 0, 0)
	assert.Error(t, err)
}

// The memory repository with a real hub exercises the whole server path.
func TestItemService_WithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	hub := NewPushHub(logger.Nop())
	events, unsubscribe := hub.Subscribe(1)
	defer unsubscribe()

	validation := NewItemValidationService()
	svc := validation.Wrap(NewItemService(store.NewMemoryItemRepository(), fixedIDs{"0199f0c2-7a55-7c3e-9d40-2b8a6f1e0c11"}, hub, logger.Nop()))

	created, err := svc.CreateItem(ctx, 1, models.Item{Title: "Espresso", Mark: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, models.PushCreated, (<-events).Type)

	created.Title = "Doppio"
	updated, err := svc.UpdateItem(ctx, 1, created)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, models.PushUpdated, (<-events).Type)

	// a second writer holding version 1 loses
	_, err = svc.UpdateItem(ctx, 1, created)
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = svc.UpdateItem(ctx, 2, updated)
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, svc.DeleteItem(ctx, 1, created.ID))
	deleted := <-events
	assert.Equal(t, models.PushDeleted, deleted.Type)
	assert.Equal(t, created.ID, deleted.Payload.ID)

	items, err := svc.ListItems(ctx, 1, 0, 15)
	require.NoError(t, err)
	assert.Empty(t, items)
}

type fixedIDs []string

func (f fixedIDs) Generate() string { return f[0] }
