// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type itemService struct {
	repository store.ItemRepository
	ids        IDGenerator
	push       PushPublisher

	logger *logger.Logger
}

// NewItemService constructs the server item service. Successful mutations
// are published through push.
func NewItemService(repository store.ItemRepository, ids IDGenerator, push PushPublisher, logger *logger.Logger) ItemService {
	return &itemService{repository: repository, ids: ids, push: push, logger: logger}
}

// CreateItem assigns a fresh identity, stores the item at version 1 and
// publishes a created event. Client-local fields are dropped.
func (s *itemService) CreateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	item = item.ForRemote()
	item.ID = s.ids.Generate()

	created, err := s.repository.CreateItem(ctx, userID, item)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}

	s.push.Publish(userID, models.PushEvent{Type: models.PushCreated, Payload: created})
	return created, nil
}

// UpdateItem overwrites the item. A non-zero Version must match the stored
// one, otherwise ErrVersionConflict.
func (s *itemService) UpdateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	updated, err := s.repository.UpdateItem(ctx, userID, item.ForRemote())
	if errors.Is(err, store.ErrVersionConflict) {
		log.Info().Str("id", item.ID).Int64("version", item.Version).Msg("stale item version")
		return models.Item{}, ErrVersionConflict
	}
	if errors.Is(err, store.ErrItemNotFound) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("id", item.ID).Msg("item update failed")
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}

	s.push.Publish(userID, models.PushEvent{Type: models.PushUpdated, Payload: updated})
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, userID int64, id string) error {
	err := s.repository.DeleteItem(ctx, userID, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("item deletion failed")
		return fmt.Errorf("item deletion failed: %w", err)
	}

	s.push.Publish(userID, models.PushEvent{Type: models.PushDeleted, Payload: models.Item{ID: id}})
	return nil
}

func (s *itemService) ListItems(ctx context.Context, userID int64, offset, limit uint64) ([]models.Item, error) {
	items, err := s.repository.ListItems(ctx, userID, offset, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}
	return items, nil
}
