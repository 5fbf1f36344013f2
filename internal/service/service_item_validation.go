// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/internal/validators"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// ItemValidationService validates input before delegating to the wrapped
// ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{validator: validators.NewItemValidator()}
}

// Wrap implements [ItemServiceWrapper].
func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) CreateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	if userID <= 0 {
		return models.Item{}, ErrNoUserID
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateItem(ctx, userID, item)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	if userID <= 0 {
		return models.Item{}, ErrNoUserID
	}
	if err := v.validator.Validate(ctx, item, validators.FieldID); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateItem(ctx, userID, item)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrNoUserID
	}
	if err := v.validator.Validate(ctx, models.Item{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteItem(ctx, userID, id)
}

func (v *ItemValidationService) ListItems(ctx context.Context, userID int64, offset, limit uint64) ([]models.Item, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return v.inner.ListItems(ctx, userID, offset, limit)
}
