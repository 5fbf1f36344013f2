// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldMark        = "mark"
	FieldPhoto       = "photo"
	FieldPosition    = "position"
	FieldVersion     = "version"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 4000
	MinMark              = 0
	MaxMark              = 10
)

// defaultItemFields is validated when no field is named. The identity is
// left out because a new item has none.
var defaultItemFields = []string{FieldTitle, FieldDescription, FieldMark, FieldPhoto, FieldPosition, FieldVersion}

// ItemValidator checks items received by the server.
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate accepts models.Item or *models.Item. Named fields restrict the
// checks; without them every field except the identity is checked.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(value, fields...)
	case *models.Item:
		return v.validateItem(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultItemFields
	}

	for _, field := range fields {
		if err := v.validateField(item, field); err != nil {
			return err
		}
	}
	return nil
}

func (v *ItemValidator) validateField(item models.Item, field string) error {
	switch field {
	case FieldID:
		if _, err := uuid.Parse(item.ID); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidItemID, item.ID)
		}
	case FieldTitle:
		title := strings.TrimSpace(item.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		if utf8.RuneCountInString(title) > MaxTitleLength {
			return ErrTitleTooLong
		}
	case FieldDescription:
		if utf8.RuneCountInString(item.Description) > MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
	case FieldMark:
		if item.Mark < MinMark || item.Mark > MaxMark {
			return fmt.Errorf("%w: %d", ErrInvalidMark, item.Mark)
		}
	case FieldPhoto:
		if item.Photo != nil && strings.TrimSpace(item.Photo.Filepath) == "" {
			return ErrInvalidPhoto
		}
	case FieldPosition:
		if item.Position == nil {
			return nil
		}
		c := item.Position.Coords
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 || c.Accuracy < 0 {
			return ErrInvalidPosition
		}
	case FieldVersion:
		if item.Version < 0 {
			return ErrInvalidVersion
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}
