// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

func validItem() models.Item {
	return models.Item{
		Title:       "Espresso",
		Description: "dark chocolate",
		Mark:        8,
		Photo:       &models.Photo{Filepath: "1.jpeg"},
		Position:    &models.Position{Coords: models.Coordinates{Latitude: 41.3, Longitude: 69.2}},
	}
}

func TestItemValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Item)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Item) {}},
		{name: "valid without optionals", mutate: func(i *models.Item) { i.Photo, i.Position = nil, nil }},
		{name: "blank title", mutate: func(i *models.Item) { i.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "long title", mutate: func(i *models.Item) { i.Title = string(make([]rune, MaxTitleLength+1)) + "x" }, wantErr: ErrTitleTooLong},
		{name: "mark too high", mutate: func(i *models.Item) { i.Mark = 11 }, wantErr: ErrInvalidMark},
		{name: "negative mark", mutate: func(i *models.Item) { i.Mark = -1 }, wantErr: ErrInvalidMark},
		{name: "photo without path", mutate: func(i *models.Item) { i.Photo = &models.Photo{} }, wantErr: ErrInvalidPhoto},
		{name: "latitude out of range", mutate: func(i *models.Item) { i.Position.Coords.Latitude = 91 }, wantErr: ErrInvalidPosition},
		{name: "negative version", mutate: func(i *models.Item) { i.Version = -1 }, wantErr: ErrInvalidVersion},
		{name: "id checked only on request", mutate: func(i *models.Item) { i.ID = "nope" }, fields: []string{FieldID}, wantErr: ErrInvalidItemID},
		{name: "valid id", mutate: func(i *models.Item) { i.ID = "0190b3d6-7a3e-7cc4-9a55-6f7e9d1c2b3a" }, fields: []string{FieldID}},
		{name: "scoped fields skip others", mutate: func(i *models.Item) { i.Title = "" }, fields: []string{FieldMark}},
		{name: "unknown field", mutate: func(*models.Item) {}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	v := NewItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := v.Validate(context.Background(), item, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidator_PointerAndUnsupported(t *testing.T) {
	v := NewItemValidator()
	item := validItem()

	assert.NoError(t, v.Validate(context.Background(), &item))
	assert.ErrorIs(t, v.Validate(context.Background(), "item"), ErrUnsupportedType)
}

func TestCredentialsValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "valid", user: models.User{Login: "alice", Password: "pw"}},
		{name: "empty login", user: models.User{Password: "pw"}, wantErr: ErrEmptyLogin},
		{name: "login with space", user: models.User{Login: "al ice", Password: "pw"}, wantErr: ErrInvalidLogin},
		{name: "empty password", user: models.User{Login: "alice"}, wantErr: ErrEmptyPassword},
	}

	v := NewCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
