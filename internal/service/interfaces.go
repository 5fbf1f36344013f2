// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// Client side: the reconciliation [Engine] that keeps the item collection in
// step with the server and the offline intent queue, the [ConflictSurface]
// for replay failures, list filtering and the sign-in flow.
//
// Server side: account and token handling ([AuthService]), item persistence
// with optimistic versioning ([ItemService]) and the per-user push hub.
package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemServiceWrapper

// ItemService manages the items of one user at a time. Every successful
// mutation is published to that user's push subscribers.
type ItemService interface {
	CreateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, userID int64, id string) error
	ListItems(ctx context.Context, userID int64, offset, limit uint64) ([]models.Item, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PushPublisher fans item events out to the push channels of a user.
type PushPublisher interface {
	Publish(userID int64, event models.PushEvent)
}

// PushSubscriber registers a push channel of a user.
type PushSubscriber interface {
	Subscribe(userID int64) (<-chan models.PushEvent, func())
}

// ItemServiceWrapper decorates an ItemService, e.g. with validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// IDGenerator issues item identities.
type IDGenerator interface {
	Generate() string
}
