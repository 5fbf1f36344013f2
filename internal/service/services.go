// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/internal/utils"
)

// Services groups the server services.
type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
	PushHub        *PushHub
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hub := NewPushHub(logger.Component("push"))
	items := NewItemService(storages.ItemRepository, utils.NewUUIDGenerator(), hub, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ItemService:    NewItemValidationService().Wrap(items),
		AppInfoService: appInfo,
		PushHub:        hub,
	}, nil
}
