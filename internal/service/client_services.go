// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
)

// ClientServices groups everything the client UI drives.
type ClientServices struct {
	Engine      *Engine
	Conflicts   *ConflictSurface
	AuthService ClientAuthService
	Prober      *network.Prober

	// ViewPageSize is the number of rows the list view reveals per step.
	ViewPageSize int
}

// NewClientServices wires the engine to the local stores, the server
// adapter and a connectivity prober that pings the server.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	prober := network.NewProber(serverAdapter, cfg.Workers.ConnectivityInterval, logger)
	conflicts := NewConflictSurface(storages.Intents, logger)

	engine := NewEngine(EngineDeps{
		Adapter:   serverAdapter,
		Intents:   storages.Intents,
		Cache:     storages.Cache,
		Monitor:   prober,
		Conflicts: conflicts,
		Clock:     SystemClock{},
		Logger:    logger,
	})

	return &ClientServices{
		Engine:       engine,
		Conflicts:    conflicts,
		AuthService:  NewClientAuthService(serverAdapter, storages.Sessions, engine, logger),
		Prober:       prober,
		ViewPageSize: cfg.Engine.PageSize,
	}
}
