// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

// NewStorages connects the server repositories. The DSN [MemoryDSN] keeps
// everything in process memory; anything else is a PostgreSQL DSN.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		logger.Warn().Msg("using in-memory storages, data is lost on restart")
		return &Storages{
			UserRepository: NewMemoryUserRepository(),
			ItemRepository: NewMemoryItemRepository(),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
		db:             db,
	}, nil
}
