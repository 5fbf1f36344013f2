// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

// MemoryDSN selects the in-memory record store instead of SQLite.
const MemoryDSN = "memory"

// ClientStorages groups the client-side stores. All of them share one
// [RecordStore].
type ClientStorages struct {
	Records  RecordStore
	Intents  *IntentStore
	Cache    *ItemCache
	Sessions *SessionStore

	db *DB
}

// NewClientStorages opens the record store named by cfg.DB.DSN and wires
// the typed stores over it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return newClientStorages(NewMemoryRecordStore(), nil, logger), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return newClientStorages(NewSQLiteRecordStore(db, logger), db, logger), nil
}

func newClientStorages(records RecordStore, db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Records:  records,
		Intents:  NewIntentStore(records, logger),
		Cache:    NewItemCache(records),
		Sessions: NewSessionStore(records),
		db:       db,
	}
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
