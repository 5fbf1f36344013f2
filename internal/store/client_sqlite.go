// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

const (
	recordsTable = "records"

	// keysBatchSize is how many keys one round trip of a Keys scan fetches.
	keysBatchSize = 64
)

// sqliteRecordStore is the SQLite-backed [RecordStore] used by the client.
type sqliteRecordStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteRecordStore constructs a [RecordStore] over the "records" table.
func NewSQLiteRecordStore(db *DB, logger *logger.Logger) RecordStore {
	logger.Debug().Msg("creating sqlite record store")
	return &sqliteRecordStore{db: db, logger: logger}
}

func (s *sqliteRecordStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRecordStore.Put").Str("key", key).Msg("failed to put record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteRecordStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRecordStore.Get").Str("key", key).Msg("failed to get record")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteRecordStore) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRecordStore.Delete").Str("key", key).Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Keys pages through the table by key so that no result set stays open
// while the caller handles a yielded key. The caller may therefore Put or
// Delete from inside the loop.
func (s *sqliteRecordStore) Keys(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		after := ""
		first := true

		for {
			batch, err := s.keysAfter(ctx, after, first)
			if err != nil {
				yield("", err)
				return
			}

			for _, key := range batch {
				if !yield(key, nil) {
					return
				}
			}

			if len(batch) < keysBatchSize {
				return
			}
			after = batch[len(batch)-1]
			first = false
		}
	}
}

func (s *sqliteRecordStore) keysAfter(ctx context.Context, after string, first bool) ([]string, error) {
	builder := sq.Select("key").
		From(recordsTable).
		OrderBy("key ASC").
		Limit(keysBatchSize)
	if !first {
		builder = builder.Where(sq.Gt{"key": after})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRecordStore.Keys").Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, keysBatchSize)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
