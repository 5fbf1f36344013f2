// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

func newMockRecordStore(t *testing.T) (RecordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRecordStore(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func TestSQLiteRecordStore_PutUpserts(t *testing.T) {
	s, mock := newMockRecordStore(t)

	mock.ExpectExec(`INSERT INTO records \(key,value,updated_at\) VALUES \(\?,\?,CURRENT_TIMESTAMP\) ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("save_0", []byte("{}")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Put(context.Background(), "save_0", []byte("{}")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRecordStore_PutError(t *testing.T) {
	s, mock := newMockRecordStore(t)

	mock.ExpectExec("INSERT INTO records").WillReturnError(errors.New("disk full"))

	err := s.Put(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteRecordStore_GetNotFound(t *testing.T) {
	s, mock := newMockRecordStore(t)

	mock.ExpectQuery(`SELECT value FROM records WHERE key = \?`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSQLiteRecordStore_DeleteError(t *testing.T) {
	s, mock := newMockRecordStore(t)

	mock.ExpectExec(`DELETE FROM records WHERE key = \?`).
		WithArgs("k").
		WillReturnError(errors.New("locked"))

	assert.ErrorIs(t, s.Delete(context.Background(), "k"), ErrExecutingStatement)
}

func TestSQLiteRecordStore_KeysQueryError(t *testing.T) {
	s, mock := newMockRecordStore(t)

	mock.ExpectQuery(`SELECT key FROM records ORDER BY key ASC LIMIT 64`).
		WillReturnError(errors.New("boom"))

	var errs []error
	for _, err := range s.Keys(context.Background()) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrExecutingQuery)
}
