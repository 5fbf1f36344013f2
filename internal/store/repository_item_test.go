// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

func newTestItemRepo(t *testing.T) (ItemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewItemRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows(itemColumns)
}

func TestItemRepository_CreateItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(`INSERT INTO items \(id,user_id,title,description,mark,recommended,date,photo,position,version\)`).
		WithArgs("i1", int64(7), "espresso", "", 8, true, "", sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnRows(itemRows().AddRow("i1", "espresso", "", 8, true, "", []byte(`{"filepath":"a.jpg"}`), nil, 1))

	created, err := repo.CreateItem(context.Background(), 7, models.Item{ID: "i1", Title: "espresso", Mark: 8, Recommended: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	require.NotNil(t, created.Photo)
	assert.Equal(t, "a.jpg", created.Photo.Filepath)
	assert.Nil(t, created.Position)
}

func TestItemRepository_CreateItemDuplicate(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("INSERT INTO items").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateItem(context.Background(), 7, models.Item{ID: "i1"})
	assert.ErrorIs(t, err, ErrItemAlreadyExists)
}

func TestItemRepository_UpdateItemChecksVersion(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(`UPDATE items SET .* version = version \+ 1, updated_at = NOW\(\) WHERE id = \$8 AND user_id = \$9 AND version = \$10 RETURNING`).
		WithArgs("latte", "", 5, false, "", sqlmock.AnyArg(), sqlmock.AnyArg(), "i1", int64(7), int64(2)).
		WillReturnRows(itemRows().AddRow("i1", "latte", "", 5, false, "", nil, nil, 3))

	updated, err := repo.UpdateItem(context.Background(), 7, models.Item{ID: "i1", Title: "latte", Mark: 5, Version: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateItemConflict(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("UPDATE items").WillReturnRows(itemRows())
	mock.ExpectQuery(`SELECT id, title, description, mark, recommended, date, photo, position, version FROM items WHERE id = \$1 AND user_id = \$2`).
		WithArgs("i1", int64(7)).
		WillReturnRows(itemRows().AddRow("i1", "latte", "", 5, false, "", nil, nil, 4))

	_, err := repo.UpdateItem(context.Background(), 7, models.Item{ID: "i1", Version: 2})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestItemRepository_UpdateItemMissing(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("UPDATE items").WillReturnRows(itemRows())
	mock.ExpectQuery("SELECT id").WillReturnRows(itemRows())

	_, err := repo.UpdateItem(context.Background(), 7, models.Item{ID: "i1", Version: 2})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_DeleteItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec(`DELETE FROM items WHERE id = \$1 AND user_id = \$2`).
		WithArgs("i1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM items").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM items").
		WillReturnError(errors.New("broken pipe"))

	require.NoError(t, repo.DeleteItem(context.Background(), 7, "i1"))
	assert.ErrorIs(t, repo.DeleteItem(context.Background(), 7, "i1"), ErrItemNotFound)
	assert.ErrorIs(t, repo.DeleteItem(context.Background(), 7, "i1"), ErrExecutingStatement)
}

func TestItemRepository_ListItems(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(`SELECT .* FROM items WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 15 OFFSET 30`).
		WithArgs(int64(7)).
		WillReturnRows(itemRows().
			AddRow("i2", "b", "", 1, false, "", nil, []byte(`{"coords":{"latitude":1.5,"longitude":2.5}}`), 1).
			AddRow("i1", "a", "", 9, true, "", nil, nil, 2))

	items, err := repo.ListItems(context.Background(), 7, 30, 15)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "i2", items[0].ID)
	require.NotNil(t, items[0].Position)
	assert.InDelta(t, 1.5, items[0].Position.Coords.Latitude, 1e-9)
}

func TestItemRepository_ListItemsScanError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(itemRows().AddRow("i1", "a", "", 1, false, "", []byte(`{broken`), nil, 1))

	_, err := repo.ListItems(context.Background(), 7, 0, 0)
	assert.ErrorIs(t, err, ErrScanningRow)
}
