// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const itemsTable = "items"

var itemColumns = []string{
	"id", "title", "description", "mark", "recommended", "date", "photo", "position", "version",
}

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{DB: db, logger: logger}
}

func scanItem(row interface{ Scan(...any) error }, item *models.Item) error {
	return row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Mark,
		&item.Recommended,
		&item.Date,
		jsonColumn[models.Photo]{V: &item.Photo},
		jsonColumn[models.Position]{V: &item.Position},
		&item.Version,
	)
}

func (r *itemRepository) CreateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(itemsTable).
		Columns("id", "user_id", "title", "description", "mark", "recommended", "date", "photo", "position", "version").
		Values(item.ID, userID, item.Title, item.Description, item.Mark, item.Recommended, item.Date,
			jsonColumn[models.Photo]{V: &item.Photo}, jsonColumn[models.Position]{V: &item.Position}, 1).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Item
	err = withRetry(ctx, r.errorClassificator, func() error {
		return scanItem(r.QueryRowContext(ctx, query, args...), &created)
	})
	if err != nil {
		log.Err(err).Str("func", "itemRepository.CreateItem").Int64("user_id", userID).Str("id", item.ID).Msg("failed to create item")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Item{}, ErrItemAlreadyExists
		}
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, userID int64, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	where := sq.Eq{"id": item.ID, "user_id": userID}
	if item.Version != 0 {
		where["version"] = item.Version
	}

	query, args, err := psql.Update(itemsTable).
		Set("title", item.Title).
		Set("description", item.Description).
		Set("mark", item.Mark).
		Set("recommended", item.Recommended).
		Set("date", item.Date).
		Set("photo", jsonColumn[models.Photo]{V: &item.Photo}).
		Set("position", jsonColumn[models.Position]{V: &item.Position}).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(where).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Item
	err = withRetry(ctx, r.errorClassificator, func() error {
		return scanItem(r.QueryRowContext(ctx, query, args...), &updated)
	})
	if errors.Is(err, sql.ErrNoRows) {
		// either the item is gone or its version moved on
		if _, getErr := r.GetItem(ctx, userID, item.ID); getErr != nil {
			return models.Item{}, getErr
		}
		log.Info().Str("func", "itemRepository.UpdateItem").Str("id", item.ID).Int64("version", item.Version).Msg("version conflict")
		return models.Item{}, ErrVersionConflict
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Int64("user_id", userID).Str("id", item.ID).Msg("failed to update item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, userID int64, id string) error {
	query, args, err := psql.Delete(itemsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = withRetry(ctx, r.errorClassificator, func() (execErr error) {
		res, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) GetItem(ctx context.Context, userID int64, id string) (models.Item, error) {
	query, args, err := psql.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	err = withRetry(ctx, r.errorClassificator, func() error {
		return scanItem(r.QueryRowContext(ctx, query, args...), &item)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, userID int64, offset, limit uint64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if offset > 0 {
		builder = builder.Offset(offset)
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListItems").Int64("user_id", userID).Msg("failed to list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = scanItem(rows, &item); err != nil {
			log.Err(err).Str("func", "itemRepository.ListItems").Int64("user_id", userID).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
