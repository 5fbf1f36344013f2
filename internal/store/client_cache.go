// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

const cachedItemPrefix = "item_"

// ItemCache keeps the last known server copy of every item in a
// [RecordStore], keyed by owner and identity, so the client can start
// offline. Items cached for one owner are never read back for another.
type ItemCache struct {
	records RecordStore
}

// NewItemCache constructs an [ItemCache] over records.
func NewItemCache(records RecordStore) *ItemCache {
	return &ItemCache{records: records}
}

// ownerPrefix is "item_<owner>_". The trailing separator keeps owner 1 from
// matching the records of owner 12.
func ownerPrefix(owner int64) string {
	return cachedItemPrefix + strconv.FormatInt(owner, 10) + "_"
}

// CacheItems writes every item of owner that has an identity. Items without
// one are skipped.
func (c *ItemCache) CacheItems(ctx context.Context, owner int64, items ...models.Item) error {
	prefix := ownerPrefix(owner)
	for _, item := range items {
		if !item.HasIdentity() {
			continue
		}

		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("error encoding item %s: %w", item.ID, err)
		}
		if err = c.records.Put(ctx, prefix+item.ID, payload); err != nil {
			return err
		}
	}
	return nil
}

// Evict drops the cached copy of owner's item with identity id.
func (c *ItemCache) Evict(ctx context.Context, owner int64, id string) error {
	return c.records.Delete(ctx, ownerPrefix(owner)+id)
}

// CachedItems reads back every item cached for owner in key order.
// Undecodable records are skipped.
func (c *ItemCache) CachedItems(ctx context.Context, owner int64) ([]models.Item, error) {
	prefix := ownerPrefix(owner)
	items := make([]models.Item, 0)
	for key, err := range c.records.Keys(ctx) {
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		value, err := c.records.Get(ctx, key)
		if err != nil {
			continue
		}

		var item models.Item
		if err = json.Unmarshal(value, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
