// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// The functions below are the pure state transitions applied by the engine
// loop. None of them perform I/O.

// upsertItem replaces the entry matching item in place, or prepends item
// when no entry matches.
func upsertItem(state *models.ItemsState, item models.Item) {
	if i := state.IndexOf(item); i >= 0 {
		state.Items[i] = item
		return
	}
	state.Items = slices.Insert(state.Items, 0, item)
}

// replacePlaceholder swaps the offline placeholder created for pendingKey
// with the server copy. Without a placeholder the item is upserted.
func replacePlaceholder(state *models.ItemsState, pendingKey string, item models.Item) {
	placeholder := models.Item{PendingKey: pendingKey}
	if i := state.IndexOf(placeholder); i >= 0 {
		state.Items[i] = item
		return
	}
	upsertItem(state, item)
}

// removeItem drops every entry matching item.
func removeItem(state *models.ItemsState, item models.Item) {
	state.Items = slices.DeleteFunc(state.Items, item.SameAs)
}

// stampAcquired sets acquiredAt on every item.
func stampAcquired(items []models.Item, now int64) []models.Item {
	stamped := make([]models.Item, len(items))
	for i, item := range items {
		item.AcquiredAt = now
		stamped[i] = item
	}
	return stamped
}

// newestFirst orders cached items by descending identity. Server identities
// are time-ordered, so this approximates most-recently-created first.
func newestFirst(items []models.Item) []models.Item {
	slices.SortFunc(items, func(a, b models.Item) int {
		return strings.Compare(b.ID, a.ID)
	})
	return items
}
