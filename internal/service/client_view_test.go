// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

func TestFilterItems(t *testing.T) {
	items := []models.Item{
		{ID: "e", Title: "Ethiopia Yirgacheffe", Mark: 9},
		{ID: "d", Title: "House espresso", Mark: 5},
		{ID: "c", Title: "Espresso Romano", Mark: 7},
		{ID: "b", Title: "Decaf", Mark: 6},
		{ID: "a", Title: "Kenya AA", Mark: 8},
	}

	tests := []struct {
		name  string
		query ItemQuery
		want  []string
	}{
		{name: "everything", query: ItemQuery{}, want: []string{"e", "d", "c", "b", "a"}},
		{name: "search ignores case", query: ItemQuery{Search: "  ESPRESSO "}, want: []string{"d", "c"}},
		{name: "speciality is above six", query: ItemQuery{SpecialityOnly: true}, want: []string{"e", "c", "a"}},
		{name: "search and speciality", query: ItemQuery{Search: "espresso", SpecialityOnly: true}, want: []string{"c"}},
		{name: "limit", query: ItemQuery{Limit: 2}, want: []string{"e", "d"}},
		{name: "no match", query: ItemQuery{Search: "chicory"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemIDs(FilterItems(items, tt.query)))
		})
	}
}

func TestEngineState_Transitions(t *testing.T) {
	state := models.ItemsState{Items: []models.Item{{PendingKey: "save_0", Title: "Cortado"}, {ID: "a"}}}

	replacePlaceholder(&state, "save_0", models.Item{ID: "b", Title: "Cortado"})
	assert.Equal(t, []string{"b", "a"}, itemIDs(state.Items))

	replacePlaceholder(&state, "save_9", models.Item{ID: "c"})
	assert.Equal(t, []string{"c", "b", "a"}, itemIDs(state.Items))

	upsertItem(&state, models.Item{ID: "b", Title: "Cortado doble"})
	assert.Equal(t, "Cortado doble", state.Items[1].Title)

	removeItem(&state, models.Item{ID: "c"})
	assert.Equal(t, []string{"b", "a"}, itemIDs(state.Items))
}

func TestStampAcquired_CopiesItems(t *testing.T) {
	items := []models.Item{{ID: "a"}, {ID: "b"}}

	stamped := stampAcquired(items, 42)
	state := models.ItemsState{Items: slices.Clone(stamped)}
	upsertItem(&state, models.Item{ID: "a", Title: "changed"})

	assert.Zero(t, items[0].AcquiredAt)
	assert.Equal(t, int64(42), stamped[0].AcquiredAt)
	assert.Empty(t, stamped[0].Title, "state changes never reach the slice handed to the cache")
}
