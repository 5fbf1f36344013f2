// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// ViewPageSize is the number of rows the list view reveals per step.
const ViewPageSize = 15

// ItemQuery narrows the collection shown in the list view.
type ItemQuery struct {
	// Search matches a case-insensitive substring of the title.
	Search string
	// SpecialityOnly keeps items rated above [models.SpecialityMark].
	SpecialityOnly bool
	// Limit caps the result. Zero means no cap.
	Limit int
}

// FilterItems returns the items matching q in collection order.
func FilterItems(items []models.Item, q ItemQuery) []models.Item {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if q.SpecialityOnly && !item.IsSpeciality() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Title), needle) {
			continue
		}
		filtered = append(filtered, item)
		if q.Limit > 0 && len(filtered) == q.Limit {
			break
		}
	}
	return filtered
}
