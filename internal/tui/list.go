// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// listModel is the collection view. It reveals the filtered collection
// step rows at a time.
type listModel struct {
	search         textinput.Model
	searching      bool
	specialityOnly bool
	step           int
	limit          int
	idx            int
	spinner        spinner.Model
	status         string
}

// newListModel builds the view. A step of zero or less falls back to
// [service.ViewPageSize].
func newListModel(step int) listModel {
	if step <= 0 {
		step = service.ViewPageSize
	}
	search := textinput.New()
	search.Placeholder = "search by title"
	search.Width = 30

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return listModel{search: search, step: step, limit: step, spinner: s}
}

func (m listModel) query() service.ItemQuery {
	return service.ItemQuery{
		Search:         m.search.Value(),
		SpecialityOnly: m.specialityOnly,
		Limit:          m.limit,
	}
}

func (m listModel) visible(items []models.Item) []models.Item {
	return service.FilterItems(items, m.query())
}

func (m listModel) current(items []models.Item) (models.Item, bool) {
	visible := m.visible(items)
	if m.idx < 0 || m.idx >= len(visible) {
		return models.Item{}, false
	}
	return visible[m.idx], true
}

// resetPaging shows the first page again after the query changed.
func (m listModel) resetPaging() listModel {
	m.limit = m.step
	m.idx = 0
	return m
}

// clamp keeps the cursor inside the visible rows.
func (m listModel) clamp(items []models.Item) listModel {
	n := len(m.visible(items))
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

// showMore reveals one more step of the collection.
func (m listModel) showMore() listModel {
	m.limit += m.step
	return m
}

func (m listModel) View(state models.ItemsState, status string) string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: " + m.search.View() + "\n")
	}
	if m.specialityOnly {
		b.WriteString("Showing speciality only (mark > " + fmt.Sprint(models.SpecialityMark) + ")\n")
	}
	if m.searching || m.search.Value() != "" || m.specialityOnly {
		b.WriteString("\n")
	}

	visible := m.visible(state.Items)
	switch {
	case len(visible) == 0 && state.Fetching():
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(visible) == 0:
		b.WriteString("No coffee yet\n")
	default:
		for i, item := range visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + itemRow(item) + "\n")
		}
		if state.Fetching() {
			b.WriteString(m.spinner.View() + " refreshing...\n")
		}
	}

	if err := firstError(state); err != nil {
		b.WriteString("\n" + errorStyle.Render(humanizeError(err)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + status)

	return renderPage("COFFEE LOBBY", b.String(),
		"enter: open  n: new  e: edit  d: delete  /: search  s: speciality  m: more  r: refresh  o: offline  L: sign out  q: quit")
}

func itemRow(item models.Item) string {
	mark := fmt.Sprintf("%2d", item.Mark)
	if item.IsSpeciality() {
		mark += "*"
	} else {
		mark += " "
	}

	row := mark + " " + fitText(item.Title, 40)
	if item.Recommended {
		row += "  (recommended)"
	}
	if !item.HasIdentity() {
		row += pendingStyle.Render("  not synced")
	}
	return row
}

func firstError(state models.ItemsState) error {
	switch {
	case state.SavingError != nil:
		return state.SavingError
	case state.DeletingError != nil:
		return state.DeletingError
	default:
		return state.FetchingError
	}
}
