// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/mock"
	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/internal/validators"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

func newTestModel(t *testing.T, items []models.Item) appModel {
	t.Helper()
	ctrl := gomock.NewController(t)

	services := &service.ClientServices{
		Prober:    network.NewProber(mock.NewMockServerAdapter(ctrl), 0, logger.Nop()),
		Conflicts: service.NewConflictSurface(mock.NewMockIntentQueue(ctrl), logger.Nop()),
	}

	m := newAppModel(context.Background(), services, subscriptions{}, models.NewAppBuildInfo("1.0.0", "", ""), true)
	m.state = models.ItemsState{Items: items}
	return m
}

func press(t *testing.T, m appModel, keys ...string) (appModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		next, c := m.Update(msg)
		m, cmd = next.(appModel), c
	}
	return m, cmd
}

func coffees(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.Item{ID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("Coffee %d", i), Mark: i % 11}
	}
	return items
}

func TestList_Paging(t *testing.T) {
	m := newTestModel(t, coffees(20))

	assert.Len(t, m.list.visible(m.state.Items), service.ViewPageSize)

	m, cmd := press(t, m, "m")
	assert.Len(t, m.list.visible(m.state.Items), 20)
	assert.Nil(t, cmd, "paging never goes back to the server")

	m = newTestModel(t, coffees(40))
	m, _ = press(t, m, "m")
	assert.Len(t, m.list.visible(m.state.Items), 2*service.ViewPageSize)
}

func TestList_PageSizeFromServices(t *testing.T) {
	m := newTestModel(t, coffees(20))
	m.services.ViewPageSize = 4
	m.list = newListModel(m.services.ViewPageSize)

	assert.Len(t, m.list.visible(m.state.Items), 4)
	m, _ = press(t, m, "m")
	assert.Len(t, m.list.visible(m.state.Items), 8)

	m, _ = press(t, m, "s")
	assert.LessOrEqual(t, len(m.list.visible(m.state.Items)), 4)
}

func TestList_ScrollingPastLastRowShowsMore(t *testing.T) {
	m := newTestModel(t, coffees(40))

	keys := make([]string, service.ViewPageSize)
	for i := range keys {
		keys[i] = "down"
	}
	m, _ = press(t, m, keys...)

	assert.Equal(t, service.ViewPageSize-1, m.list.idx)
	assert.Len(t, m.list.visible(m.state.Items), 2*service.ViewPageSize)
}

func TestList_SpecialityFilter(t *testing.T) {
	m := newTestModel(t, coffees(11))
	m.list.idx = 3

	m, _ = press(t, m, "s")

	visible := m.list.visible(m.state.Items)
	require.Len(t, visible, 4)
	for _, item := range visible {
		assert.Greater(t, item.Mark, models.SpecialityMark)
	}
	assert.Zero(t, m.list.idx)

	m, _ = press(t, m, "s")
	assert.Len(t, m.list.visible(m.state.Items), 11)
}

func TestList_Search(t *testing.T) {
	m := newTestModel(t, []models.Item{{ID: "a", Title: "Flat White"}, {ID: "b", Title: "Espresso"}})

	m, _ = press(t, m, "/", "w", "h", "i")
	assert.True(t, m.list.searching)
	assert.Equal(t, []models.Item{{ID: "a", Title: "Flat White"}}, m.list.visible(m.state.Items))

	m, _ = press(t, m, "enter")
	assert.False(t, m.list.searching)
	assert.Len(t, m.list.visible(m.state.Items), 1)

	m, _ = press(t, m, "/", "esc")
	assert.Len(t, m.list.visible(m.state.Items), 2)
}

func TestList_DeleteConfirmation(t *testing.T) {
	m := newTestModel(t, coffees(3))

	m, _ = press(t, m, "d")
	require.NotNil(t, m.pendingDelete)
	assert.Equal(t, "id-0", m.pendingDelete.ID)
	assert.Contains(t, m.View(), `Delete "Coffee 0"?`)

	m, cmd := press(t, m, "n")
	assert.Nil(t, m.pendingDelete)
	assert.Nil(t, cmd)

	m, cmd = press(t, m, "down", "d", "y")
	assert.Nil(t, m.pendingDelete)
	assert.NotNil(t, cmd)
}

func TestForm_ValidatesBeforeSaving(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, "n")
	require.Equal(t, screenForm, m.currentScreen)

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, validators.ErrEmptyTitle.Error(), m.errMessage)

	m, _ = press(t, m, "esc")
	assert.Empty(t, m.errMessage)
	assert.Equal(t, screenForm, m.currentScreen)
}

func TestItemForm_Item(t *testing.T) {
	original := models.Item{ID: "a", Title: "Doppio", Mark: 5, Version: 3, Photo: &models.Photo{Filepath: "p.jpg"}}

	t.Run("keeps hidden fields", func(t *testing.T) {
		f := newItemForm(&original)
		f.inputs[fieldMark].SetValue("8")
		f.inputs[fieldRecommended].SetValue("Yes")

		item, err := f.item()
		require.NoError(t, err)
		assert.Equal(t, "a", item.ID)
		assert.Equal(t, int64(3), item.Version)
		assert.Equal(t, original.Photo, item.Photo)
		assert.Equal(t, 8, item.Mark)
		assert.True(t, item.Recommended)
	})

	t.Run("mark must be a number", func(t *testing.T) {
		f := newItemForm(nil)
		f.inputs[fieldTitle].SetValue("Ristretto")
		f.inputs[fieldMark].SetValue("x")

		_, err := f.item()
		assert.ErrorIs(t, err, errMarkNotNumber)
	})
}

func TestAuthForm_PasswordsMustMatch(t *testing.T) {
	f := newAuthForm(true)
	f.inputs[0].SetValue(" barista ")
	f.inputs[1].SetValue("crema")
	f.inputs[2].SetValue("cream")

	_, ok := f.user()
	assert.False(t, ok)

	f.inputs[2].SetValue("crema")
	user, ok := f.user()
	assert.True(t, ok)
	assert.Equal(t, models.User{Login: "barista", Password: "crema"}, user)
}

func TestConflictPrompt(t *testing.T) {
	m := newTestModel(t, coffees(1))
	conflict, err := models.NewConflictContext(models.PendingIntent{
		Key:  "update_id-0",
		Kind: models.IntentUpdate,
		Item: models.Item{ID: "id-0", Title: "Doppio"},
	}, 1)
	require.NoError(t, err)

	m.services.Conflicts.Present(context.Background(), conflict)
	next, _ := m.Update(conflictChangedMsg{})
	m = next.(appModel)

	require.NotNil(t, m.conflict)
	assert.Contains(t, m.View(), "Version conflict for item: Doppio")

	m, _ = press(t, m, "d")
	assert.Nil(t, m.conflict)
	assert.Nil(t, m.pendingDelete, "keys go to the prompt while it is open")
	_, visible := m.services.Conflicts.Current()
	assert.False(t, visible)
}

func TestStatusBar(t *testing.T) {
	assert.Contains(t, renderStatusBar(network.Connected, false), "online")
	assert.Contains(t, renderStatusBar(network.Disconnected, false), "queued")
	assert.Contains(t, renderStatusBar(network.Connected, true), "forced")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrWrongPassword), want: "Wrong login or password"},
		{err: service.ErrItemNotSaved, want: "This item has not reached the server yet and cannot be deleted"},
		{err: adapter.ErrUnauthorized, want: "Session expired, please sign in again"},
		{err: errors.New("dial tcp 127.0.0.1:8080: connection refused"), want: "No network or the server is unavailable"},
		{err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
