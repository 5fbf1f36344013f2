// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const statusTTL = 2 * time.Second

func waitState(ch <-chan models.ItemsState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(state)
	}
}

func waitConnectivity(ch <-chan network.Status) tea.Cmd {
	return func() tea.Msg {
		status, ok := <-ch
		if !ok {
			return nil
		}
		return connectivityMsg(status)
	}
}

func waitConflict(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return conflictChangedMsg{}
	}
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	return func() tea.Msg {
		session, err := m.services.AuthService.Login(m.ctx, user)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	return func() tea.Msg {
		session, err := m.services.AuthService.Register(m.ctx, user)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.services.AuthService.Logout(m.ctx)}
	}
}

func (m appModel) cmdSaveItem(item models.Item) tea.Cmd {
	return func() tea.Msg {
		return itemSavedMsg{err: m.services.Engine.SaveItem(m.ctx, item)}
	}
}

func (m appModel) cmdDeleteItem(item models.Item) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.services.Engine.DeleteItem(m.ctx, item)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: m.services.Engine.Refresh(m.ctx)}
	}
}

func (m appModel) cmdAcknowledge() tea.Cmd {
	return func() tea.Msg {
		_ = m.services.Engine.Acknowledge(m.ctx)
		return nil
	}
}

func (m appModel) cmdToggleOffline() tea.Cmd {
	forced := !m.services.Prober.ForcedOffline()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, 5*time.Second)
		defer cancel()
		return offlineToggledMsg(m.services.Prober.SetForcedOffline(ctx, forced))
	}
}

func (m appModel) cmdRetryConflict() tea.Cmd {
	return func() tea.Msg {
		return conflictHandledMsg{err: m.services.Conflicts.Retry(m.ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
