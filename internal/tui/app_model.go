// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/internal/validators"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenAuth
	screenList
	screenDetail
	screenForm
)

var errPasswordsDiffer = errors.New("passwords do not match")

// subscriptions are the feeds the model listens to for its whole life.
type subscriptions struct {
	states       <-chan models.ItemsState
	connectivity <-chan network.Status
	conflicts    <-chan struct{}
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	subs      subscriptions
	validator validators.Validator
	buildInfo models.AppBuildInfo

	currentScreen screen
	welcome       welcomeModel
	auth          authForm
	list          listModel
	detail        detailModel
	form          itemForm

	state        models.ItemsState
	connectivity network.Status
	conflict     *models.ConflictContext

	errMessage    string
	pendingDelete *models.Item
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, subs subscriptions, buildInfo models.AppBuildInfo, signedIn bool) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		subs:          subs,
		validator:     validators.NewItemValidator(),
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		list:          newListModel(services.ViewPageSize),
		connectivity:  services.Prober.Status(),
	}
	if signedIn {
		m.currentScreen = screenList
	}
	if conflict, ok := services.Conflicts.Current(); ok {
		m.conflict = &conflict
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitState(m.subs.states),
		waitConnectivity(m.subs.connectivity),
		waitConflict(m.subs.conflicts),
		m.list.spinner.Tick,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = models.ItemsState(msg)
		m.list = m.list.clamp(m.state.Items)
		m.refreshDetail()
		return m, waitState(m.subs.states)
	case connectivityMsg:
		m.connectivity = network.Status(msg)
		return m, waitConnectivity(m.subs.connectivity)
	case offlineToggledMsg:
		m.connectivity = network.Status(msg)
		return m, nil
	case conflictChangedMsg:
		if conflict, ok := m.services.Conflicts.Current(); ok {
			m.conflict = &conflict
		} else {
			m.conflict = nil
		}
		return m, waitConflict(m.subs.conflicts)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if handled, next, cmd := m.updateOverlays(msg); handled {
			return next, cmd
		}
	case authDoneMsg:
		m.auth.submitting = false
		if msg.err != nil {
			m.errMessage = humanizeError(msg.err)
			return m, nil
		}
		m.list = newListModel(m.services.ViewPageSize)
		m.currentScreen = screenList
		return m, m.list.spinner.Tick
	case loggedOutMsg:
		if msg.err != nil {
			m.errMessage = humanizeError(msg.err)
		}
		m.currentScreen = screenWelcome
		m.welcome = welcomeModel{}
		return m, nil
	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMessage = humanizeError(msg.err)
			return m, m.cmdAcknowledge()
		}
		m.currentScreen = screenList
		return m, m.cmdAcknowledge()
	case itemDeletedMsg:
		if msg.err != nil {
			m.errMessage = humanizeError(msg.err)
			return m, m.cmdAcknowledge()
		}
		if m.currentScreen == screenDetail {
			m.currentScreen = screenList
		}
		return m, m.cmdAcknowledge()
	case refreshedMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.errMessage = humanizeError(msg.err)
		}
		return m, nil
	case conflictHandledMsg:
		if msg.err != nil {
			m.errMessage = humanizeError(msg.err)
		}
		return m, nil
	case copiedMsg:
		status := "Copied!"
		if msg.err != nil {
			status = "Clipboard is unavailable"
		}
		m.detail.status = status
		m.list.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenAuth:
		return m.updateAuth(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

// updateOverlays routes keys to the topmost overlay. The error box sits
// above the conflict prompt, which sits above the delete confirmation.
func (m appModel) updateOverlays(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitByUser = true
		return true, m, tea.Quit
	}

	switch {
	case m.errMessage != "":
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errMessage = ""
		}
		return true, m, nil

	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return true, m, nil

	case m.conflict != nil && m.currentScreen != screenWelcome && m.currentScreen != screenAuth:
		switch {
		case key.Matches(msg, keys.retry):
			return true, m, m.cmdRetryConflict()
		case key.Matches(msg, keys.dismiss):
			m.services.Conflicts.Dismiss()
			m.conflict = nil
		}
		return true, m, nil

	case m.pendingDelete != nil:
		switch {
		case key.Matches(msg, keys.yes):
			item := *m.pendingDelete
			m.pendingDelete = nil
			return true, m, m.cmdDeleteItem(item)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.pendingDelete = nil
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(welcomeItems)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.auth = newAuthForm(m.welcome.idx == 1)
		m.currentScreen = screenAuth
		return m, m.auth.inputs[0].Focus()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.auth.submitting {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.auth = m.auth.focusShift(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.auth = m.auth.focusShift(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			user, ok := m.auth.user()
			if !ok {
				m.errMessage = humanizeError(errPasswordsDiffer)
				return m, nil
			}
			m.auth.submitting = true
			if m.auth.register {
				return m, m.cmdRegister(user)
			}
			return m, m.cmdLogin(user)
		}
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			if key.Matches(keyMsg, keys.esc) {
				m.list.search.SetValue("")
			}
			m.list = m.list.resetPaging()
			return m, nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.list = m.list.resetPaging()
		return m, cmd
	}

	items := m.state.Items
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.visible(items))-1 {
			m.list.idx++
			return m, nil
		}
		return m.showMore()
	case key.Matches(keyMsg, keys.more):
		return m.showMore()
	case key.Matches(keyMsg, keys.enter):
		if item, ok := m.list.current(items); ok {
			m.detail = detailModel{item: item}
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.newItem):
		m.form = newItemForm(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.list.current(items); ok {
			m.form = newItemForm(&item)
			m.currentScreen = screenForm
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.list.current(items); ok {
			m.pendingDelete = &item
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.speciality):
		m.list.specialityOnly = !m.list.specialityOnly
		m.list = m.list.resetPaging()
	case key.Matches(keyMsg, keys.refresh):
		m.list = m.list.resetPaging()
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.offline):
		return m, m.cmdToggleOffline()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) showMore() (tea.Model, tea.Cmd) {
	m.list = m.list.showMore()
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newItemForm(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		item := m.detail.item
		m.pendingDelete = &item
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.detail.clipboardText())
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.form.submitting {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.form = m.form.focusShift(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.form = m.form.focusShift(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.save):
			item, err := m.form.item()
			if err == nil {
				err = m.validator.Validate(m.ctx, item, validators.FieldTitle, validators.FieldDescription, validators.FieldMark)
			}
			if err != nil {
				m.errMessage = humanizeError(err)
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveItem(item)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// refreshDetail keeps the open item in step with merged pushes and
// replays.
func (m *appModel) refreshDetail() {
	if m.currentScreen != screenDetail {
		return
	}
	if i := m.state.IndexOf(m.detail.item); i >= 0 {
		m.detail.item = m.state.Items[i]
	}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenAuth:
		body = m.auth.View()
	case screenList:
		body = m.list.View(m.state, renderStatusBar(m.connectivity, m.services.Prober.ForcedOffline()))
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.pendingDelete != nil {
		body += "\n\n" + renderConfirmDelete(*m.pendingDelete)
	}
	if m.conflict != nil && m.currentScreen != screenWelcome && m.currentScreen != screenAuth {
		body += "\n\n" + renderConflict(*m.conflict)
	}
	if m.errMessage != "" {
		body += "\n\n" + renderErrorOverlay(m.errMessage)
	}

	return appStyle.Render(body)
}
