// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the coffee lobby client. It
// renders the engine's state snapshots and turns key presses into engine
// operations.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger.Component("tui")}
}

// Run shows the interface until the user quits. signedIn starts on the
// item list instead of the welcome screen.
func (t *TUI) Run(ctx context.Context, signedIn bool) error {
	states, unsubscribeStates := t.services.Engine.Subscribe()
	defer unsubscribeStates()
	connectivity, unsubscribeConnectivity := t.services.Prober.Subscribe()
	defer unsubscribeConnectivity()

	model := newAppModel(ctx, t.services, subscriptions{
		states:       states,
		connectivity: connectivity,
		conflicts:    t.services.Conflicts.Changes(),
	}, t.buildInfo, signedIn)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped")
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
