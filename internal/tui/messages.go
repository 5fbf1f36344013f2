// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type stateMsg models.ItemsState

type connectivityMsg network.Status

type offlineToggledMsg network.Status

type conflictChangedMsg struct{}

type authDoneMsg struct {
	session models.Session
	err     error
}

type loggedOutMsg struct {
	err error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type refreshedMsg struct {
	err error
}

type conflictHandledMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
