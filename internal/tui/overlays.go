// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

func renderErrorOverlay(message string) string {
	return overlayBoxStyle.Render("Error\n\n" + message + "\n\nenter / esc: close")
}

func renderConfirmDelete(item models.Item) string {
	return overlayBoxStyle.Render("Delete \"" + item.Title + "\"?\n\ny: yes    n: no")
}

func renderConflict(conflict models.ConflictContext) string {
	return overlayBoxStyle.Render(conflict.Text + "\n\nr: retry    esc: dismiss")
}

func renderStatusBar(status network.Status, forced bool) string {
	switch {
	case forced:
		return offlineStyle.Render("● offline (forced)")
	case status == network.Connected:
		return onlineStyle.Render("● online")
	default:
		return offlineStyle.Render("● offline, changes are queued")
	}
}
