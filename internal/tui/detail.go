// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

type detailModel struct {
	item   models.Item
	status string
}

func (m detailModel) View() string {
	item := m.item

	var b strings.Builder
	b.WriteString("Title:       " + item.Title + "\n")
	b.WriteString("Description: " + valueOrDash(item.Description) + "\n")
	b.WriteString(fmt.Sprintf("Mark:        %d", item.Mark))
	if item.IsSpeciality() {
		b.WriteString(" (speciality)")
	}
	b.WriteString("\n")
	b.WriteString("Recommended: " + yesNo(item.Recommended) + "\n")
	b.WriteString("Date:        " + valueOrDash(item.Date) + "\n")
	if item.Photo != nil {
		b.WriteString("Photo:       " + valueOrDash(item.Photo.Filepath) + "\n")
	}
	if item.Position != nil {
		b.WriteString(fmt.Sprintf("Position:    %.5f, %.5f\n", item.Position.Coords.Latitude, item.Position.Coords.Longitude))
	}
	if item.HasIdentity() {
		b.WriteString(fmt.Sprintf("Version:     %d\n", item.Version))
	} else {
		b.WriteString(pendingStyle.Render("Waiting to reach the server") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("COFFEE", b.String(), "e: edit  d: delete  c: copy note  esc: back")
}

// clipboardText is what the copy key puts on the clipboard.
func (m detailModel) clipboardText() string {
	if m.item.Description == "" {
		return m.item.Title
	}
	return m.item.Title + ": " + m.item.Description
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
