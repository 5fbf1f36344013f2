// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

var welcomeItems = []string{"Sign in", "Sign up"}

type welcomeModel struct {
	idx int
}

func (m welcomeModel) View() string {
	var b strings.Builder
	for i, item := range welcomeItems {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	return renderPage("COFFEE LOBBY", b.String(), "enter: choose  v: version  q: quit")
}
