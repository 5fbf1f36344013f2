// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	search     key.Binding
	speciality key.Binding
	more       key.Binding
	refresh    key.Binding
	offline    key.Binding
	copy       key.Binding
	version    key.Binding
	yes        key.Binding
	no         key.Binding
	retry      key.Binding
	dismiss    key.Binding
	save       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	search:     key.NewBinding(key.WithKeys("/")),
	speciality: key.NewBinding(key.WithKeys("s")),
	more:       key.NewBinding(key.WithKeys("m")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	offline:    key.NewBinding(key.WithKeys("o")),
	copy:       key.NewBinding(key.WithKeys("c")),
	version:    key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
	retry:      key.NewBinding(key.WithKeys("r")),
	dismiss:    key.NewBinding(key.WithKeys("esc", "d")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
}
