// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// authForm serves both sign in and sign up. Sign up asks for the password
// twice.
type authForm struct {
	register   bool
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newAuthForm(register bool) authForm {
	n := 2
	if register {
		n = 3
	}

	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 128
	}
	inputs[0].Placeholder = "login"
	for i := 1; i < n; i++ {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '•'
	}
	inputs[0].Focus()

	return authForm{register: register, inputs: inputs}
}

func (f authForm) focusShift(delta int) authForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

// user returns the entered credentials. ok is false when the repeated
// password differs.
func (f authForm) user() (user models.User, ok bool) {
	user = models.User{
		Login:    strings.TrimSpace(f.inputs[0].Value()),
		Password: f.inputs[1].Value(),
	}
	if f.register && f.inputs[2].Value() != user.Password {
		return user, false
	}
	return user, true
}

func (f authForm) View() string {
	title := "SIGN IN"
	if f.register {
		title = "SIGN UP"
	}

	var b strings.Builder
	b.WriteString("Login:    " + f.inputs[0].View() + "\n")
	b.WriteString("Password: " + f.inputs[1].View() + "\n")
	if f.register {
		b.WriteString("Repeat:   " + f.inputs[2].View() + "\n")
	}
	if f.submitting {
		b.WriteString("\nSending...\n")
	}

	return renderPage(title, b.String(), "tab: next field  enter: submit  esc: back")
}
