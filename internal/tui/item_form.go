// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldMark
	fieldDate
	fieldRecommended
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:       "Title:       ",
	fieldDescription: "Description: ",
	fieldMark:        "Mark (0-10): ",
	fieldDate:        "Date:        ",
	fieldRecommended: "Recommend:   ",
}

var errMarkNotNumber = errors.New("mark must be a whole number")

// itemForm edits a copy of an item. Fields the form does not show (photo,
// position, version, pending key) are carried over from the original.
type itemForm struct {
	original   models.Item
	editing    bool
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newItemForm(item *models.Item) itemForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldMark].CharLimit = 2
	inputs[fieldRecommended].Placeholder = "y/n"
	inputs[fieldRecommended].CharLimit = 3
	inputs[fieldTitle].Focus()

	f := itemForm{inputs: inputs}
	if item == nil {
		return f
	}

	f.original = *item
	f.editing = true
	f.inputs[fieldTitle].SetValue(item.Title)
	f.inputs[fieldDescription].SetValue(item.Description)
	f.inputs[fieldMark].SetValue(strconv.Itoa(item.Mark))
	f.inputs[fieldDate].SetValue(item.Date)
	if item.Recommended {
		f.inputs[fieldRecommended].SetValue("y")
	}
	return f
}

func (f itemForm) focusShift(delta int) itemForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

// item applies the entered values to the original item.
func (f itemForm) item() (models.Item, error) {
	item := f.original
	item.Title = strings.TrimSpace(f.inputs[fieldTitle].Value())
	item.Description = strings.TrimSpace(f.inputs[fieldDescription].Value())
	item.Date = strings.TrimSpace(f.inputs[fieldDate].Value())

	mark := strings.TrimSpace(f.inputs[fieldMark].Value())
	if mark == "" {
		item.Mark = 0
	} else {
		n, err := strconv.Atoi(mark)
		if err != nil {
			return models.Item{}, errMarkNotNumber
		}
		item.Mark = n
	}

	switch strings.ToLower(strings.TrimSpace(f.inputs[fieldRecommended].Value())) {
	case "y", "yes", "true", "+":
		item.Recommended = true
	default:
		item.Recommended = false
	}

	return item, nil
}

func (f itemForm) View() string {
	title := "NEW COFFEE"
	if f.editing {
		title = "EDIT: " + f.original.Title
	}

	var b strings.Builder
	for i, input := range f.inputs {
		b.WriteString(fieldLabels[i] + input.View() + "\n")
	}
	if f.submitting {
		b.WriteString("\nSaving...\n")
	}

	return renderPage(title, b.String(), "tab: next field  enter: save  esc: cancel")
}
