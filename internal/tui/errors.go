// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
)

// ErrUserQuit is returned by Run when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns client errors into prompt text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong login or password"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Login and password are required, login without spaces"
	case errors.Is(err, service.ErrItemNotSaved):
		return "This item has not reached the server yet and cannot be deleted"
	case errors.Is(err, service.ErrNoSession), errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, please sign in again"
	case errors.Is(err, adapter.ErrVersionConflict):
		return "The item was changed elsewhere, refresh and try again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
