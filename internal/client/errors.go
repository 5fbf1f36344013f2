// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-coffee-lobby/internal/tui"
)

var (
	ErrNothingToRun = errors.New("client app needs services and a ui")

	// ErrUserQuit ends Run without an error.
	ErrUserQuit = tui.ErrUserQuit
)
