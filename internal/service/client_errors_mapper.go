// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors it does not recognise are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrVersionConflict):
		if msg == app.MsgLoginAlreadyExists {
			return ErrLoginAlreadyExists
		}
		return ErrVersionConflict
	}

	return err
}

// extractBody returns the response body mapHTTPError appended after the
// sentinel, e.g. "client unauthorized: invalid login/password".
func extractBody(err error) string {
	_, body, found := strings.Cut(err.Error(), ": ")
	if !found {
		return ""
	}
	return strings.TrimSpace(body)
}
