// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrLoginAlreadyExists  = errors.New("login already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrVersionConflict       = errors.New("version conflict")
	ErrNoUserID              = errors.New("no user ID for item was given")
	ErrItemNotFound          = errors.New("item not found")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	ErrEngineAlreadyRunning = errors.New("engine is already running")
	ErrEngineStopped        = errors.New("engine is stopped")
	ErrNoSession            = errors.New("no active session")
	ErrItemNotSaved         = errors.New("item has not been saved to the server yet")
	ErrUnknownIntentKind    = errors.New("unknown intent kind")
	ErrNoConflict           = errors.New("no conflict to retry")
)
