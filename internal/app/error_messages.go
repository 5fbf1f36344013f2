// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// coffee lobby server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches on them to recover the server's business error, so the
// wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID from
	// the request context but none is present.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgLoginAlreadyExists is returned with 409 when a registration attempt
	// uses a login that is already taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgItemNotFound is returned when an update or delete targets an item
	// the current user does not own.
	MsgItemNotFound = "item not found"

	// MsgVersionConflict is returned with 409 when the version supplied by
	// the client no longer matches the stored one.
	MsgVersionConflict = "version conflict"

	// MsgInvalidPage is returned when offset or limit is not a non-negative
	// integer.
	MsgInvalidPage = "invalid offset or limit"
)
