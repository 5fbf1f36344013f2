// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrRecordNotFound is returned by [RecordStore.Get] for an absent key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDecodingRecord is returned when a stored value cannot be decoded
	// into the expected model.
	ErrDecodingRecord = errors.New("failed to decode record")

	// ErrNotIntentKey is returned when an intent operation receives a key
	// without one of the intent prefixes.
	ErrNotIntentKey = errors.New("key is not an intent key")

	// ErrLocalSessionNotFound is returned when no session was persisted on
	// this device.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrLoginAlreadyExists is returned when registering a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the login.
	ErrUserNotFound = errors.New("no user was found")

	// ErrItemNotFound is returned when an item does not exist or belongs to
	// another user.
	ErrItemNotFound = errors.New("item was not found")

	// ErrVersionConflict is returned when an update carries a version that
	// no longer matches the stored one.
	ErrVersionConflict = errors.New("item version conflict occurred")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ErrItemAlreadyExists is returned when an item with the same identity is
// already stored.
var ErrItemAlreadyExists = errors.New("item already exists")
