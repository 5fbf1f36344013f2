// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID      = errors.New("invalid item id")
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidMark        = errors.New("mark is out of range")
	ErrInvalidPhoto       = errors.New("photo requires a file path")
	ErrInvalidPosition    = errors.New("position is out of range")
	ErrInvalidVersion     = errors.New("invalid version")

	ErrEmptyLogin    = errors.New("login is required")
	ErrInvalidLogin  = errors.New("login must not contain whitespace")
	ErrEmptyPassword = errors.New("password is required")
)
