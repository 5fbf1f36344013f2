// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// CredentialsValidator checks the login and password of a [models.User].
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value)
	case *models.User:
		return v.validateUser(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateUser(user models.User) error {
	if user.Login == "" {
		return ErrEmptyLogin
	}
	if strings.ContainsFunc(user.Login, unicode.IsSpace) {
		return ErrInvalidLogin
	}
	if user.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
