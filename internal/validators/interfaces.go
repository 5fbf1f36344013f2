// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks items and credentials before they reach the
// services.
//
// [ItemValidator] enforces the item rules (title, mark range, photo,
// position, version); [CredentialsValidator] enforces login and password
// presence. Both accept values or pointers and can be scoped to named
// fields.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
