// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account on the coffee lobby server.
type User struct {
	// UserID is the internal identifier; it becomes the "sub" claim of the
	// issued token and the owner of every item the user creates.
	UserID int64 `json:"-"`

	// Login is the unique login used to sign in.
	Login string `json:"login"`

	// Password is the plaintext password on the wire and its bcrypt hash at
	// the persistence layer.
	Password string `json:"password"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
