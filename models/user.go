// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a wallet account.
// The password is held only as a bcrypt hash and is never serialized.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"_id"`

	// Name is the display name of the user, stored without markup.
	Name string `json:"name"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It never leaves the server.
	Password string `json:"-"`
}
