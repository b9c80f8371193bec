// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the proof of a successful sign-in.
// Sessions never expire; the token stays valid until the record is removed
// from the store by hand.
type Session struct {
	// ID is the unique identifier of the session.
	ID string `json:"_id"`

	// UserID references the owning [User].
	UserID string `json:"userId"`

	// Token is the opaque bearer token handed to the client.
	Token string `json:"token"`
}
