// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignInResponse is returned by POST /auth/sign-in on success.
type SignInResponse struct {
	// Token is the bearer token to send in the Authorization header.
	Token string `json:"token"`

	// Name is the display name of the signed-in user.
	Name string `json:"name"`
}
