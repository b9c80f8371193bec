// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain entities of the wallet (users, sessions,
// transactions) together with the request and response shapes of the REST
// API. Storage-specific representations live in the store package.
package models
