// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the wallet.
//
// A [Database] exposes named document collections (users, sessions,
// transactions). Three backends implement it: PostgreSQL and SQLite keep
// each document as JSON in a (seq, id, doc) table, MongoDB uses native
// collections. Repositories map domain models onto documents and translate
// gateway errors into the sentinel errors declared in errors.go.
package store
