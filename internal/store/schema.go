// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// schemaState runs the schema preparation of a backend (migrations or
// indexes) until it succeeds once. Collections call ensure before every
// operation, so a database that was down at startup is prepared on the first
// request after it comes back.
type schemaState struct {
	ready   atomic.Bool
	mu      sync.Mutex
	timeout time.Duration
	prepare func(ctx context.Context) error
}

func newSchemaState(timeout time.Duration, prepare func(ctx context.Context) error) *schemaState {
	return &schemaState{timeout: timeout, prepare: prepare}
}

// ensure is a no-op after the first successful preparation.
func (s *schemaState) ensure(ctx context.Context) error {
	if s == nil || s.ready.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready.Load() {
		return nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.prepare(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaNotReady, err)
	}
	s.ready.Store(true)

	return nil
}
