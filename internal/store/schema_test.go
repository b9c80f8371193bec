// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDatabaseDown = errors.New("database is down")

func TestSchemaState_RetriesUntilPrepared(t *testing.T) {
	var attempts int
	state := newSchemaState(0, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errDatabaseDown
		}
		return nil
	})

	err := state.ensure(context.Background())
	assert.ErrorIs(t, err, ErrSchemaNotReady)
	assert.ErrorIs(t, err, errDatabaseDown)
	assert.ErrorIs(t, state.ensure(context.Background()), ErrSchemaNotReady)

	require.NoError(t, state.ensure(context.Background()))
	require.NoError(t, state.ensure(context.Background()))
	assert.Equal(t, 3, attempts)
}

func TestSchemaState_PreparesOnceUnderConcurrency(t *testing.T) {
	var attempts atomic.Int32
	state := newSchemaState(time.Second, func(ctx context.Context) error {
		attempts.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, state.ensure(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), attempts.Load())
}

func TestSchemaState_AppliesTimeout(t *testing.T) {
	state := newSchemaState(10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, state.ensure(context.Background()), context.DeadlineExceeded)
}

func TestNilSchemaState(t *testing.T) {
	var state *schemaState
	assert.NoError(t, state.ensure(context.Background()))
}

func TestDB_MigratesOnFirstCallAfterFailedStartup(t *testing.T) {
	cfg := config.DB{
		DSN:            "sqlite://" + filepath.Join(t.TempDir(), "wallet.db"),
		ConnectTimeout: 5 * time.Second,
	}
	db, err := NewConnectSQLite(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var attempts int
	migrate := db.schema.prepare
	db.schema.prepare = func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return errDatabaseDown
		}
		return migrate(ctx)
	}

	ctx := context.Background()
	require.ErrorIs(t, db.Prepare(ctx), ErrSchemaNotReady)

	users := db.Collection(UsersCollection)
	require.NoError(t, users.InsertOne(ctx, userDocument{ID: "u1", Email: "a@b.io"}))
	assert.ErrorIs(t, users.InsertOne(ctx, userDocument{ID: "u2", Email: "a@b.io"}), ErrDuplicateDocument,
		"unique index exists after the late migration")

	var got userDocument
	require.NoError(t, users.FindOne(ctx, Filter{"email": "a@b.io"}, &got))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, 2, attempts)
}

func TestDB_RequestsFailWhileSchemaIsNotReady(t *testing.T) {
	cfg := config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "wallet.db")}
	db, err := NewConnectSQLite(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.schema.prepare = func(ctx context.Context) error { return errDatabaseDown }

	var got []userDocument
	assert.ErrorIs(t, db.Collection(UsersCollection).Find(context.Background(), Filter{}, &got), ErrSchemaNotReady)
}
