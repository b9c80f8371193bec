// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoDisconnectTimeout = 5 * time.Second

// MongoDB is a [Database] backed by native MongoDB collections.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	schema   *schemaState
	logger   *logger.Logger
}

// NewConnectMongo creates a client for cfg.DSN. The driver connects lazily,
// so only a malformed URI fails here.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().ApplyURI(cfg.DSN)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo client")
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}

	m := &MongoDB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}
	m.schema = newSchemaState(cfg.ConnectTimeout, func(ctx context.Context) error {
		if err := m.Ping(ctx); err != nil {
			return err
		}
		return m.EnsureIndexes(ctx)
	})

	return m, nil
}

// Prepare pings the server and creates the indexes unless that already
// succeeded. Collections retry it on every call until it does.
func (m *MongoDB) Prepare(ctx context.Context) error {
	return m.schema.ensure(ctx)
}

// EnsureIndexes creates the unique indexes on users.email and
// sessions.token and the owner index on transactions.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		collection string
		field      string
		unique     bool
	}{
		{UsersCollection, "email", true},
		{SessionsCollection, "token", true},
		{TransactionsCollection, "userId", false},
	}

	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(idx.unique),
		}
		if _, err := m.database.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("error creating index on %s.%s: %w", idx.collection, idx.field, err)
		}
	}

	return nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("error connecting database (ping): %w", err)
	}
	return nil
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
	defer cancel()

	return m.client.Disconnect(ctx)
}

func (m *MongoDB) Collection(name string) Collection {
	return &mongoCollection{
		collection: m.database.Collection(name),
		schema:     m.schema,
		err:        validateCollection(name),
	}
}

type mongoCollection struct {
	collection *mongo.Collection
	schema     *schemaState
	err        error
}

func (c *mongoCollection) check(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	return c.schema.ensure(ctx)
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Filter, dst any) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	query, err := mongoFilter(filter)
	if err != nil {
		return err
	}

	if err := c.collection.FindOne(ctx, query).Decode(dst); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, dst any) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	query, err := mongoFilter(filter)
	if err != nil {
		return err
	}

	// UUIDv7 identifiers sort in creation order
	opts := options.Find().SetSort(bson.D{{Key: IDField, Value: 1}})
	cursor, err := c.collection.Find(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := cursor.All(ctx, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc Document) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	if _, err := c.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateDocument, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter Filter, fields Fields) (bool, error) {
	if err := c.check(ctx); err != nil {
		return false, err
	}

	query, err := mongoFilter(filter)
	if err != nil {
		return false, err
	}

	set := bson.M{}
	for name, value := range fields {
		if name == IDField {
			return false, fmt.Errorf("%w: %q cannot be updated", ErrInvalidField, name)
		}
		if err := validateField(name); err != nil {
			return false, err
		}
		set[name] = value
	}

	result, err := c.collection.UpdateOne(ctx, query, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.MatchedCount > 0, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter Filter) (bool, error) {
	if err := c.check(ctx); err != nil {
		return false, err
	}

	query, err := mongoFilter(filter)
	if err != nil {
		return false, err
	}

	result, err := c.collection.DeleteOne(ctx, query)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.DeletedCount > 0, nil
}

// mongoFilter converts filter into an equality query. Field names are
// validated so that operators such as $where never reach the server.
func mongoFilter(filter Filter) (bson.D, error) {
	query := bson.D{}
	for _, name := range sortedKeys(filter) {
		if err := validateField(name); err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: name, Value: filter[name]})
	}
	return query, nil
}
