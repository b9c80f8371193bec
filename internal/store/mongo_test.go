// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoFilter(t *testing.T) {
	query, err := mongoFilter(Filter{"userId": "u1", IDField: "t1"})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "_id", Value: "t1"}, {Key: "userId", Value: "u1"}}, query)

	_, err = mongoFilter(Filter{"$where": "1"})
	assert.ErrorIs(t, err, ErrInvalidField)

	empty, err := mongoFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, bson.D{}, empty)
}

func TestTransactionDocument_BSON(t *testing.T) {
	doc := transactionDocument{
		ID: "t1", UserID: "u1", Type: "income", Date: "2024-02-01",
		Description: "salary", Value: decimalValue{decimal.RequireFromString("1234.56")},
	}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	value := bson.Raw(raw).Lookup("value")
	assert.Equal(t, bson.TypeDecimal128, value.Type)
	assert.Equal(t, "t1", bson.Raw(raw).Lookup("_id").StringValue())

	var decoded transactionDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, doc.ID, decoded.ID)
	assert.True(t, doc.Value.Equal(decoded.Value.Decimal))
}

func TestDecimalValue_UnmarshalBSONNumericTypes(t *testing.T) {
	d128, err := primitive.ParseDecimal128("10.5")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"decimal128", d128, "10.5"},
		{"double", 2.5, "2.5"},
		{"int32", int32(7), "7"},
		{"int64", int64(9), "9"},
		{"string", "3.25", "3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"value": tt.value})
			require.NoError(t, err)

			var out struct {
				Value decimalValue `bson:"value"`
			}
			require.NoError(t, bson.Unmarshal(raw, &out))
			assert.True(t, out.Value.Equal(decimal.RequireFromString(tt.want)), out.Value.String())
		})
	}
}

func TestDecimalValue_JSON(t *testing.T) {
	out, err := json.Marshal(decimalValue{decimal.RequireFromString("0.10")})
	require.NoError(t, err)
	assert.Equal(t, "0.1", string(out))

	var v decimalValue
	require.NoError(t, json.Unmarshal([]byte(`12.345`), &v))
	assert.Equal(t, "12.345", v.String())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}

func TestMongoCollection_UnreachableServerKeepsRetryingSchema(t *testing.T) {
	cfg := config.DB{DSN: "mongodb://127.0.0.1:1", Name: "wallet", ConnectTimeout: 50 * time.Millisecond}
	db, err := NewConnectMongo(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := db.Collection(UsersCollection)
	for range 2 {
		var got userDocument
		err := users.FindOne(context.Background(), Filter{"email": "a@b.io"}, &got)
		assert.ErrorIs(t, err, ErrSchemaNotReady)
	}
	assert.False(t, db.schema.ready.Load())
}
