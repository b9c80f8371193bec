// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-wallet/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names of stored documents.
const (
	fieldEmail       = "email"
	fieldToken       = "token"
	fieldUserID      = "userId"
	fieldDescription = "description"
	fieldValue       = "value"
)

type userDocument struct {
	ID       string `json:"_id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
}

func (d userDocument) DocumentID() string { return d.ID }

func newUserDocument(u models.User) userDocument {
	return userDocument{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password}
}

func (d userDocument) model() models.User {
	return models.User{ID: d.ID, Name: d.Name, Email: d.Email, Password: d.Password}
}

type sessionDocument struct {
	ID     string `json:"_id" bson:"_id"`
	UserID string `json:"userId" bson:"userId"`
	Token  string `json:"token" bson:"token"`
}

func (d sessionDocument) DocumentID() string { return d.ID }

func newSessionDocument(s models.Session) sessionDocument {
	return sessionDocument{ID: s.ID, UserID: s.UserID, Token: s.Token}
}

func (d sessionDocument) model() models.Session {
	return models.Session{ID: d.ID, UserID: d.UserID, Token: d.Token}
}

type transactionDocument struct {
	ID          string       `json:"_id" bson:"_id"`
	UserID      string       `json:"userId" bson:"userId"`
	Type        string       `json:"type" bson:"type"`
	Date        string       `json:"date" bson:"date"`
	Description string       `json:"description" bson:"description"`
	Value       decimalValue `json:"value" bson:"value"`
}

func (d transactionDocument) DocumentID() string { return d.ID }

func newTransactionDocument(t models.Transaction) transactionDocument {
	return transactionDocument{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Date:        t.Date,
		Description: t.Description,
		Value:       decimalValue{t.Value.Decimal},
	}
}

func (d transactionDocument) model() models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		UserID:      d.UserID,
		Type:        models.TransactionType(d.Type),
		Date:        d.Date,
		Description: d.Description,
		Value:       models.NewAmount(d.Value.Decimal),
	}
}

// decimalValue stores a decimal as a JSON number and as BSON Decimal128.
type decimalValue struct {
	decimal.Decimal
}

func (v decimalValue) MarshalJSON() ([]byte, error) {
	return []byte(v.Decimal.String()), nil
}

func (v *decimalValue) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return err
	}
	v.Decimal = d
	return nil
}

func (v decimalValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(v.Decimal.String())
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(d128)
}

func (v *decimalValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var s string
	switch t {
	case bson.TypeDecimal128:
		s = raw.Decimal128().String()
	case bson.TypeDouble:
		v.Decimal = decimal.NewFromFloat(raw.Double())
		return nil
	case bson.TypeInt32:
		v.Decimal = decimal.NewFromInt32(raw.Int32())
		return nil
	case bson.TypeInt64:
		v.Decimal = decimal.NewFromInt(raw.Int64())
		return nil
	case bson.TypeString:
		s = raw.StringValue()
	default:
		return fmt.Errorf("cannot decode BSON %s into a decimal", t)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	v.Decimal = d
	return nil
}
