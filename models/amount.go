// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/shopspring/decimal"
)

// Bounds of an accepted amount. Decimals outside them are rejected at parse
// time so no later arithmetic has to expand a huge exponent.
const (
	maxAmountLength   = 64
	maxAmountExponent = 64
)

// ErrAmountOutOfRange is returned for amounts that are too long or whose
// exponent is too large.
var ErrAmountOutOfRange = errors.New("amount is out of range")

// Amount is a decimal money value.
//
// It is written to JSON as a bare number and read from either a JSON number
// or a numeric string. Any other JSON value yields a [json.UnmarshalTypeError]
// so that the decoder reports the offending field.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d into an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromString parses s into an Amount.
func AmountFromString(s string) (Amount, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Amount{}, err
	}

	return Amount{Decimal: d}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if len(s) > maxAmountLength {
		return decimal.Decimal{}, ErrAmountOutOfRange
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Decimal{}, ErrAmountOutOfRange
	}

	return d, nil
}

// MustAmount parses s and panics on error. Intended for fixtures.
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}

	return a
}

// MarshalJSON implements [json.Marshaler].
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &json.UnmarshalTypeError{Value: "empty", Type: reflect.TypeOf(Amount{})}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		d, err := parseDecimal(s)
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(Amount{})}
		}
		a.Decimal = d
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		d, err := parseDecimal(string(trimmed))
		if err != nil {
			return &json.UnmarshalTypeError{Value: "number " + string(trimmed), Type: reflect.TypeOf(Amount{})}
		}
		a.Decimal = d
		return nil
	case 'n':
		// null leaves the value untouched, like encoding/json does for numbers
		return nil
	default:
		return &json.UnmarshalTypeError{Value: jsonKind(trimmed[0]), Type: reflect.TypeOf(Amount{})}
	}
}

func jsonKind(first byte) string {
	switch first {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "value"
	}
}
