// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/MKhiriev/go-wallet/internal/validators"
	"github.com/MKhiriev/go-wallet/models"
)

var amountType = reflect.TypeOf(models.Amount{})

// decodeJSON reads the request body into dst. An empty body decodes as {}.
//
// A body that is not JSON yields errInvalidJSON; a field holding a value of
// the wrong JSON type yields validators.ValidationErrors naming that field.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, maxErr.Limit)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validators.NewValidationErrors(
			fmt.Sprintf("%q must be a %s", typeErr.Field, jsonTypeName(typeErr.Type)),
		)
	}

	return fmt.Errorf("%w: %w", errInvalidJSON, err)
}

func jsonTypeName(t reflect.Type) string {
	if t == amountType {
		return "number"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
