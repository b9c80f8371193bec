// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// message renders a single field error in the format the API returns.
func (v *RequestValidator) message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case tagPassword:
		return fmt.Sprintf("%q length must be at least %d characters long", field, v.passwordMinLength)
	case "eqfield":
		return fmt.Sprintf("%q must be [ref:%s]", field, v.jsonName(fe))
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, joinParams(fe.Param()))
	case tagAmount:
		return fmt.Sprintf("%q must be greater than or equal to 0", field)
	case tagDate:
		return fmt.Sprintf("%q must be a valid date", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

// jsonName resolves the json name of the field referenced by a cross-field
// tag such as eqfield=Password.
func (v *RequestValidator) jsonName(fe validator.FieldError) string {
	if name, ok := v.refNames[fe.Param()]; ok {
		return name
	}
	return fe.Param()
}

func joinParams(param string) string {
	out := make([]byte, 0, len(param)+4)
	for i := 0; i < len(param); i++ {
		if param[i] == ' ' {
			out = append(out, ',', ' ')
			continue
		}
		out = append(out, param[i])
	}
	return string(out)
}
