// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package validate checks documents against the constraints declared in
// their `validate` struct tags before they reach the database.
package validate

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/absmach/dealership/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates a document that violates its declared schema.
var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name, which is also the document field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates s and reports every violated constraint.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("field: %s, tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return errors.Wrap(ErrValidation, errors.New(strings.Join(messages, "; ")))
	}

	return errors.Wrap(ErrValidation, err)
}
