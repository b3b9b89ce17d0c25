// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	stderrors "errors"
	"fmt"
	"sync"

	playground "github.com/go-playground/validator/v10"

	perrors "github.com/mchmarny/portion/pkg/errors"
)

var (
	validate     *playground.Validate
	validateOnce sync.Once
)

var messageTemplates = map[string]string{
	"required": "%s is required",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be greater than or equal to %s",
	"lt":       "%s must be less than %s",
	"lte":      "%s must be less than or equal to %s",
	"oneof":    "%s must be one of: %s",
	"min":      "%s must have at least %s items",
	"max":      "%s must have at most %s items",
}

// Get returns the shared validator instance.
func Get() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates s and returns nil or an INVALID_REQUEST StructuredError
// listing each failing field.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return perrors.Wrap(perrors.ErrCodeInvalidRequest, "validation failed", err)
	}

	fields := make(map[string]any, len(fieldErrs))
	first := ""
	for _, fe := range fieldErrs {
		msg := message(fe)
		fields[fe.Namespace()] = msg
		if first == "" {
			first = msg
		}
	}
	return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, first, fields)
}

func message(fe playground.FieldError) string {
	tmpl, ok := messageTemplates[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	if fe.Tag() == "required" {
		return fmt.Sprintf(tmpl, fe.Field())
	}
	if (fe.Tag() == "min" || fe.Tag() == "max") && fe.Kind().String() == "string" {
		return fmt.Sprintf("%s must have %s %s characters", fe.Field(), bound(fe.Tag()), fe.Param())
	}
	return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
}

func bound(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
