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


package recipe

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/scale"
	"github.com/mchmarny/portion/pkg/serializer"
	"github.com/mchmarny/portion/pkg/validator"
)

// Recipe is a titled list of ingredient lines written for a number of servings.
type Recipe struct {
	header.Header `json:",inline" yaml:",inline"`

	Title       string       `json:"title" yaml:"title" validate:"required"`
	Servings    float64      `json:"servings" yaml:"servings" validate:"gt=0"`
	Ingredients []scale.Line `json:"ingredients" yaml:"ingredients" validate:"required,min=1,max=500,dive"`
}

// Validate checks the document kind and required fields.
func (r *Recipe) Validate() error {
	if err := r.Check(header.KindRecipe); err != nil {
		return err
	}
	return validator.Struct(r)
}

// Load reads a recipe document from a local file or http(s) URL.
// The format is detected from the extension.
func Load(ctx context.Context, path string) (*Recipe, error) {
	rec, err := serializer.FromFileWithContext[Recipe](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Parse reads a recipe document from data in the given format.
func Parse(data []byte, format serializer.Format) (*Recipe, error) {
	rec, err := serializer.FromBytes[Recipe](data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseFromBody reads a recipe document from an HTTP request body.
// YAML content types are decoded as YAML, everything else as JSON.
func ParseFromBody(body io.Reader, contentType string) (*Recipe, error) {
	if body == nil {
		return nil, fmt.Errorf("request body is empty")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return Parse(data, serializer.FormatFromContentType(contentType))
}
