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

package scale

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Ingredient is a structured ingredient line.
type Ingredient struct {
	// Quantity is the amount and unit, e.g. "2 dl". May be empty.
	Quantity string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	// Notes are left untouched by scaling, e.g. "finely chopped".
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// String renders the ingredient as a single line.
func (i Ingredient) String() string {
	s := strings.TrimSpace(strings.Join(strings.Fields(i.Quantity+" "+i.Name), " "))
	if n := strings.TrimSpace(i.Notes); n != "" {
		if s == "" {
			return n
		}
		return s + ", " + n
	}
	return s
}

// Line is an ingredient line in either of its two shapes: a bare string or
// a structured Ingredient. A nil Ingredient means the line is Text.
type Line struct {
	Text       string
	Ingredient *Ingredient
}

// TextLine returns a bare string Line.
func TextLine(s string) Line {
	return Line{Text: s}
}

// IngredientLine returns a structured Line.
func IngredientLine(i Ingredient) Line {
	return Line{Ingredient: &i}
}

// IsStructured reports whether the line holds an Ingredient.
func (l Line) IsStructured() bool {
	return l.Ingredient != nil
}

// String renders the line as text regardless of its shape.
func (l Line) String() string {
	if l.Ingredient != nil {
		return l.Ingredient.String()
	}
	return l.Text
}

// MarshalJSON encodes a text line as a JSON string and a structured line as an object.
func (l Line) MarshalJSON() ([]byte, error) {
	if l.Ingredient != nil {
		return json.Marshal(l.Ingredient)
	}
	return json.Marshal(l.Text)
}

// UnmarshalJSON accepts either a JSON string or an ingredient object.
func (l *Line) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Line{Text: s}
		return nil
	}

	var ing Ingredient
	if err := json.Unmarshal(data, &ing); err != nil {
		return fmt.Errorf("ingredient line must be a string or an object: %w", err)
	}
	*l = Line{Ingredient: &ing}
	return nil
}

// MarshalYAML makes a text line a plain scalar.
func (l Line) MarshalYAML() (any, error) {
	if l.Ingredient != nil {
		return l.Ingredient, nil
	}
	return l.Text, nil
}

// UnmarshalYAML accepts either a scalar or a mapping.
func (l *Line) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = Line{Text: s}
		return nil
	case yaml.MappingNode:
		var ing Ingredient
		if err := node.Decode(&ing); err != nil {
			return err
		}
		*l = Line{Ingredient: &ing}
		return nil
	default:
		return fmt.Errorf("ingredient line must be a string or a mapping, got %s at line %d", nodeKind(node.Kind), node.Line)
	}
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
