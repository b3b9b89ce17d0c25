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

// Package serializer reads and writes portion documents.
//
// Three output formats are supported:
//   - JSON: machine-readable, indented, encoded with goccy/go-json
//   - YAML: human-readable, the format recipe files are usually written in
//   - Table: aligned columns for terminals
//
// Values implementing Tabular render as their own columns in table format
// (a shopping list prints one row per line); anything else is flattened to
// FIELD/VALUE rows.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// Documents are read from files, URLs or request bodies:
//
//	rec, err := serializer.FromFile[recipe.Recipe]("pancakes.yaml")
//	rec, err := serializer.FromFile[recipe.Recipe]("https://example.com/pancakes.json")
//	rec, err := serializer.FromBytes[recipe.Recipe](body, serializer.FormatFromContentType(ct))
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer

import "context"

// Serializer writes a value in some format to some destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Tabular is implemented by values with a natural table layout.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}
