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

package header

import (
	"time"

	perrors "github.com/mchmarny/portion/pkg/errors"
)

// APIVersion is the current document schema version.
const APIVersion = "portion/v1"

// Kind represents the type of a portion document.
type Kind string

const (
	KindRecipe       Kind = "Recipe"
	KindScaledRecipe Kind = "ScaledRecipe"
	KindShoppingList Kind = "ShoppingList"
	KindParseResult  Kind = "ParseResult"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindRecipe, KindScaledRecipe, KindShoppingList, KindParseResult:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains kind, version and metadata of a portion document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps the Header as an output document of the given kind.
// Existing metadata is kept; timestamp and version are overwritten.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Check verifies that a document read from input is of the expected kind.
// Empty Kind and APIVersion are accepted.
func (h *Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "unexpected document kind",
			map[string]any{"kind": h.Kind.String(), "expected": want.String()})
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "unsupported apiVersion",
			map[string]any{"apiVersion": h.APIVersion, "expected": APIVersion})
	}
	return nil
}
