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

// Package header provides the common header carried by portion documents.
//
// Recipes read from files or request bodies, scaled recipes, shopping lists
// and parse reports all start with the same three fields:
//
//	kind: Recipe
//	apiVersion: portion/v1
//	metadata:
//	  source: grandma.yaml
//
// Kind and APIVersion are optional on input; when present they must match
// what the reader expects (see Header.Check). Output documents are stamped
// with Init, which records a timestamp and the tool version in Metadata.
package header
