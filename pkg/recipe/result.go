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
	"strconv"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/scale"
)

// Result is a recipe scaled to a new number of servings.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Title            string       `json:"title" yaml:"title"`
	Servings         float64      `json:"servings" yaml:"servings"`
	OriginalServings float64      `json:"originalServings" yaml:"originalServings"`
	Factor           float64      `json:"factor" yaml:"factor"`
	Ingredients      []scale.Line `json:"ingredients" yaml:"ingredients"`
}

// TableHeader implements serializer.Tabular.
func (r *Result) TableHeader() []string {
	return []string{"#", "INGREDIENT"}
}

// TableRows implements serializer.Tabular.
func (r *Result) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Ingredients))
	for i, l := range r.Ingredients {
		rows = append(rows, []string{strconv.Itoa(i + 1), l.String()})
	}
	return rows
}

// ShoppingList flattens the scaled ingredients into plain text items.
// Blank lines are dropped.
func (r *Result) ShoppingList() *ShoppingList {
	list := &ShoppingList{
		Title:    r.Title,
		Servings: r.Servings,
		Items:    make([]string, 0, len(r.Ingredients)),
	}
	for _, l := range r.Ingredients {
		if s := l.String(); s != "" {
			list.Items = append(list.Items, s)
		}
	}

	list.Header.Metadata = make(map[string]string, len(r.Metadata))
	for k, v := range r.Metadata {
		list.Header.Metadata[k] = v
	}
	list.Init(header.KindShoppingList, r.Metadata["version"])
	return list
}

// ShoppingList is the text form of a scaled recipe.
type ShoppingList struct {
	header.Header `json:",inline" yaml:",inline"`

	Title    string   `json:"title" yaml:"title"`
	Servings float64  `json:"servings" yaml:"servings"`
	Items    []string `json:"items" yaml:"items"`
}

// TableHeader implements serializer.Tabular.
func (s *ShoppingList) TableHeader() []string {
	return []string{"ITEM"}
}

// TableRows implements serializer.Tabular.
func (s *ShoppingList) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Items))
	for _, item := range s.Items {
		rows = append(rows, []string{item})
	}
	return rows
}
