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


package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/recipe"
	"github.com/mchmarny/portion/pkg/scale"
	"github.com/mchmarny/portion/pkg/serializer"
)

// runCLI runs the root command with stdin and returns the path of the JSON
// output file it was told to write.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.json")

	root := newRootCmd()
	root.Reader = strings.NewReader(stdin)
	argv := []string{name, args[0], "--format", "json", "--output", out}
	argv = append(argv, args[1:]...)

	return out, root.Run(context.Background(), argv)
}

func TestScaleCmd_Lines(t *testing.T) {
	out, err := runCLI(t, "", "scale", "--from", "2", "--to", "4", "--locale", "en",
		"2 cups flour", "1-2 tbsp sugar", "salt to taste")
	require.NoError(t, err)

	got, err := serializer.FromFile[recipe.ScaleResponse](out)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, got.Factor, 1e-9)
	want := []scale.Line{
		scale.TextLine("4 cups flour"),
		scale.TextLine("2-4 tbsp sugar"),
		scale.TextLine("salt to taste"),
	}
	if diff := cmp.Diff(want, got.Lines); diff != "" {
		t.Errorf("scale lines mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleCmd_Stdin(t *testing.T) {
	out, err := runCLI(t, "2,5 dl mjölk\n\n3 ägg\n", "scale", "--from", "4", "--to", "8")
	require.NoError(t, err)

	got, err := serializer.FromFile[recipe.ScaleResponse](out)
	require.NoError(t, err)

	want := []scale.Line{
		scale.TextLine("5 dl mjölk"),
		scale.TextLine("6 ägg"),
	}
	if diff := cmp.Diff(want, got.Lines); diff != "" {
		t.Errorf("scale lines mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleCmd_Recipe(t *testing.T) {
	out, err := runCLI(t, "", "scale", "--recipe", "testdata/kottbullar.yaml", "--to", "2", "--locale", "sv")
	require.NoError(t, err)

	got, err := serializer.FromFile[recipe.Result](out)
	require.NoError(t, err)

	assert.Equal(t, header.KindScaledRecipe, got.Kind)
	assert.Equal(t, "Köttbullar", got.Title)
	assert.InDelta(t, 4.0, got.OriginalServings, 1e-9)
	assert.InDelta(t, 2.0, got.Servings, 1e-9)
	assert.Equal(t, "mormor", got.Metadata["source"])

	want := []scale.Line{
		scale.TextLine("250 g köttfärs"),
		scale.TextLine("½ dl ströbröd"),
		scale.IngredientLine(scale.Ingredient{Quantity: "1 dl", Name: "mjölk"}),
		scale.TextLine("½ ägg"),
		scale.TextLine("salt och peppar"),
	}
	if diff := cmp.Diff(want, got.Ingredients); diff != "" {
		t.Errorf("scaled recipe mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleCmd_ShoppingList(t *testing.T) {
	out, err := runCLI(t, "", "scale", "-f", "testdata/kottbullar.yaml", "--to", "8", "--shopping-list")
	require.NoError(t, err)

	got, err := serializer.FromFile[recipe.ShoppingList](out)
	require.NoError(t, err)

	assert.Equal(t, header.KindShoppingList, got.Kind)
	assert.Equal(t, []string{
		"1000 g köttfärs",
		"2 dl ströbröd",
		"4 dl mjölk",
		"2 ägg",
		"salt och peppar",
	}, got.Items)
}

func TestScaleCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "missing to", args: []string{"scale", "--from", "2", "1 cup rice"}},
		{name: "missing from", args: []string{"scale", "--to", "2", "1 cup rice"}},
		{name: "zero from", args: []string{"scale", "--from", "0", "--to", "2", "1 cup rice"}},
		{name: "negative to", args: []string{"scale", "--from", "2", "--to=-1", "1 cup rice"}},
		{name: "no lines", args: []string{"scale", "--from", "2", "--to", "4"}},
		{name: "shopping list without recipe", args: []string{"scale", "--from", "2", "--to", "4", "--shopping-list", "1 cup rice"}},
		{name: "missing recipe file", args: []string{"scale", "-f", "testdata/missing.yaml", "--to", "4"}},
		{name: "unsupported locale", args: []string{"scale", "--from", "2", "--to", "4", "--locale", "de", "1 cup rice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestScaleCmd_UnknownFormat(t *testing.T) {
	root := newRootCmd()
	err := root.Run(context.Background(), []string{name, "scale", "--from", "1", "--to", "2", "--format", "xml", "1 cup rice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
