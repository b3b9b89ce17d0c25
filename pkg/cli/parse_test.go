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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/quantity"
	"github.com/mchmarny/portion/pkg/serializer"
)

func TestParseCmd(t *testing.T) {
	out, err := runCLI(t, "", "parse", "2 cups flour", "1 1/2 tsk kanel", "salt to taste")
	require.NoError(t, err)

	got, err := serializer.FromFile[ParseResult](out)
	require.NoError(t, err)
	assert.Equal(t, header.KindParseResult, got.Kind)
	require.Len(t, got.Lines, 3)

	flour := got.Lines[0]
	assert.Equal(t, "2 cups flour", flour.Line)
	assert.Equal(t, "2 cups", flour.Quantity)
	assert.Equal(t, "flour", flour.Name)
	assert.True(t, flour.Parsed.Parseable)
	assert.InDelta(t, 2.0, flour.Parsed.Value, 1e-9)
	assert.Equal(t, "cups", flour.Parsed.Unit)

	kanel := got.Lines[1]
	assert.Equal(t, "1 1/2 tsk", kanel.Quantity)
	assert.InDelta(t, 1.5, kanel.Parsed.Value, 1e-9)

	salt := got.Lines[2]
	assert.Empty(t, salt.Quantity)
	assert.Equal(t, "salt to taste", salt.Name)
	assert.False(t, salt.Parsed.Parseable)
}

func TestParseCmd_Stdin(t *testing.T) {
	out, err := runCLI(t, "2 flour\n", "parse")
	require.NoError(t, err)

	got, err := serializer.FromFile[ParseResult](out)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "2", got.Lines[0].Quantity)
	assert.Equal(t, "flour", got.Lines[0].Name)
}

func TestParseCmd_UnsupportedLocale(t *testing.T) {
	_, err := runCLI(t, "", "parse", "--locale", "fr", "1 cup rice")
	assert.Error(t, err)
}

func TestParseResult_TableRows(t *testing.T) {
	res := &ParseResult{Lines: []ParsedLine{
		{
			Line:     "ca 1-2 dl mjölk",
			Quantity: "ca 1-2 dl",
			Name:     "mjölk",
			Parsed:   quantity.Parsed{Value: 1, Upper: 2, IsRange: true, RangeSep: "-", Unit: "dl", Approx: "ca", Parseable: true},
		},
		{Line: "some cheese", Name: "some cheese"},
	}}

	assert.Len(t, res.TableHeader(), 6)
	assert.Equal(t, [][]string{
		{"ca 1-2 dl mjölk", "ca 1-2 dl", "mjölk", "1-2", "dl", "true"},
		{"some cheese", "", "some cheese", "", "", "false"},
	}, res.TableRows())
}
