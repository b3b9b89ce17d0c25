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

package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	perrors "github.com/mchmarny/portion/pkg/errors"
)

func TestLoad_AllLocales(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	codes := make([]string, 0, len(lex.Locales()))
	for _, loc := range lex.Locales() {
		codes = append(codes, loc.Code)
	}
	assert.Equal(t, []string{"en", "sv"}, codes)
}

func TestLoad_SelectedLocale(t *testing.T) {
	lex, err := Load(language.Swedish)
	require.NoError(t, err)

	assert.True(t, lex.IsUnit("msk"))
	assert.False(t, lex.IsUnit("cups"), "english units must not leak into a swedish-only lexicon")
	assert.Equal(t, "valfritt", lex.OptionalWord(nil))
}

func TestLoad_RegionalVariantResolvesToBase(t *testing.T) {
	lex, err := Load(language.MustParse("sv-SE"), language.MustParse("sv-FI"))
	require.NoError(t, err)
	require.Len(t, lex.Locales(), 1)
	assert.Equal(t, "sv", lex.Locales()[0].Code)
}

func TestLoad_UnsupportedLocale(t *testing.T) {
	_, err := Load(language.German)
	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeUnsupportedLocale, perrors.CodeOf(err))
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{name: "single", in: []string{"sv"}, want: []string{"sv"}},
		{name: "comma separated", in: []string{"en, sv"}, want: []string{"en", "sv"}},
		{name: "repeated values", in: []string{"en", "sv-SE"}, want: []string{"en", "sv-SE"}},
		{name: "empty parts skipped", in: []string{"", " , en"}, want: []string{"en"}},
		{name: "malformed", in: []string{"not a tag!"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := ParseTags(tt.in...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := make([]string, 0, len(tags))
			for _, tag := range tags {
				got = append(got, tag.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupported(t *testing.T) {
	tags := Supported()
	require.Len(t, tags, 2)
	assert.Equal(t, language.English, tags[0])
	assert.Equal(t, language.Swedish, tags[1])
}

func TestUnitLookup(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	tests := []struct {
		word string
		want bool
	}{
		{"cup", true},
		{"Cups", true},
		{"TBSP", true},
		{"dl", true},
		{"förp", true},
		{"FÖRP", true},
		{"st", true},
		{"flour", false},
		{"mjölk", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.IsUnit(tt.word))
		})
	}
}

func TestUnitAgree(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	cup, ok := lex.Unit("cups")
	require.True(t, ok)

	assert.Equal(t, "cup", cup.Agree("cups", 1))
	assert.Equal(t, "cup", cup.Agree("cups", 0.5))
	assert.Equal(t, "cups", cup.Agree("cup", 1.5))
	assert.Equal(t, "c", cup.Agree("c", 3), "abbreviations are left alone")

	dl, ok := lex.Unit("dl")
	require.True(t, ok)
	assert.Equal(t, "dl", dl.Agree("dl", 4))
}

func TestAgreeUnit(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "cups", lex.AgreeUnit("cup", 2))
	assert.Equal(t, "tablespoon", lex.AgreeUnit("tablespoons", 1))
	assert.Equal(t, "liter", lex.AgreeUnit("liter", 4), "form shared with swedish")
	assert.Equal(t, "gram", lex.AgreeUnit("gram", 200), "form shared with swedish")
	assert.Equal(t, "flour", lex.AgreeUnit("flour", 2))

	en, err := Load(language.English)
	require.NoError(t, err)
	assert.Equal(t, "liters", en.AgreeUnit("liter", 4))
}

func TestIsApproximation(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.True(t, lex.IsApproximation("ca"))
	assert.True(t, lex.IsApproximation("Cirka"))
	assert.True(t, lex.IsApproximation("approx."))
	assert.True(t, lex.IsApproximation("~"))
	assert.False(t, lex.IsApproximation("2"))
}

func TestIsAlternative(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.True(t, lex.IsAlternative("or"))
	assert.True(t, lex.IsAlternative("Eller"))
	assert.False(t, lex.IsAlternative("and"))

	en, err := Load(language.English)
	require.NoError(t, err)
	assert.False(t, en.IsAlternative("eller"))
}

func TestDiscrete(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name       string
		words      []string
		wantOK     bool
		wantLocale string
	}{
		{name: "swedish egg", words: []string{"ägg"}, wantOK: true, wantLocale: "sv"},
		{name: "uppercase egg", words: []string{"ÄGG"}, wantOK: true, wantLocale: "sv"},
		{name: "english eggs", words: []string{"large", "eggs"}, wantOK: true, wantLocale: "en"},
		{name: "garlic cloves", words: []string{"garlic", "cloves"}, wantOK: true, wantLocale: "en"},
		{name: "swedish compound", words: []string{"vitlöksklyftor"}, wantOK: true, wantLocale: "sv"},
		{name: "short entries do not match compounds", words: []string{"ost"}, wantOK: false},
		{name: "no partial english match", words: []string{"eggplant"}, wantOK: false},
		{name: "no substring match", words: []string{"masterpiece"}, wantOK: false},
		{name: "continuous ingredient", words: []string{"flour"}, wantOK: false},
		{name: "empty words", words: []string{"", ""}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := lex.Discrete(tt.words...)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, loc)
				assert.Equal(t, tt.wantLocale, loc.Code)
			}
		})
	}
}

func TestNonScalable(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name  string
		words []string
		want  bool
	}{
		{name: "to taste", words: []string{"salt", "to", "taste"}, want: true},
		{name: "en nypa", words: []string{"en", "nypa", "salt"}, want: true},
		{name: "efter smak", words: []string{"peppar", "efter", "smak"}, want: true},
		{name: "optional", words: []string{"1", "cup", "nuts", "optional"}, want: true},
		{name: "case folded", words: []string{"Salt", "TO", "Taste"}, want: true},
		{name: "words apart", words: []string{"to", "the", "taste"}, want: false},
		{name: "partial word", words: []string{"tasted"}, want: false},
		{name: "plain", words: []string{"2", "dl", "mjölk"}, want: false},
		{name: "empty", words: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.NonScalable(tt.words...))
		})
	}
}

func TestFold(t *testing.T) {
	decomposed := "a\u0308gg"
	assert.Equal(t, "\u00e4gg", Fold(decomposed))
	assert.Equal(t, "förp", Fold("FÖRP"))
}

func TestOptionalWord(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	sv, ok := lex.Discrete("ägg")
	require.True(t, ok)
	assert.Equal(t, "valfritt", lex.OptionalWord(sv))
	assert.Equal(t, "optional", lex.OptionalWord(nil))
}

func TestResolve(t *testing.T) {
	all, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "sv"}, all)

	codes, err := Resolve(language.MustParse("en-US"), language.MustParse("sv-SE"), language.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "sv"}, codes)

	codes, err = Resolve(language.Swedish, language.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"sv", "en"}, codes)

	_, err = Resolve(language.German)
	require.Error(t, err)
}
