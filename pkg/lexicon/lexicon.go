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
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	perrors "github.com/mchmarny/portion/pkg/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

// minCompoundSuffix is the shortest discrete noun, in runes, that may match as
// the tail of a compound word in locales that build compounds.
const minCompoundSuffix = 5

var (
	localesOnce   sync.Once
	cachedLocales map[string]*Locale
	cachedOrder   []string
	cachedErr     error

	defaultOnce    sync.Once
	defaultLexicon *Lexicon
	defaultErr     error
)

// Unit is a unit word with its number forms.
type Unit struct {
	Singular string   `json:"singular" yaml:"singular"`
	Plural   string   `json:"plural,omitempty" yaml:"plural,omitempty"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Agree returns word in the number form matching value. Words that are not
// exactly the singular or plural form, such as abbreviations, are returned as is.
func (u Unit) Agree(word string, value float64) string {
	if u.Plural == "" || (word != u.Singular && word != u.Plural) {
		return word
	}
	if value > 1 {
		return u.Plural
	}
	return u.Singular
}

// Locale is the vocabulary of one language as stored in data/<code>.yaml.
type Locale struct {
	Code           string   `json:"locale" yaml:"locale"`
	Optional       string   `json:"optional" yaml:"optional"`
	Compounds      bool     `json:"compounds" yaml:"compounds"`
	Approximations []string `json:"approximations" yaml:"approximations"`
	Units          []Unit   `json:"units" yaml:"units"`
	Discrete       []string `json:"discrete" yaml:"discrete"`
	NonScalable    []string `json:"nonScalable" yaml:"nonScalable"`
	// Alternatives are words such as "or" that introduce a substitute
	// ingredient after the name.
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

// Tag returns the language tag of the locale.
func (l *Locale) Tag() language.Tag {
	return language.Make(l.Code)
}

type compound struct {
	suffix string
	locale *Locale
}

// Lexicon is the union of one or more locales. It is immutable once built and
// safe for concurrent use.
type Lexicon struct {
	locales   []*Locale
	units     map[string]Unit
	shared    map[string]bool
	approx    map[string]struct{}
	alts      map[string]struct{}
	discrete  map[string]*Locale
	compounds []compound
	phrases   [][]string
}

// Fold returns the NFC-composed, case-folded form of s used for every lookup.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// loadLocales parses and caches every embedded locale file.
func loadLocales() (map[string]*Locale, []string, error) {
	localesOnce.Do(func() {
		lexiconCacheMisses.Inc()

		locales := make(map[string]*Locale)
		var order []string

		err := fs.WalkDir(dataFS, "data", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(p) != ".yaml" {
				return nil
			}

			content, readErr := dataFS.ReadFile(p)
			if readErr != nil {
				return fmt.Errorf("failed to read %s: %w", p, readErr)
			}

			var loc Locale
			if parseErr := yaml.Unmarshal(content, &loc); parseErr != nil {
				return fmt.Errorf("failed to parse %s: %w", p, parseErr)
			}
			if loc.Code == "" || loc.Optional == "" {
				return perrors.NewWithContext(perrors.ErrCodeInternal,
					"locale file missing locale or optional word", map[string]any{"file": p})
			}
			if _, dup := locales[loc.Code]; dup {
				return perrors.NewWithContext(perrors.ErrCodeInternal,
					"duplicate locale", map[string]any{"file": p, "locale": loc.Code})
			}

			locales[loc.Code] = &loc
			order = append(order, loc.Code)
			return nil
		})
		if err != nil {
			cachedErr = perrors.Wrap(perrors.ErrCodeInternal, "failed to load lexicon data", err)
			return
		}
		if len(locales) == 0 {
			cachedErr = perrors.New(perrors.ErrCodeInternal, "no lexicon data found")
			return
		}

		cachedLocales = locales
		cachedOrder = order
	})

	if cachedErr != nil {
		return nil, nil, cachedErr
	}
	lexiconCacheHits.Inc()
	return cachedLocales, cachedOrder, nil
}

// Supported returns the tags of all bundled locales.
func Supported() []language.Tag {
	locales, order, err := loadLocales()
	if err != nil {
		return nil
	}
	tags := make([]language.Tag, 0, len(order))
	for _, code := range order {
		tags = append(tags, locales[code].Tag())
	}
	return tags
}

// ParseTags parses locale names such as "en", "sv-SE" or "en,sv".
// Empty values are skipped.
func ParseTags(values ...string) ([]language.Tag, error) {
	var tags []language.Tag
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			tag, err := language.Parse(part)
			if err != nil {
				return nil, perrors.WrapWithContext(perrors.ErrCodeUnsupportedLocale,
					"invalid locale", err, map[string]any{"locale": part})
			}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Load builds a lexicon from the given locales, or from every bundled locale
// when none are given. Regional variants resolve to their base language.
func Load(tags ...language.Tag) (*Lexicon, error) {
	locales, _, err := loadLocales()
	if err != nil {
		return nil, err
	}
	codes, err := Resolve(tags...)
	if err != nil {
		return nil, err
	}

	selected := make([]*Locale, 0, len(codes))
	for _, code := range codes {
		selected = append(selected, locales[code])
	}
	return build(selected), nil
}

// Resolve maps tags to the codes of the bundled locales they select, in
// order and without duplicates: "en-US", "en-x-custom" and "en" all give "en".
// No tags gives every bundled locale.
func Resolve(tags ...language.Tag) ([]string, error) {
	locales, order, err := loadLocales()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return append([]string(nil), order...), nil
	}

	seen := make(map[string]bool)
	codes := make([]string, 0, len(tags))
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			return nil, perrors.NewWithContext(perrors.ErrCodeUnsupportedLocale,
				"unsupported locale", map[string]any{"locale": tag.String()})
		}
		loc, ok := locales[base.String()]
		if !ok {
			return nil, perrors.NewWithContext(perrors.ErrCodeUnsupportedLocale,
				"unsupported locale", map[string]any{"locale": tag.String(), "supported": order})
		}
		if seen[loc.Code] {
			continue
		}
		seen[loc.Code] = true
		codes = append(codes, loc.Code)
	}
	return codes, nil
}

// Default returns the cached lexicon of every bundled locale.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLexicon, defaultErr = Load()
	})
	return defaultLexicon, defaultErr
}

// build unions locales in order; on conflicting entries the earlier locale wins.
func build(locales []*Locale) *Lexicon {
	x := &Lexicon{
		locales:  locales,
		units:    make(map[string]Unit),
		shared:   make(map[string]bool),
		approx:   make(map[string]struct{}),
		alts:     make(map[string]struct{}),
		discrete: make(map[string]*Locale),
	}

	owner := make(map[string]string)
	for _, loc := range locales {
		for _, u := range loc.Units {
			for _, form := range append([]string{u.Singular, u.Plural}, u.Aliases...) {
				if form == "" {
					continue
				}
				key := Fold(form)
				if code, exists := owner[key]; exists {
					if code != loc.Code {
						x.shared[key] = true
					}
					continue
				}
				owner[key] = loc.Code
				x.units[key] = u
			}
		}
		for _, a := range loc.Approximations {
			x.approx[Fold(a)] = struct{}{}
		}
		for _, a := range loc.Alternatives {
			x.alts[Fold(a)] = struct{}{}
		}
		for _, d := range loc.Discrete {
			key := Fold(d)
			if _, exists := x.discrete[key]; !exists {
				x.discrete[key] = loc
			}
			if loc.Compounds && utf8.RuneCountInString(key) >= minCompoundSuffix {
				x.compounds = append(x.compounds, compound{suffix: key, locale: loc})
			}
		}
		for _, p := range loc.NonScalable {
			words := strings.Fields(Fold(p))
			if len(words) > 0 {
				x.phrases = append(x.phrases, words)
			}
		}
	}
	return x
}

// Locales returns the locales in lookup order.
func (x *Lexicon) Locales() []*Locale {
	return x.locales
}

// Unit looks up a unit word in any of its forms.
func (x *Lexicon) Unit(word string) (Unit, bool) {
	u, ok := x.units[Fold(word)]
	return u, ok
}

// AgreeUnit returns word in the number form matching value. Forms spelled
// the same in more than one loaded locale, like "liter", are returned as is.
func (x *Lexicon) AgreeUnit(word string, value float64) string {
	key := Fold(word)
	if x.shared[key] {
		return word
	}
	u, ok := x.units[key]
	if !ok {
		return word
	}
	return u.Agree(word, value)
}

// IsUnit reports whether word is a known unit word.
func (x *Lexicon) IsUnit(word string) bool {
	_, ok := x.units[Fold(word)]
	return ok
}

// IsApproximation reports whether word is an approximation marker such as "ca".
func (x *Lexicon) IsApproximation(word string) bool {
	_, ok := x.approx[Fold(word)]
	return ok
}

// IsAlternative reports whether word introduces a substitute, such as "or".
func (x *Lexicon) IsAlternative(word string) bool {
	_, ok := x.alts[Fold(word)]
	return ok
}

// Discrete reports whether any word names an item counted in whole or half
// units, and returns the locale it belongs to. Matching is per word; in
// compounding locales a long discrete noun also matches as a word's tail.
func (x *Lexicon) Discrete(words ...string) (*Locale, bool) {
	for _, w := range words {
		key := Fold(w)
		if key == "" {
			continue
		}
		if loc, ok := x.discrete[key]; ok {
			return loc, true
		}
		for _, c := range x.compounds {
			if strings.HasSuffix(key, c.suffix) {
				return c.locale, true
			}
		}
	}
	return nil, false
}

// NonScalable reports whether the word sequence contains a phrase such as
// "to taste" or "en nypa" on word boundaries.
func (x *Lexicon) NonScalable(words ...string) bool {
	folded := make([]string, len(words))
	for i, w := range words {
		folded[i] = Fold(w)
	}

	for _, phrase := range x.phrases {
		for i := 0; i+len(phrase) <= len(folded); i++ {
			match := true
			for j, pw := range phrase {
				if folded[i+j] != pw {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
	}
	return false
}

// OptionalWord returns the word replacing a discrete quantity too small to
// buy. A nil locale selects the first locale of the lexicon.
func (x *Lexicon) OptionalWord(loc *Locale) string {
	if loc != nil {
		return loc.Optional
	}
	if len(x.locales) > 0 {
		return x.locales[0].Optional
	}
	return ""
}
