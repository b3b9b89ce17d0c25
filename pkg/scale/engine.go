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
	"log/slog"
	"math"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/text/language"

	perrors "github.com/mchmarny/portion/pkg/errors"
	"github.com/mchmarny/portion/pkg/lexicon"
	"github.com/mchmarny/portion/pkg/quantity"
)

// minDiscrete is the smallest amount of a countable item worth listing.
const minDiscrete = 0.5

// Engine scales ingredient lines. It is safe for concurrent use.
type Engine struct {
	lex   *lexicon.Lexicon
	tags  []language.Tag
	cache *ristretto.Cache[string, analysis]

	cacheEntries int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLexicon sets the vocabulary used to read lines.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(e *Engine) {
		e.lex = lex
	}
}

// WithLocales restricts the vocabulary to the given locales.
// Ignored when WithLexicon is also set.
func WithLocales(tags ...language.Tag) Option {
	return func(e *Engine) {
		e.tags = tags
	}
}

// WithCache memoizes the read of up to entries distinct lines.
// Engines built with a cache must be closed.
func WithCache(entries int64) Option {
	return func(e *Engine) {
		e.cacheEntries = entries
	}
}

// New returns an Engine. Without options it reads every supported locale.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.lex == nil {
		lex, err := lexicon.Load(e.tags...)
		if err != nil {
			return nil, err
		}
		e.lex = lex
	}

	if e.cacheEntries > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, analysis]{
			NumCounters: e.cacheEntries * 10,
			MaxCost:     e.cacheEntries,
			BufferItems: 64,

			// Cost is counted in entries, not bytes.
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInternal, "failed to create parse cache", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Close releases the parse cache, if any.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// Lexicon returns the vocabulary the engine reads lines with.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Text scales a bare ingredient line.
func (e *Engine) Text(line string, c Context) string {
	out, outcome := e.text(line, c.Factor())
	record(outcome, line)
	return out
}

// Ingredient scales the quantity of a structured ingredient line.
// Name and notes are returned unchanged.
func (e *Engine) Ingredient(ing Ingredient, c Context) Ingredient {
	out, outcome := e.ingredient(ing, c.Factor())
	record(outcome, ing.Quantity)
	return out
}

// Line scales a line of either shape, returning the same shape.
func (e *Engine) Line(l Line, c Context) Line {
	if l.Ingredient != nil {
		ing := e.Ingredient(*l.Ingredient, c)
		return Line{Ingredient: &ing}
	}
	return Line{Text: e.Text(l.Text, c)}
}

// Apply scales v with e, returning a value of the same type.
func Apply[T string | Ingredient | Line](e *Engine, v T, c Context) T {
	switch x := any(v).(type) {
	case string:
		return any(e.Text(x, c)).(T)
	case Ingredient:
		return any(e.Ingredient(x, c)).(T)
	case Line:
		return any(e.Line(x, c)).(T)
	default:
		return v
	}
}

// Read splits a bare line and parses its quantity without scaling it.
func (e *Engine) Read(line string) (quantity.Split, quantity.Parsed) {
	a := e.analyze(line, false)
	return quantity.Split{
		Quantity: quantity.Join(a.Tokens[:a.Index]),
		Name:     quantity.Join(a.Tokens[a.Index:]),
		Index:    a.Index,
	}, a.Parsed
}

func (e *Engine) text(line string, factor float64) (string, Outcome) {
	if factor == 1 {
		return line, OutcomeIdentity
	}

	a := e.analyze(line, false)
	if e.lex.NonScalable(quantity.Words(a.Tokens)...) {
		return line, OutcomeNonScalable
	}
	if a.Index == 0 || !a.Parsed.Parseable {
		return line, OutcomeUnparseable
	}

	name := a.Tokens[a.Index:]
	qty, outcome := e.rescale(a.Parsed, e.head(name), factor)
	if outcome == OutcomeUnparseable {
		return line, outcome
	}
	return join(qty, quantity.Join(name)), outcome
}

func (e *Engine) ingredient(ing Ingredient, factor float64) (Ingredient, Outcome) {
	if factor == 1 {
		return ing, OutcomeIdentity
	}

	a := e.analyze(ing.Quantity, true)
	nameTokens := quantity.Tokenize(ing.Name)
	if e.lex.NonScalable(append(quantity.Words(a.Tokens), quantity.Words(nameTokens)...)...) {
		return ing, OutcomeNonScalable
	}
	if !a.Parsed.Parseable {
		return ing, OutcomeUnparseable
	}

	qty, outcome := e.rescale(a.Parsed, e.head(nameTokens), factor)
	if outcome == OutcomeUnparseable {
		return ing, outcome
	}
	ing.Quantity = qty
	return ing, outcome
}

// rescale multiplies p by factor and renders the new quantity text.
// head holds the words naming the ingredient, see Engine.head.
func (e *Engine) rescale(p quantity.Parsed, head []string, factor float64) (string, Outcome) {
	lo, hi := p.Value*factor, p.Upper*factor
	if !finite(lo) || !finite(hi) {
		return "", OutcomeUnparseable
	}

	if loc, ok := e.discrete(p, head); ok {
		top := lo
		if p.IsRange {
			top = hi
		}
		if top < minDiscrete {
			if len(head) == 0 {
				// The unit is the item, as in "2 cloves".
				return join(e.lex.OptionalWord(loc), p.Unit), OutcomeOptional
			}
			return e.lex.OptionalWord(loc), OutcomeOptional
		}
		lo, hi = roundHalf(lo), roundHalf(hi)
	}
	if lo != 0 && quantity.Format(lo, p.DecimalComma) == "0" {
		// Too small to write down; keep the line as written.
		return "", OutcomeUnparseable
	}

	count := lo
	if p.IsRange {
		count = hi
	}
	return join(p.Approx, quantity.FormatRange(lo, hi, p), e.agree(p, count)), OutcomeScaled
}

// discrete reports whether the amount counts whole items. A unit decides on
// its own ("2 cloves" yes, "1/8 tsp cloves" no); without one the head noun
// decides ("3 eggs").
func (e *Engine) discrete(p quantity.Parsed, head []string) (*lexicon.Locale, bool) {
	if len(p.UnitWords) > 0 {
		return e.lex.Discrete(p.UnitWords...)
	}
	return e.lex.Discrete(head...)
}

// head returns the words naming the ingredient: the name up to the first
// comma, semicolon, parenthesis or alternative such as "or". Notes like
// "(you can use honey)" are left out.
func (e *Engine) head(name []quantity.Token) []string {
	words := make([]string, 0, len(name))
	for _, t := range name {
		if strings.HasPrefix(t.Text, "(") || e.lex.IsAlternative(t.Word) {
			break
		}
		words = append(words, t.Word)
		if strings.HasSuffix(t.Text, ",") || strings.HasSuffix(t.Text, ";") {
			break
		}
	}
	return words
}

// agree puts the first unit word in the number form matching value,
// keeping any punctuation around it.
func (e *Engine) agree(p quantity.Parsed, value float64) string {
	if len(p.UnitWords) == 0 {
		return p.Unit
	}
	fields := strings.Fields(p.Unit)
	if len(fields) == 0 {
		return p.Unit
	}

	word := p.UnitWords[0]
	if agreed := e.lex.AgreeUnit(word, value); agreed != word {
		fields[0] = strings.Replace(fields[0], word, agreed, 1)
	}
	return strings.Join(fields, " ")
}

func roundHalf(v float64) float64 {
	return math.Max(minDiscrete, math.Round(v*2)/2)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func record(o Outcome, text string) {
	scaleLinesTotal.WithLabelValues(string(o)).Inc()
	slog.Debug("scaled ingredient line", "outcome", o, "text", text)
}
