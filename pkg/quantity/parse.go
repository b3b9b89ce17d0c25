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

package quantity

import (
	"strings"
)

// Parsed is the reading of a quantity text such as "ca 1 1/2 dl".
// When Parseable is false the remaining fields carry no meaning and callers
// keep the original text.
type Parsed struct {
	// Value is the amount, or the lower bound of a range.
	Value float64 `json:"value" yaml:"value"`
	// Upper is the upper bound when IsRange is set.
	Upper float64 `json:"upper,omitempty" yaml:"upper,omitempty"`
	// IsRange marks amounts written as "1-2".
	IsRange bool `json:"isRange,omitempty" yaml:"isRange,omitempty"`
	// RangeSep is the separator used between range bounds.
	RangeSep string `json:"rangeSep,omitempty" yaml:"rangeSep,omitempty"`
	// Unit is the text following the amount, as written.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
	// UnitWords are the trimmed words of Unit.
	UnitWords []string `json:"-" yaml:"-"`
	// Approx is the approximation marker preceding the amount, as written.
	Approx string `json:"approx,omitempty" yaml:"approx,omitempty"`
	// DecimalComma is set when the amount used a comma as decimal separator.
	DecimalComma bool `json:"decimalComma,omitempty" yaml:"decimalComma,omitempty"`
	// Parseable reports whether the text could be read with confidence.
	Parseable bool `json:"parseable" yaml:"parseable"`
}

// Parse reads a quantity text. It never fails; text it cannot read with
// confidence, including division by zero, yields Parseable false.
//
// Recognised amounts, in order: a mixed number ("1 1/2", "1 ½"), a whole
// number followed by a glyph ("1½"), a glyph ("¾"), an ASCII fraction
// ("3/4"), a plain number with dot or comma ("2.5", "2,5") and a range of any
// single-word form ("1-2", "½–1"). A leading approximation marker is kept
// aside, and the words after the amount become the unit.
func Parse(text string, v Vocabulary) Parsed {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Parsed{}
	}

	var p Parsed
	i := 0
	if len(tokens) > 1 && v.IsApproximation(tokens[0].Word) {
		p.Approx = tokens[0].Text
		i = 1
	}

	var nums []string
	var unitTokens []Token
	for ; i < len(tokens); i++ {
		w := tokens[i].Word
		if IsNumberLike(w) {
			nums = append(nums, w)
			continue
		}
		if number, unit, ok := splitGlued(w, v); ok {
			nums = append(nums, number)
			unitTokens = append(unitTokens, Token{Text: unit + trailingSeparator(tokens[i].Text), Word: unit})
			i++
		}
		break
	}
	unitTokens = append(unitTokens, tokens[i:]...)

	if !p.evaluate(nums) {
		return Parsed{}
	}

	p.Unit = Join(unitTokens)
	p.UnitWords = Words(unitTokens)
	p.Parseable = true
	return p
}

// evaluate fills the amount fields from the numeric words.
func (p *Parsed) evaluate(nums []string) bool {
	switch len(nums) {
	case 1:
		return p.evaluateWord(nums[0])
	case 2:
		if !integerRe.MatchString(nums[0]) {
			return false
		}
		whole, _, ok := evalSimple(nums[0])
		if !ok {
			return false
		}
		frac, ok := fractionPart(nums[1])
		if !ok {
			return false
		}
		p.Value = whole + frac
		return true
	default:
		return false
	}
}

func (p *Parsed) evaluateWord(w string) bool {
	if m := rangeRe.FindStringSubmatch(w); m != nil {
		lo, loComma, ok1 := evalSimple(m[1])
		hi, hiComma, ok2 := evalSimple(m[3])
		if !ok1 || !ok2 || hi < lo {
			return false
		}
		p.Value, p.Upper = lo, hi
		p.IsRange = true
		p.RangeSep = m[2]
		p.DecimalComma = loComma || hiComma
		return true
	}

	value, comma, ok := evalSimple(w)
	if !ok {
		return false
	}
	p.Value = value
	p.DecimalComma = comma
	return true
}

// trailingSeparator returns the trailing list punctuation of s, such as the
// comma in "200g,".
func trailingSeparator(s string) string {
	return s[len(strings.TrimRight(s, ",;:")):]
}
