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
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	glyphClass = `[\x{00BC}-\x{00BE}\x{2153}-\x{215E}]`
	simpleExpr = `(?:\d+[/⁄]\d+|\d*` + glyphClass + `|\d+(?:[.,]\d+)?|[.,]\d+)`
	rangeSeps  = `[-–—]`
)

var (
	simpleRe  = regexp.MustCompile(`^` + simpleExpr + `$`)
	rangeRe   = regexp.MustCompile(`^(` + simpleExpr + `)(` + rangeSeps + `)(` + simpleExpr + `)$`)
	gluedRe   = regexp.MustCompile(`^(` + simpleExpr + `(?:` + rangeSeps + simpleExpr + `)?)(\pL+\.?)$`)
	integerRe = regexp.MustCompile(`^\d+$`)
	fracRe    = regexp.MustCompile(`^(\d+)[/⁄](\d+)$`)
)

// glyphs maps vulgar fraction characters to their values.
var glyphs = map[rune]float64{
	'¼': 1.0 / 4,
	'½': 1.0 / 2,
	'¾': 3.0 / 4,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'⅕': 1.0 / 5,
	'⅖': 2.0 / 5,
	'⅗': 3.0 / 5,
	'⅘': 4.0 / 5,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅛': 1.0 / 8,
	'⅜': 3.0 / 8,
	'⅝': 5.0 / 8,
	'⅞': 7.0 / 8,
}

// IsNumberLike reports whether word is a single amount: an integer or decimal
// ("2", "2.5", "2,5"), a fraction glyph with or without a whole part ("½",
// "1½"), an ASCII fraction ("1/2") or a range of those ("1-2", "1–2").
// Enclosing punctuation is ignored, so "(2)" is number-like.
func IsNumberLike(word string) bool {
	w := trimWord(word)
	return simpleRe.MatchString(w) || rangeRe.MatchString(w)
}

// splitGlued splits a number written together with its unit, such as "200g"
// or "2dl", when the letters form a unit word.
func splitGlued(word string, v Vocabulary) (number, unit string, ok bool) {
	m := gluedRe.FindStringSubmatch(trimWord(word))
	if m == nil || !v.IsUnit(m[2]) {
		return "", "", false
	}
	return m[1], m[2], true
}

// isQuantityWord reports whether word can be part of an amount, either on its
// own or glued to a unit.
func isQuantityWord(word string, v Vocabulary) bool {
	if IsNumberLike(word) {
		return true
	}
	_, _, ok := splitGlued(word, v)
	return ok
}

// evalSimple evaluates a single amount without range. It reports whether the
// decimal separator was a comma.
func evalSimple(s string) (value float64, comma bool, ok bool) {
	if !simpleRe.MatchString(s) {
		return 0, false, false
	}

	if r, size := utf8.DecodeLastRuneInString(s); size > 0 {
		if g, isGlyph := glyphs[r]; isGlyph {
			whole := 0.0
			if prefix := s[:len(s)-size]; prefix != "" {
				n, err := strconv.ParseFloat(prefix, 64)
				if err != nil {
					return 0, false, false
				}
				whole = n
			}
			return finite(whole + g)
		}
	}

	if m := fracRe.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false, false
		}
		return finite(num / den)
	}

	comma = strings.Contains(s, ",")
	n, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false, false
	}
	v, _, ok := finite(n)
	return v, comma, ok
}

func finite(v float64) (float64, bool, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, false
	}
	return v, false, true
}

// fractionPart evaluates the second word of a mixed number: "1/2" or "½".
func fractionPart(s string) (float64, bool) {
	if m := fracRe.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == len(s) {
		g, ok := glyphs[r]
		return g, ok
	}
	return 0, false
}
