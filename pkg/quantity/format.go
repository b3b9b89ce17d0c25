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
	"strconv"
	"strings"
)

// maxDecimals caps the precision used for very small amounts.
const maxDecimals = 4

// canonical lists the fractions written as glyphs, keyed by their value
// rounded to two decimals.
var canonical = []struct {
	value float64
	glyph string
}{
	{0.25, "¼"},
	{0.33, "⅓"},
	{0.5, "½"},
	{0.67, "⅔"},
	{0.75, "¾"},
}

// Format renders v for display. Values that round to ¼ ½ ¾ ⅓ ⅔ are written as
// glyphs; others as the shortest decimal at two places ("3", "1.5", "0.13").
// Amounts too small for two places keep up to four. A comma replaces the dot
// when comma is set. NaN and infinities render as "".
func Format(v float64, comma bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	r := roundTo(v, 2)
	for _, c := range canonical {
		if r == c.value {
			return c.glyph
		}
	}

	for d := 3; r == 0 && v != 0 && d <= maxDecimals; d++ {
		r = roundTo(v, d)
	}

	s := strconv.FormatFloat(r, 'f', -1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		s = "0"
	}
	if comma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// FormatParsed renders the amount of p as read, keeping a range's separator.
func FormatParsed(p Parsed) string {
	return FormatRange(p.Value, p.Upper, p)
}

// FormatRange renders lo, or lo and hi joined by the separator of p when p is
// a range whose bounds still differ once formatted.
func FormatRange(lo, hi float64, p Parsed) string {
	low := Format(lo, p.DecimalComma)
	if !p.IsRange {
		return low
	}
	high := Format(hi, p.DecimalComma)
	if high == low {
		return low
	}
	return low + p.RangeSep + high
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}
