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

// Vocabulary is the word knowledge needed to read a quantity.
// *lexicon.Lexicon implements it.
type Vocabulary interface {
	// IsUnit reports whether word is a unit such as "cup", "dl" or "st".
	IsUnit(word string) bool
	// IsApproximation reports whether word is a marker such as "ca" or "approx".
	IsApproximation(word string) bool
}

// Split is an ingredient line divided into its quantity and name parts.
type Split struct {
	Quantity string `json:"quantity" yaml:"quantity"`
	Name     string `json:"name" yaml:"name"`
	// Index is the number of tokens in the quantity part.
	Index int `json:"index" yaml:"index"`
}

// Classify returns the number of leading tokens that form the quantity and
// unit. Zero means the line has no leading amount and is all name.
//
// The first token must be number-like, optionally preceded by an
// approximation marker. Following tokens extend the quantity while they are
// number-like (as in "1 1/2"); a unit word ends it, so in "1/8 tsp cloves"
// the second unit-like word stays in the name. Any other token ends it too.
func Classify(tokens []Token, v Vocabulary) int {
	if len(tokens) == 0 {
		return 0
	}

	start := 0
	if len(tokens) > 1 && v.IsApproximation(tokens[0].Word) && isQuantityWord(tokens[1].Word, v) {
		start = 1
	}
	if !isQuantityWord(tokens[start].Word, v) {
		return 0
	}

	_, _, unit := splitGlued(tokens[start].Word, v)
	k := start + 1
	for ; k < len(tokens) && !unit; k++ {
		w := tokens[k].Word
		switch {
		case w == "":
			return k
		case IsNumberLike(w):
		case v.IsUnit(w):
			unit = true
		default:
			if _, _, glued := splitGlued(w, v); !glued {
				return k
			}
			unit = true
		}
	}
	return k
}

// SplitLine tokenizes and classifies line.
func SplitLine(line string, v Vocabulary) Split {
	tokens := Tokenize(line)
	k := Classify(tokens, v)
	return Split{
		Quantity: Join(tokens[:k]),
		Name:     Join(tokens[k:]),
		Index:    k,
	}
}
