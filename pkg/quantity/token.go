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

	"golang.org/x/text/unicode/norm"
)

const (
	leadingPunct  = "([{\"'“‘«"
	trailingPunct = ")]}\"'”’»,;:!?."
)

// Token is one whitespace-delimited piece of an ingredient line.
type Token struct {
	// Text is the token exactly as written.
	Text string `json:"text" yaml:"text"`
	// Word is Text without enclosing punctuation, e.g. "(optional)," becomes "optional".
	Word string `json:"word" yaml:"word"`
}

// Tokenize splits line on whitespace. Text is composed to NFC; case and
// numerals are left alone. Blank input yields no tokens.
func Tokenize(line string) []Token {
	fields := strings.Fields(norm.NFC.String(line))
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Text: f, Word: trimWord(f)}
	}
	return tokens
}

func trimWord(s string) string {
	return strings.TrimRight(strings.TrimLeft(s, leadingPunct), trailingPunct)
}

// Words returns the trimmed words of tokens.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return words
}

// Join returns the raw text of tokens separated by single spaces.
func Join(tokens []Token) string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return strings.Join(texts, " ")
}
