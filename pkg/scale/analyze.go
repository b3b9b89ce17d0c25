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
	"github.com/mchmarny/portion/pkg/quantity"
)

// analysis is the scale-independent read of a text: its tokens, the split
// index between quantity and name, and the parsed quantity.
type analysis struct {
	Tokens []quantity.Token
	Index  int
	Parsed quantity.Parsed
}

// analyze reads text. When whole is set the entire text is the quantity,
// as in a structured ingredient; otherwise the quantity prefix is classified.
func (e *Engine) analyze(text string, whole bool) analysis {
	key := cacheKey(text, whole)
	if e.cache != nil {
		if a, ok := e.cache.Get(key); ok {
			parseCacheLookups.WithLabelValues("hit").Inc()
			return a
		}
		parseCacheLookups.WithLabelValues("miss").Inc()
	}

	tokens := quantity.Tokenize(text)
	k := len(tokens)
	if !whole {
		k = quantity.Classify(tokens, e.lex)
	}

	a := analysis{Tokens: tokens, Index: k}
	if k > 0 {
		a.Parsed = quantity.Parse(quantity.Join(tokens[:k]), e.lex)
	}

	if e.cache != nil {
		e.cache.Set(key, a, 1)
	}
	return a
}

func cacheKey(text string, whole bool) string {
	if whole {
		return "q\x00" + text
	}
	return "l\x00" + text
}
