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

import "math"

// Context carries the serving counts of one scaling pass.
type Context struct {
	Original float64 `json:"original" yaml:"original"`
	Target   float64 `json:"target" yaml:"target"`
}

// NewContext returns a Context scaling from original to target servings.
func NewContext(original, target float64) Context {
	return Context{Original: original, Target: target}
}

// Factor returns Target/Original. Zero, negative or non-finite servings,
// and ratios that overflow, yield 1 so the pass leaves lines untouched.
func (c Context) Factor() float64 {
	if !positive(c.Original) || !positive(c.Target) {
		return 1
	}
	f := c.Target / c.Original
	if !positive(f) {
		return 1
	}
	return f
}

// IsIdentity reports whether the pass leaves every line unchanged.
func (c Context) IsIdentity() bool {
	return c.Factor() == 1
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
