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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome names the branch of the scaling policy a line took.
type Outcome string

const (
	OutcomeScaled      Outcome = "scaled"
	OutcomeIdentity    Outcome = "identity"
	OutcomeNonScalable Outcome = "non_scalable"
	OutcomeUnparseable Outcome = "unparseable"
	OutcomeOptional    Outcome = "optional"
)

var (
	scaleLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portion_scale_lines_total",
			Help: "Total number of ingredient lines scaled, by outcome",
		},
		[]string{"outcome"},
	)
	parseCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portion_scale_parse_cache_lookups_total",
			Help: "Total number of parse cache lookups, by result",
		},
		[]string{"result"},
	)
)
