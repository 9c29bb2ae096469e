// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package matcher

import "slices"

// Candidate is a pattern reached by consuming the whole path together with the
// number of wildcard tokens used on the way.
type Candidate struct {
	Pattern   string
	Wildcards int
}

// candidates only ever holds entries with the lowest wildcard count seen so far.
type candidates []Candidate

func (c candidates) add(candidate Candidate) candidates {
	if len(c) == 0 {
		return append(c, candidate)
	}

	if !slices.ContainsFunc(c, func(existing Candidate) bool { return candidate.Wildcards <= existing.Wildcards }) {
		return c
	}

	return append(
		slices.DeleteFunc(c, func(existing Candidate) bool { return existing.Wildcards > candidate.Wildcards }),
		candidate,
	)
}

func (c candidates) patterns() []string {
	patterns := make([]string, len(c))

	for i, candidate := range c {
		patterns[i] = candidate.Pattern
	}

	return patterns
}
