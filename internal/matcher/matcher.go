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

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/bestmatch/internal/x/patterntree"
)

// NoMatch is returned if no pattern matches the given path.
const NoMatch = "NO MATCH"

// Matcher selects the most specific pattern of a tree for a path. A pattern is more
// specific if it uses fewer wildcards. Among patterns with the same amount of
// wildcards the one whose leftmost wildcard is positioned furthest to the right wins.
//
// Matcher holds no state besides the tree and is safe for concurrent use as long as
// the tree is not modified.
type Matcher struct {
	tree   *patterntree.Tree
	logger zerolog.Logger
}

func New(tree *patterntree.Tree, opts ...Option) *Matcher {
	matcher := &Matcher{
		tree:   tree,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(matcher)
	}

	return matcher
}

// BestMatch is a shortcut for New(tree).BestMatch(path).
func BestMatch(tree *patterntree.Tree, path string) string {
	return New(tree).BestMatch(path)
}

// BestMatch returns the best matching pattern for the given path or NoMatch.
func (m *Matcher) BestMatch(path string) string {
	tokens := Sanitize(path, m.tree.PathSeparator())

	pattern, found := m.resolve(m.tree, tokens, 1)
	if !found {
		m.logger.Debug().Str("_path", path).Msg("No pattern matches")

		return NoMatch
	}

	m.logger.Debug().Str("_path", path).Str("_pattern", pattern).Msg("Best match found")

	return pattern
}

// Candidates returns all patterns matching the path with the lowest wildcard count.
// More than one entry means BestMatch has to break a tie.
func (m *Matcher) Candidates(path string) []Candidate {
	return findMatches(m.tree, m.tree.Root(), Sanitize(path, m.tree.PathSeparator()), 0, nil)
}

func (m *Matcher) resolve(tree *patterntree.Tree, tokens []string, round int) (string, bool) {
	found := findMatches(tree, tree.Root(), tokens, 0, nil)

	switch {
	case len(found) == 0:
		return "", false
	case len(found) == 1:
		return found[0].Pattern, true
	case tree.TieBreak():
		// a tie breaking lookup follows a single branch and yields at most one candidate
		m.logger.Warn().
			Int("_round", round).
			Strs("_candidates", found.patterns()).
			Msg("Tie could not be broken. Using first candidate")

		return found[0].Pattern, true
	}

	m.logger.Debug().
		Int("_round", round).
		Int("_wildcards", found[0].Wildcards).
		Strs("_candidates", found.patterns()).
		Msg("Breaking tie between equally specific patterns")

	tieBreaker := patterntree.Build(found.patterns(), append(tree.Options(), patterntree.WithTieBreak(true))...)

	return m.resolve(tieBreaker, tokens, round+1)
}

func findMatches(
	tree *patterntree.Tree, node *patterntree.Node, tokens []string, wildcards int, found candidates,
) candidates {
	if len(tokens) == 0 {
		pattern, terminal := node.Pattern()
		if !terminal {
			return found
		}

		return found.add(Candidate{Pattern: pattern, Wildcards: wildcards})
	}

	token, rest := tokens[0], tokens[1:]

	exactChild, hasExact := node.Child(token)
	wildcardChild, hasWildcard := node.Child(tree.Wildcard())

	// a path token looking like the wildcard is an exact step to the very same child.
	if token == tree.Wildcard() {
		hasWildcard = false
	}

	switch {
	case hasExact && hasWildcard && !tree.TieBreak():
		found = findMatches(tree, exactChild, rest, wildcards, found)

		return findMatches(tree, wildcardChild, rest, wildcards+1, found)
	case hasExact:
		return findMatches(tree, exactChild, rest, wildcards, found)
	case hasWildcard:
		return findMatches(tree, wildcardChild, rest, wildcards+1, found)
	default:
		return found
	}
}

// Sanitize strips leading and trailing separators from the path and splits
// the remainder into tokens. Empty tokens in between are kept.
func Sanitize(path, separator string) []string {
	if len(separator) == 0 {
		separator = patterntree.DefaultPathSeparator
	}

	for strings.HasPrefix(path, separator) {
		path = path[len(separator):]
	}

	for strings.HasSuffix(path, separator) {
		path = path[:len(path)-len(separator)]
	}

	if len(path) == 0 {
		return nil
	}

	return strings.Split(path, separator)
}
