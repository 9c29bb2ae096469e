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

package patterntree

import (
	"strings"
)

const (
	DefaultWildcard         = "*"
	DefaultPatternSeparator = ","
	DefaultPathSeparator    = "/"
)

type (
	// Node is a single position in the tree. Nodes are owned by the tree they belong
	// to and are exposed read-only.
	Node struct {
		token    string
		children map[string]*Node

		terminal bool
		pattern  string
	}

	// Tree stores tokenized patterns. Once all patterns are inserted, a Tree can be
	// shared by concurrent readers.
	Tree struct {
		root *Node

		wildcard         string
		patternSeparator string
		pathSeparator    string

		tieBreak bool
	}
)

func New(opts ...Option) *Tree {
	tree := &Tree{
		root:             &Node{},
		wildcard:         DefaultWildcard,
		patternSeparator: DefaultPatternSeparator,
		pathSeparator:    DefaultPathSeparator,
	}

	for _, opt := range opts {
		opt(tree)
	}

	return tree
}

// Build creates a tree and inserts all given patterns in order.
func Build(patterns []string, opts ...Option) *Tree {
	tree := New(opts...)

	for _, pattern := range patterns {
		tree.Insert(pattern)
	}

	return tree
}

// Insert adds the pattern to the tree. Any string is accepted. Tokens are taken
// verbatim, so consecutive separators produce empty tokens, and the empty pattern
// marks the root itself.
func (t *Tree) Insert(pattern string) {
	node := t.root

	for _, token := range t.tokenize(pattern) {
		node = node.addChild(token)
	}

	node.terminal = true
	node.pattern = pattern
}

// Root returns the tokenless root node.
func (t *Tree) Root() *Node { return t.root }

func (t *Tree) Wildcard() string { return t.wildcard }

func (t *Tree) PathSeparator() string { return t.pathSeparator }

func (t *Tree) PatternSeparator() string { return t.patternSeparator }

// TieBreak reports whether lookups on this tree must prefer an exact child over a
// wildcard child instead of following both.
func (t *Tree) TieBreak() bool { return t.tieBreak }

// Options returns the options this tree has been created with, except tie breaking.
// These are used to create trees compatible with this one.
func (t *Tree) Options() []Option {
	return []Option{
		WithWildcard(t.wildcard),
		WithPatternSeparator(t.patternSeparator),
		WithPathSeparator(t.pathSeparator),
	}
}

// Size returns the number of nodes including the root.
func (t *Tree) Size() int { return t.root.size() }

func (t *Tree) Empty() bool { return len(t.root.children) == 0 && !t.root.terminal }

func (t *Tree) tokenize(pattern string) []string {
	if len(pattern) == 0 {
		return nil
	}

	return strings.Split(pattern, t.patternSeparator)
}

func (n *Node) addChild(token string) *Node {
	if child, ok := n.children[token]; ok {
		return child
	}

	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	child := &Node{token: token}
	n.children[token] = child

	return child
}

// Child returns the child reached via the given token.
func (n *Node) Child(token string) (*Node, bool) {
	child, ok := n.children[token]

	return child, ok
}

// Token returns the token leading to this node. It is empty for the root.
func (n *Node) Token() string { return n.token }

// Pattern returns the pattern ending at this node, if any.
func (n *Node) Pattern() (string, bool) { return n.pattern, n.terminal }

func (n *Node) Terminal() bool { return n.terminal }

func (n *Node) size() int {
	count := 1

	for _, child := range n.children {
		count += child.size()
	}

	return count
}
