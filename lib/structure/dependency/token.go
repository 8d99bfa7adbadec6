/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/text"
)

// Token represents a word of the sentence with its dependency annotation.
type Token struct {
	// The index of the token in the sentence, starting at 0.
	I int `json:"i"`
	// Index of the syntactic head. The root is its own head.
	Head int `json:"head"`
	// Dependency relation to the head, e.g. nsubj, relcl.
	Dep string `json:"dep"`
	// Coarse universal part of speech, e.g. VERB, ADP.
	Pos string `json:"pos"`
	// Fine grained (Penn) tag, e.g. VBG, TO.
	Tag string `json:"tag"`
	// Codepoint offset of the first character of the token in the text.
	Idx int `json:"idx"`
	// The unmodified word
	Text string `json:"text"`
}

// End is the codepoint offset just past the token.
func (t Token) End() int {
	return t.Idx + utf8.RuneCountInString(t.Text)
}

func (t Token) Lower() string {
	return text.Normalize(t.Text)
}

// Doc is a dependency-parsed text.
type Doc struct {
	Tokens   []Token
	children [][]int
}

var ErrMalformedParse = errors.New("malformed dependency parse")

// NewDoc validates tokens and indexes their children. Tokens must be in text order
// with I equal to their position.
func NewDoc(tokens []Token) (*Doc, error) {
	children := make([][]int, len(tokens))
	for i, tok := range tokens {
		if tok.I != i {
			return nil, fmt.Errorf("%w: token %d has index %d", ErrMalformedParse, i, tok.I)
		}
		if tok.Head < 0 || tok.Head >= len(tokens) {
			return nil, fmt.Errorf("%w: token %d has head %d", ErrMalformedParse, i, tok.Head)
		}
		if tok.Idx < 0 {
			return nil, fmt.Errorf("%w: token %d has offset %d", ErrMalformedParse, i, tok.Idx)
		}
		if tok.Head != i {
			children[tok.Head] = append(children[tok.Head], i)
		}
	}
	return &Doc{Tokens: tokens, children: children}, nil
}

func (d *Doc) Head(t Token) Token {
	return d.Tokens[t.Head]
}

func (d *Doc) IsRoot(t Token) bool {
	return t.Head == t.I
}

// Children returns the direct dependents of t in text order.
func (d *Doc) Children(t Token) []Token {
	res := make([]Token, len(d.children[t.I]))
	for i, c := range d.children[t.I] {
		res[i] = d.Tokens[c]
	}
	return res
}

// Subtree returns t and all of its descendants in text order.
func (d *Doc) Subtree(t Token) []Token {
	seen := make([]bool, len(d.Tokens))
	stack := []int{t.I}
	seen[t.I] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range d.children[i] {
			// a cyclic parse must not loop forever
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}

	var res []Token
	for i, ok := range seen {
		if ok {
			res = append(res, d.Tokens[i])
		}
	}
	return res
}

// Bounds returns the codepoint range covered by the subtree of t, from the start of
// its first token to the end of its last.
func (d *Doc) Bounds(t Token) (start, end int) {
	subtree := d.Subtree(t)
	first, last := subtree[0], subtree[len(subtree)-1]
	return first.Idx, last.End()
}
