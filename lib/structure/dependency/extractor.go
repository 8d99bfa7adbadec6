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
	"fmt"
	"strings"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

const (
	Name = "dependency"

	maxPhraseTokens = 5
)

// Parser produces a dependency analysis of a text.
type Parser interface {
	Parse(text string) (*Doc, error)
}

// readier is implemented by parsers that can report whether they are usable.
type readier interface {
	Ready() bool
}

var (
	// relations of the noun phrase a relative clause is anchored to
	anchorDeps = map[string]bool{
		"nsubj":     true,
		"dobj":      true,
		"pobj":      true,
		"attr":      true,
		"nsubjpass": true,
	}
	participleTags = map[string]bool{
		"VBG": true,
		"VBN": true,
	}
	participleDeps = map[string]bool{
		"acl":   true,
		"advcl": true,
		"amod":  true,
		"xcomp": true,
	}
	complementizers = map[string]bool{
		"that":    true,
		"if":      true,
		"whether": true,
	}
)

// Extractor maps dependency relations to spans. Every span covers the full subtree
// of the token that produced it.
type Extractor struct {
	parser Parser
}

func New(parser Parser) *Extractor {
	return &Extractor{parser: parser}
}

func (e *Extractor) Name() string {
	return Name
}

// Ready reports whether the parser can be used.
func (e *Extractor) Ready() bool {
	if e.parser == nil {
		return false
	}
	if r, ok := e.parser.(readier); ok {
		return r.Ready()
	}
	return true
}

func (e *Extractor) Extract(text string) ([]structure.Span, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if e.parser == nil {
		return nil, fmt.Errorf("no dependency parser configured")
	}

	doc, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	if err := align(doc, text); err != nil {
		return nil, err
	}

	var spans []structure.Span
	add := func(start, end int, category structure.Category) {
		spans = append(spans, structure.Span{Start: start, End: end, Category: category})
	}

	for _, tok := range doc.Tokens {
		switch tok.Dep {
		case "relcl":
			start, end := doc.Bounds(anchor(doc, tok))
			add(start, end, structure.AdjClause)
		case "acl":
			// to-infinitive and participial modifiers are bracketed by their own rules
			if !participleTags[tok.Tag] && !hasTag(doc.Subtree(tok), "TO") {
				start, end := doc.Bounds(tok)
				add(start, end, structure.AdjClause)
			}
		case "advcl":
			start, end := doc.Bounds(tok)
			add(start, end, structure.AdvClause)
		case "ccomp":
			start, end := doc.Bounds(tok)
			if intro, ok := complementizer(doc, tok, start); ok && intro.Idx < start {
				start = intro.Idx
			}
			add(start, end, structure.NounClause)
		}

		if tok.Tag == "TO" && !doc.IsRoot(tok) && doc.Head(tok).Pos == "VERB" {
			start, end := doc.Bounds(doc.Head(tok))
			add(start, end, structure.ToInfinitive)
		}

		if participleTags[tok.Tag] && participleDeps[tok.Dep] && tok.Pos != "AUX" {
			start, end := doc.Bounds(tok)
			add(start, end, structure.Participle)
		}

		if tok.Pos == "ADP" && tok.Dep == "prep" {
			if subtree := doc.Subtree(tok); len(subtree) <= maxPhraseTokens {
				start, end := doc.Bounds(tok)
				add(start, end, structure.PrepPhrase)
			}
		}
	}
	return spans, nil
}

// anchor walks up the head chain of a relative clause to the noun phrase it modifies,
// so the span does not cut the modified noun in half. The clause itself is returned
// if no anchoring noun phrase is found.
func anchor(doc *Doc, relcl Token) Token {
	tok := relcl
	for steps := 0; steps < len(doc.Tokens); steps++ {
		if anchorDeps[tok.Dep] {
			return tok
		}
		if doc.IsRoot(tok) {
			break
		}
		tok = doc.Head(tok)
	}
	return relcl
}

// complementizer finds the "that", "if" or "whether" introducing a clausal
// complement: a marker among its dependents, or the word right before its subtree.
func complementizer(doc *Doc, ccomp Token, start int) (Token, bool) {
	for _, child := range doc.Children(ccomp) {
		if child.Dep == "mark" && complementizers[child.Lower()] {
			return child, true
		}
	}
	for i := len(doc.Tokens) - 1; i >= 0; i-- {
		if tok := doc.Tokens[i]; tok.End() <= start {
			return tok, complementizers[tok.Lower()]
		}
	}
	return Token{}, false
}

func hasTag(tokens []Token, tag string) bool {
	for _, t := range tokens {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

// align checks that every token sits at its offset in text. Parsers that report
// offsets in another unit (bytes, normalised text) are corrected by searching forward
// from the previous token; a token that cannot be found invalidates the parse.
func align(doc *Doc, text string) error {
	runes := []rune(text)
	pos := 0
	for i := range doc.Tokens {
		tok := &doc.Tokens[i]
		width := utf8.RuneCountInString(tok.Text)
		if matchesAt(runes, tok.Idx, tok.Text) && tok.Idx >= pos {
			pos = tok.Idx + width
			continue
		}
		found := indexFrom(runes, pos, tok.Text)
		if found < 0 {
			return fmt.Errorf("%w: token %d %q not found in text", ErrMalformedParse, i, tok.Text)
		}
		tok.Idx = found
		pos = found + width
	}
	return nil
}

func matchesAt(runes []rune, idx int, word string) bool {
	w := []rune(word)
	if idx < 0 || idx+len(w) > len(runes) {
		return false
	}
	for i, r := range w {
		if runes[idx+i] != r {
			return false
		}
	}
	return true
}

func indexFrom(runes []rune, from int, word string) int {
	for i := from; i < len(runes); i++ {
		if matchesAt(runes, i, word) {
			return i
		}
	}
	return -1
}
